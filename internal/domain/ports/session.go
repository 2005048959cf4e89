package ports

import (
	"net/http"
	"strconv"
)

// Session keys used by the checkout flow. The session holds at most these
// two values for the lifetime of the browser session.
const (
	SessionKeyReference = "referenceNumber"
	SessionKeyAmount    = "amount"
)

// SessionStore persists small per-browser form state between wizard pages.
// Implementations are scoped per browser session; values written for one
// payer are never visible to another.
type SessionStore interface {
	// Get returns the stored value for key, or ("", false) when absent
	Get(r *http.Request, key string) (string, bool)

	// Set stores key=value and writes the updated session to the response
	Set(w http.ResponseWriter, r *http.Request, key, value string) error
}

// SessionAmountPence reads the session amount as pence. Returns nil when no
// amount has been stored or the stored value is not an integer.
func SessionAmountPence(s SessionStore, r *http.Request) *int64 {
	raw, ok := s.Get(r, SessionKeyAmount)
	if !ok || raw == "" {
		return nil
	}
	pence, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &pence
}
