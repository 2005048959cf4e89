// Package session stores the checkout form state in an HMAC-signed browser
// cookie. The values are not secret (the payer typed them) but must not be
// forgeable, so the payload is authenticated rather than encrypted.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
)

// CookieStore implements ports.SessionStore on top of a single signed
// cookie. A tampered or malformed cookie reads as an empty session, so a
// hostile client can only ever lose its own state.
type CookieStore struct {
	name   string
	secret []byte
	secure bool
}

var _ ports.SessionStore = (*CookieStore)(nil)

// NewCookieStore creates a cookie-backed session store. secret is the HMAC
// key; secure controls the cookie Secure attribute and should only be
// false in local development.
func NewCookieStore(name string, secret []byte, secure bool) *CookieStore {
	return &CookieStore{
		name:   name,
		secret: secret,
		secure: secure,
	}
}

// Get returns the stored value for key, or ("", false) when absent.
func (s *CookieStore) Get(r *http.Request, key string) (string, bool) {
	values := s.values(r)
	value, ok := values[key]
	return value, ok
}

// Set stores key=value and writes the updated session cookie. The request
// is read for existing values so sibling keys survive the write.
func (s *CookieStore) Set(w http.ResponseWriter, r *http.Request, key, value string) error {
	values := s.values(r)
	values[key] = value

	encoded, err := s.encode(values)
	if err != nil {
		return domain.WrapError(domain.ErrorCodeSessionInvalid, "failed to encode session", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// values decodes and verifies the session cookie. Any failure yields an
// empty map rather than an error: the payer just starts the flow over.
func (s *CookieStore) values(r *http.Request) map[string]string {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return map[string]string{}
	}

	payload, signature, found := strings.Cut(cookie.Value, ".")
	if !found {
		return map[string]string{}
	}

	if !hmac.Equal([]byte(signature), []byte(s.sign(payload))) {
		return map[string]string{}
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return map[string]string{}
	}

	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return map[string]string{}
	}
	return values
}

func (s *CookieStore) encode(values map[string]string) (string, error) {
	raw, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("marshal session values: %w", err)
	}

	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + s.sign(payload), nil
}

func (s *CookieStore) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
