package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kevin07696/payment-pages/internal/correlation"
)

// Correlation attaches a correlation identifier to every request. An
// identifier supplied by the fronting proxy is trusted; otherwise a fresh
// one is generated. The identifier is echoed on the response so payers can
// quote it to support.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(correlation.HeaderName)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		w.Header().Set(correlation.HeaderName, correlationID)

		ctx := correlation.NewContext(r.Context(), correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
