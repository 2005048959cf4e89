// Package correlation carries the per-request correlation identifier used
// to join log lines across this service and the products API.
package correlation

import "context"

type contextKey struct{}

// HeaderName is the HTTP header the correlation identifier travels in,
// both inbound from the proxy and outbound to the products API.
const HeaderName = "X-Request-ID"

// NewContext returns a context carrying the correlation identifier.
func NewContext(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, contextKey{}, correlationID)
}

// FromContext returns the correlation identifier, or "" when none was set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}
