package mocks

import (
	"net/http"

	"github.com/kevin07696/payment-pages/internal/domain/ports"
)

// SetCall records one SessionStore.Set invocation.
type SetCall struct {
	Key   string
	Value string
}

// SessionStore is a map-backed ports.SessionStore for handler tests. Set
// writes through to Values, so a handler that writes then redirects can be
// asserted against in one request.
type SessionStore struct {
	Values   map[string]string
	SetCalls []SetCall
	SetErr   error
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty mock session.
func NewSessionStore() *SessionStore {
	return &SessionStore{Values: map[string]string{}}
}

func (m *SessionStore) Get(_ *http.Request, key string) (string, bool) {
	value, ok := m.Values[key]
	return value, ok
}

func (m *SessionStore) Set(_ http.ResponseWriter, _ *http.Request, key, value string) error {
	m.SetCalls = append(m.SetCalls, SetCall{Key: key, Value: value})
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Values[key] = value
	return nil
}
