package mocks

import (
	"net/http"

	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
)

// Renderer records render calls instead of producing HTML. It writes the
// status codes the real renderer would, so handler tests can assert on the
// recorder as well as the captured view data.
type Renderer struct {
	RenderedName string
	RenderedData interface{}
	RenderCalls  int
	RenderedErr  error
}

var _ ports.Renderer = (*Renderer)(nil)

func (m *Renderer) Render(w http.ResponseWriter, name string, data interface{}) error {
	m.RenderCalls++
	m.RenderedName = name
	m.RenderedData = data
	w.WriteHeader(http.StatusOK)
	return nil
}

func (m *Renderer) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	m.RenderedErr = err
	if domain.IsNotFoundError(err) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}

// Translator is a pass-through ports.Translator that marks keys as
// translated, so tests can tell resolved copy from raw keys.
type Translator struct{}

var _ ports.Translator = (*Translator)(nil)

func (m *Translator) Translate(key string) string {
	return "translated:" + key
}
