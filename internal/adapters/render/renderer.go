// Package render owns the HTML views for the checkout flow. Pages are
// parsed once at startup from embedded template text and executed into a
// buffer so a template error never produces a half-written response.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/correlation"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
)

// Payer-facing copy for the error pages.
const (
	notFoundMessage      = "Check the web address and try again, or contact the service you are trying to pay."
	internalErrorMessage = "We are unable to process your request at this time"
)

// Renderer implements ports.Renderer over html/template.
type Renderer struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer parses all page templates. Panics on a malformed template,
// which is a programming error caught at startup.
func NewRenderer(logger *zap.Logger) *Renderer {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for name, text := range pageTemplates {
		templates[name] = template.Must(template.New(name).Parse(text))
	}
	return &Renderer{
		templates: templates,
		logger:    logger,
	}
}

// Render executes the named view and writes it with a 200.
func (re *Renderer) Render(w http.ResponseWriter, name string, data interface{}) error {
	return re.render(w, http.StatusOK, name, data)
}

// RenderError dispatches a domain error to the matching error page.
// Not-found codes get the 404 page; everything else gets the generic 500
// page with a fixed message, never the underlying error text.
func (re *Renderer) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsNotFoundError(err) {
		_ = re.render(w, http.StatusNotFound, "error/404", ErrorPageData{
			Message: notFoundMessage,
		})
		return
	}

	_ = re.render(w, http.StatusInternalServerError, "error/500", ErrorPageData{
		Message:       internalErrorMessage,
		CorrelationID: correlation.FromContext(r.Context()),
	})
}

func (re *Renderer) render(w http.ResponseWriter, status int, name string, data interface{}) error {
	tmpl, ok := re.templates[name]
	if !ok {
		re.logger.Error("unknown template requested", zap.String("template", name))
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		re.logger.Error("failed to execute template",
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return fmt.Errorf("execute template %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
