// Package confirm serves the payment summary page shown before the payer
// is handed over to card payment.
package confirm

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/adapters/render"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
	"github.com/kevin07696/payment-pages/internal/middleware"
	"github.com/kevin07696/payment-pages/internal/services/navigation"
	"github.com/kevin07696/payment-pages/internal/services/validation"
)

const templateName = "confirm/confirm"

// Handler serves GET for /pay/{productExternalId}/confirm.
type Handler struct {
	sessions ports.SessionStore
	renderer ports.Renderer
	logger   *zap.Logger
}

// NewHandler creates the confirm page controller.
func NewHandler(sessions ports.SessionStore, renderer ports.Renderer, logger *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// GetPage shows the payment summary. A payer who arrives without the
// details the product needs is sent back to collect them rather than shown
// an incomplete summary.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	sessionReference, _ := h.sessions.Get(r, ports.SessionKeyReference)
	if product.ReferenceEnabled && sessionReference == "" {
		http.Redirect(w, r,
			navigation.ReplaceParams(navigation.ReferencePath, product.ExternalID),
			http.StatusSeeOther)
		return
	}

	amountPence := product.Price
	if amountPence == nil {
		amountPence = ports.SessionAmountPence(h.sessions, r)
	}
	if amountPence == nil {
		http.Redirect(w, r,
			navigation.ReplaceParams(navigation.AmountPath, product.ExternalID),
			http.StatusSeeOther)
		return
	}

	data := render.ConfirmPageData{
		ProductName:     product.Name,
		ReferenceNumber: sessionReference,
		Amount:          validation.FormatPence(*amountPence),
		BackLinkHref:    h.backLinkHref(product),
	}
	if product.ReferenceEnabled {
		data.ChangeReferenceHref = navigation.ReplaceParams(navigation.ReferencePath, product.ExternalID)
	}
	if !product.HasFixedPrice() {
		data.ChangeAmountHref = navigation.ReplaceParams(navigation.AmountPath, product.ExternalID)
	}

	_ = h.renderer.Render(w, templateName, data)
}

// backLinkHref retraces the payer's last wizard step: amount entry for
// adhoc links, reference entry when the price is fixed, otherwise the
// landing page.
func (h *Handler) backLinkHref(product *domain.Product) string {
	switch {
	case !product.HasFixedPrice():
		return navigation.ReplaceParams(navigation.AmountPath, product.ExternalID)
	case product.ReferenceEnabled:
		return navigation.ReplaceParams(navigation.ReferencePath, product.ExternalID)
	default:
		return navigation.ReplaceParams(navigation.ProductPath, product.ExternalID)
	}
}
