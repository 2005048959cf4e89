// Package refconfirm serves the warning page shown when an entered
// payment reference looks like a card number.
package refconfirm

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/adapters/render"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
	"github.com/kevin07696/payment-pages/internal/middleware"
	"github.com/kevin07696/payment-pages/internal/services/navigation"
)

const templateName = "reference/reference-confirm"

// Handler serves GET and POST for /pay/{productExternalId}/reference/confirm.
type Handler struct {
	sessions ports.SessionStore
	renderer ports.Renderer
	nav      *navigation.Resolver
	logger   *zap.Logger
}

// NewHandler creates the reference warning page controller.
func NewHandler(sessions ports.SessionStore, renderer ports.Renderer, nav *navigation.Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		renderer: renderer,
		nav:      nav,
		logger:   logger,
	}
}

// GetPage shows the warning with the stored reference. Without a stored
// reference there is nothing to confirm, so the payer goes back to
// reference entry.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	sessionReference, _ := h.sessions.Get(r, ports.SessionKeyReference)
	if sessionReference == "" {
		http.Redirect(w, r,
			navigation.ReplaceParams(navigation.ReferencePath, product.ExternalID),
			http.StatusSeeOther)
		return
	}

	_ = h.renderer.Render(w, templateName, render.ReferenceConfirmPageData{
		ProductName:     product.Name,
		ReferenceNumber: sessionReference,
		BackLinkHref:    navigation.ReplaceParams(navigation.ReferencePath, product.ExternalID),
	})
}

// PostPage is the payer confirming the reference really is a reference.
// The card number check is skipped and the flow continues on the usual
// price/session-amount rule.
func (h *Handler) PostPage(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	sessionAmount := ports.SessionAmountPence(h.sessions, r)
	next := navigation.ReplaceParams(
		h.nav.ConfirmedNextPageURL(product.Price, sessionAmount),
		product.ExternalID,
	)
	http.Redirect(w, r, next, http.StatusSeeOther)
}
