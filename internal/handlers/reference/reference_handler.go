// Package reference serves the payment reference entry page.
package reference

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/adapters/render"
	"github.com/kevin07696/payment-pages/internal/correlation"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
	"github.com/kevin07696/payment-pages/internal/middleware"
	"github.com/kevin07696/payment-pages/internal/services/navigation"
	"github.com/kevin07696/payment-pages/internal/services/validation"
	"github.com/kevin07696/payment-pages/pkg/observability"
)

const referenceField = "payment-reference"

const templateName = "reference/reference"

// Handler serves GET and POST for /pay/{productExternalId}/reference.
type Handler struct {
	sessions   ports.SessionStore
	renderer   ports.Renderer
	translator ports.Translator
	nav        *navigation.Resolver
	logger     *zap.Logger
}

// NewHandler creates the reference page controller.
func NewHandler(
	sessions ports.SessionStore,
	renderer ports.Renderer,
	translator ports.Translator,
	nav *navigation.Resolver,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sessions:   sessions,
		renderer:   renderer,
		translator: translator,
		nav:        nav,
		logger:     logger,
	}
}

// GetPage shows the reference entry form. Products that auto-generate
// references must never reach this page; requesting it for one is a 404.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	if !product.ReferenceEnabled {
		h.logger.Warn("reference page requested for auto-reference product",
			zap.String("correlation_id", correlation.FromContext(r.Context())),
			zap.String("product_external_id", product.ExternalID),
		)
		h.renderer.RenderError(w, r, domain.ErrReferencePageDisabled)
		return
	}

	sessionReference, _ := h.sessions.Get(r, ports.SessionKeyReference)

	_ = h.renderer.Render(w, templateName, h.pageData(product, sessionReference, sessionReference, nil))
}

// PostPage validates the submitted reference. Invalid input re-renders the
// form with the value echoed back and the session untouched; valid input is
// persisted and the payer is redirected to whichever page comes next.
func (h *Handler) PostPage(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	paymentReference := r.PostFormValue(referenceField)

	sessionReference, _ := h.sessions.Get(r, ports.SessionKeyReference)
	sessionAmount := ports.SessionAmountPence(h.sessions, r)

	if result := validation.ValidateReference(paymentReference); !result.Valid {
		observability.RecordValidationFailure(referenceField, result.MessageKey)
		errors := map[string]string{
			referenceField: h.translator.Translate(result.MessageKey),
		}
		_ = h.renderer.Render(w, templateName, h.pageData(product, sessionReference, paymentReference, errors))
		return
	}

	if err := h.sessions.Set(w, r, ports.SessionKeyReference, paymentReference); err != nil {
		h.logger.Error("failed to persist reference to session",
			zap.String("correlation_id", correlation.FromContext(r.Context())),
			zap.String("product_external_id", product.ExternalID),
			zap.Error(err),
		)
		h.renderer.RenderError(w, r, err)
		return
	}

	nextTemplate := h.nav.NextPageURL(product.Price, sessionAmount, paymentReference)
	if nextTemplate == navigation.ReferenceConfirmPath {
		observability.RecordCardNumberReference()
	}

	http.Redirect(w, r, navigation.ReplaceParams(nextTemplate, product.ExternalID), http.StatusSeeOther)
}

// pageData builds the view model. The back link depends on the stored
// session reference, not the value being submitted.
func (h *Handler) pageData(product *domain.Product, sessionReference, fieldValue string, errors map[string]string) render.ReferencePageData {
	backLink := navigation.ReplaceParams(
		h.nav.ReferenceBackLinkURL(sessionReference),
		product.ExternalID,
	)

	return render.ReferencePageData{
		ProductExternalID: product.ExternalID,
		ProductName:       product.Name,
		BackLinkHref:      backLink,
		ReferenceNumber:   fieldValue,
		ReferenceLabel:    product.ReferenceLabel,
		ReferenceHint:     product.ReferenceHint,
		Errors:            errors,
	}
}
