// Package amount serves the payment amount entry page.
package amount

import (
	"net/http"
	"strconv"

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

const amountField = "payment-amount"

const templateName = "amount/amount"

// Handler serves GET and POST for /pay/{productExternalId}/amount.
type Handler struct {
	sessions   ports.SessionStore
	renderer   ports.Renderer
	translator ports.Translator
	nav        *navigation.Resolver
	logger     *zap.Logger
}

// NewHandler creates the amount page controller.
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

// GetPage shows the amount entry form. Fixed-price products must never
// reach this page; requesting it for one is a 404.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	if product.HasFixedPrice() {
		h.logger.Warn("amount page requested for fixed-price product",
			zap.String("correlation_id", correlation.FromContext(r.Context())),
			zap.String("product_external_id", product.ExternalID),
		)
		h.renderer.RenderError(w, r, domain.ErrAmountPageFixedPrice)
		return
	}

	fieldValue := ""
	if pence := ports.SessionAmountPence(h.sessions, r); pence != nil {
		fieldValue = validation.FormatPence(*pence)
	}

	_ = h.renderer.Render(w, templateName, h.pageData(r, product, fieldValue, nil))
}

// PostPage validates the submitted amount. Invalid input re-renders the
// form with the value echoed back and the session untouched; valid input is
// converted to pence, persisted and the payer moves on to confirm.
func (h *Handler) PostPage(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	paymentAmount := r.PostFormValue(amountField)

	if result := validation.ValidateAmount(paymentAmount); !result.Valid {
		observability.RecordValidationFailure(amountField, result.MessageKey)
		errors := map[string]string{
			amountField: h.translator.Translate(result.MessageKey),
		}
		_ = h.renderer.Render(w, templateName, h.pageData(r, product, paymentAmount, errors))
		return
	}

	pence, err := validation.ParseAmountToPence(paymentAmount)
	if err != nil {
		h.renderer.RenderError(w, r, domain.WrapError(domain.ErrorCodeInternalError, "failed to convert amount to pence", err))
		return
	}

	if err := h.sessions.Set(w, r, ports.SessionKeyAmount, strconv.FormatInt(pence, 10)); err != nil {
		h.logger.Error("failed to persist amount to session",
			zap.String("correlation_id", correlation.FromContext(r.Context())),
			zap.String("product_external_id", product.ExternalID),
			zap.Error(err),
		)
		h.renderer.RenderError(w, r, err)
		return
	}

	sessionReference, _ := h.sessions.Get(r, ports.SessionKeyReference)
	next := navigation.ReplaceParams(
		h.nav.NextPageURL(product.Price, &pence, sessionReference),
		product.ExternalID,
	)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *Handler) pageData(r *http.Request, product *domain.Product, fieldValue string, errors map[string]string) render.AmountPageData {
	sessionReference, _ := h.sessions.Get(r, ports.SessionKeyReference)
	backLink := navigation.ReplaceParams(
		h.nav.AmountBackLinkURL(sessionReference, product),
		product.ExternalID,
	)

	return render.AmountPageData{
		ProductExternalID: product.ExternalID,
		ProductName:       product.Name,
		BackLinkHref:      backLink,
		Amount:            fieldValue,
		Errors:            errors,
	}
}
