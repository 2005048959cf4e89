// Package pay hands the payer over to card payment by creating a charge
// against the products API.
package pay

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/correlation"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
	"github.com/kevin07696/payment-pages/internal/middleware"
	"github.com/kevin07696/payment-pages/pkg/observability"
)

const (
	chargeCreated = "created"
	chargeFailed  = "failed"
)

// Handler serves POST for /pay/{productExternalId}/confirm.
type Handler struct {
	products ports.ProductsClient
	sessions ports.SessionStore
	renderer ports.Renderer
	logger   *zap.Logger
}

// NewHandler creates the charge initiation controller.
func NewHandler(
	products ports.ProductsClient,
	sessions ports.SessionStore,
	renderer ports.Renderer,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		products: products,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// MakePayment creates a charge and redirects the payer to the card payment
// page it points at. One attempt only; any failure gets the generic error
// page with the correlation id for support.
func (h *Handler) MakePayment(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	opts := ports.ChargeOptions{}
	if product.ReferenceEnabled {
		reference, _ := h.sessions.Get(r, ports.SessionKeyReference)
		opts.Reference = reference
	}

	chargeAmount := product.Price
	if chargeAmount == nil {
		chargeAmount = ports.SessionAmountPence(h.sessions, r)
		opts.AmountPence = chargeAmount
	}

	charge, err := h.products.CreateCharge(r.Context(), product, opts)
	if err != nil {
		h.logger.Error("failed to create charge",
			zap.String("correlation_id", correlation.FromContext(r.Context())),
			zap.String("product_external_id", product.ExternalID),
			zap.Error(err),
		)
		observability.RecordChargeCreation(chargeFailed, amountOrZero(chargeAmount))
		h.renderer.RenderError(w, r, err)
		return
	}

	h.logger.Info("charge created",
		zap.String("correlation_id", correlation.FromContext(r.Context())),
		zap.String("product_external_id", product.ExternalID),
		zap.String("charge_external_id", charge.ExternalChargeID),
	)
	observability.RecordChargeCreation(chargeCreated, amountOrZero(chargeAmount))

	http.Redirect(w, r, charge.NextLink, http.StatusSeeOther)
}

func amountOrZero(pence *int64) int64 {
	if pence == nil {
		return 0
	}
	return *pence
}
