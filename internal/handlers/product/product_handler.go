// Package product serves the payment link landing page.
package product

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

const templateName = "product/product"

// Handler serves GET for /pay/{productExternalId}.
type Handler struct {
	renderer ports.Renderer
	logger   *zap.Logger
}

// NewHandler creates the landing page controller.
func NewHandler(renderer ports.Renderer, logger *zap.Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
	}
}

// GetPage shows the landing page with a start link into the first wizard
// page the product needs.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	product, ok := middleware.ProductFromContext(r.Context())
	if !ok {
		h.renderer.RenderError(w, r, domain.ErrInternalError)
		return
	}

	data := render.ProductPageData{
		ProductName: product.Name,
		Description: product.Description,
		StartHref:   navigation.ReplaceParams(navigation.FirstPageURL(product), product.ExternalID),
	}
	if product.HasFixedPrice() {
		data.Amount = validation.FormatPence(*product.Price)
	}

	_ = h.renderer.Render(w, templateName, data)
}
