package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/correlation"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
)

type productCtxKey struct{}

// WithProduct returns a context carrying the resolved product. Exported
// for handler tests that bypass the middleware.
func WithProduct(ctx context.Context, product *domain.Product) context.Context {
	return context.WithValue(ctx, productCtxKey{}, product)
}

// ProductFromContext returns the product resolved for this request.
func ProductFromContext(ctx context.Context) (*domain.Product, bool) {
	product, ok := ctx.Value(productCtxKey{}).(*domain.Product)
	return product, ok
}

// ProductResolver looks up the payment link named in the URL and attaches
// it to the request context before any page controller runs.
type ProductResolver struct {
	products ports.ProductsClient
	renderer ports.Renderer
	logger   *zap.Logger
}

// NewProductResolver creates the product resolution middleware.
func NewProductResolver(products ports.ProductsClient, renderer ports.Renderer, logger *zap.Logger) *ProductResolver {
	return &ProductResolver{
		products: products,
		renderer: renderer,
		logger:   logger,
	}
}

// Middleware resolves {productExternalId} and stores the product in the
// context. Unknown products get the 404 page, upstream failures the
// generic error page.
func (pr *ProductResolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		externalID := chi.URLParam(r, "productExternalId")
		if externalID == "" {
			pr.renderer.RenderError(w, r, domain.ErrProductNotFound)
			return
		}

		product, err := pr.products.GetProduct(r.Context(), externalID)
		if err != nil {
			pr.logger.Warn("failed to resolve product",
				zap.String("correlation_id", correlation.FromContext(r.Context())),
				zap.String("product_external_id", externalID),
				zap.Error(err),
			)
			pr.renderer.RenderError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithProduct(r.Context(), product)))
	})
}
