package ports

import (
	"context"

	"github.com/kevin07696/payment-pages/internal/domain"
)

// ChargeOptions carries the payer-supplied values collected by the wizard.
// AmountPence is only sent for products without a fixed price; Reference is
// only sent for reference-enabled products.
type ChargeOptions struct {
	AmountPence *int64
	Reference   string
}

// ProductsClient is the narrow interface to the products/payments API. The
// correlation identifier travels on the context and is forwarded as a
// request header so log lines can be joined across both services.
type ProductsClient interface {
	// GetProduct resolves a payment link by its external identifier.
	// Returns a PRODUCT_NOT_FOUND domain error for unknown identifiers.
	GetProduct(ctx context.Context, externalID string) (*domain.Product, error)

	// CreateCharge asks the products API to create a charge for the
	// product. Single attempt, no retry; failures come back as
	// UPSTREAM_FAILURE domain errors.
	CreateCharge(ctx context.Context, product *domain.Product, opts ChargeOptions) (*domain.Charge, error)
}
