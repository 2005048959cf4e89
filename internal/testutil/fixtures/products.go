package fixtures

import (
	"github.com/kevin07696/payment-pages/internal/domain"
)

// ProductBuilder provides a fluent API for building test products.
type ProductBuilder struct {
	product *domain.Product
}

// NewProduct creates a product builder with sensible defaults: an adhoc
// payment link that takes payer-supplied references.
func NewProduct() *ProductBuilder {
	return &ProductBuilder{
		product: &domain.Product{
			ExternalID:       "an-external-id",
			Name:             "Test product",
			Description:      "A product for testing",
			Price:            nil,
			ReferenceEnabled: true,
		},
	}
}

func (b *ProductBuilder) WithExternalID(externalID string) *ProductBuilder {
	b.product.ExternalID = externalID
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.product.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(pence int64) *ProductBuilder {
	b.product.Price = &pence
	return b
}

func (b *ProductBuilder) WithoutPrice() *ProductBuilder {
	b.product.Price = nil
	return b
}

func (b *ProductBuilder) WithReferenceEnabled(enabled bool) *ProductBuilder {
	b.product.ReferenceEnabled = enabled
	return b
}

func (b *ProductBuilder) WithReferenceLabel(label string) *ProductBuilder {
	b.product.ReferenceLabel = label
	return b
}

func (b *ProductBuilder) Build() *domain.Product {
	copied := *b.product
	return &copied
}

// Convenience functions for common product scenarios

// AdhocProduct creates a reference-enabled product without a fixed price.
func AdhocProduct() *domain.Product {
	return NewProduct().Build()
}

// FixedPriceProduct creates a reference-enabled product with a fixed price.
func FixedPriceProduct(pence int64) *domain.Product {
	return NewProduct().WithPrice(pence).Build()
}

// AutoReferenceProduct creates a product that auto-generates references.
func AutoReferenceProduct() *domain.Product {
	return NewProduct().WithReferenceEnabled(false).Build()
}
