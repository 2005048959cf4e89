package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
)

// ProductsClient is a testify mock for ports.ProductsClient.
type ProductsClient struct {
	mock.Mock
}

var _ ports.ProductsClient = (*ProductsClient)(nil)

func (m *ProductsClient) GetProduct(ctx context.Context, externalID string) (*domain.Product, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *ProductsClient) CreateCharge(ctx context.Context, product *domain.Product, opts ports.ChargeOptions) (*domain.Charge, error) {
	args := m.Called(ctx, product, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}
