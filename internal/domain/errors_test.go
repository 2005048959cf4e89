package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(ErrorCodeUpstreamFailure, "products API request failed", cause)

	assert.Equal(t, ErrorCodeUpstreamFailure, GetErrorCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "UPSTREAM_FAILURE")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetErrorCodeThroughWrapping(t *testing.T) {
	inner := NewDomainError(ErrorCodeProductNotFound, "product not found")
	wrapped := fmt.Errorf("resolving page: %w", inner)

	assert.Equal(t, ErrorCodeProductNotFound, GetErrorCode(wrapped))
	assert.Empty(t, string(GetErrorCode(errors.New("plain"))))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrProductNotFound))
	assert.True(t, IsNotFoundError(ErrReferencePageDisabled))
	assert.True(t, IsNotFoundError(ErrAmountPageFixedPrice))
	assert.False(t, IsNotFoundError(ErrInternalError))
	assert.False(t, IsNotFoundError(errors.New("plain")))
}

func TestPageMisuseMessages(t *testing.T) {
	assert.Equal(t,
		"Attempted to access reference page with a product that auto-generates references.",
		ErrReferencePageDisabled.Message)
	assert.Equal(t,
		"Attempted to access amount page with a product that already has a price.",
		ErrAmountPageFixedPrice.Message)
}

func TestWithDetail(t *testing.T) {
	err := NewDomainError(ErrorCodeProductNotFound, "product not found").
		WithDetail("product_external_id", "prod-123")

	assert.Equal(t, "prod-123", err.Details["product_external_id"])
}
