// Package products is the HTTP client for the products/payments API, the
// backend that owns payment-link configuration and creates charges.
package products

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/correlation"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
)

// Client implements ports.ProductsClient over the products API's JSON
// endpoints. All calls are single-attempt; retrying a charge creation
// could double-charge the payer.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ ports.ProductsClient = (*Client)(nil)

// NewClient creates a products API client. baseURL has no trailing slash,
// e.g. "https://products.internal:9443".
func NewClient(baseURL, apiToken string, httpClient *http.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiToken:   apiToken,
		httpClient: httpClient,
		logger:     logger,
	}
}

// chargeRequest is the create-charge payload. Amount and reference are
// omitted when the product configuration already provides them.
type chargeRequest struct {
	ProductExternalID string `json:"product_external_id"`
	Amount            *int64 `json:"amount,omitempty"`
	ReferenceNumber   string `json:"reference_number,omitempty"`
}

// GetProduct resolves a payment link by its external identifier.
func (c *Client) GetProduct(ctx context.Context, externalID string) (*domain.Product, error) {
	endpoint := fmt.Sprintf("%s/v1/api/products/%s", c.baseURL, url.PathEscape(externalID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeInternalError, "failed to build product request", err)
	}
	c.setHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeUpstreamFailure, "products API request failed", err)
	}
	defer c.drainAndClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		var product domain.Product
		if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
			return nil, domain.WrapError(domain.ErrorCodeUpstreamFailure, "failed to decode product response", err)
		}
		return &product, nil
	case http.StatusNotFound:
		return nil, domain.NewDomainError(domain.ErrorCodeProductNotFound, "product not found").
			WithDetail("product_external_id", externalID)
	default:
		return nil, domain.NewDomainError(domain.ErrorCodeUpstreamFailure,
			fmt.Sprintf("products API returned status %d", resp.StatusCode))
	}
}

// CreateCharge asks the products API to create a charge for the product
// and returns the link the payer's browser should be redirected to.
func (c *Client) CreateCharge(ctx context.Context, product *domain.Product, opts ports.ChargeOptions) (*domain.Charge, error) {
	payload := chargeRequest{
		ProductExternalID: product.ExternalID,
		Amount:            opts.AmountPence,
		ReferenceNumber:   opts.Reference,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeInternalError, "failed to encode charge request", err)
	}

	endpoint := c.baseURL + "/v1/api/charges"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeInternalError, "failed to build charge request", err)
	}
	c.setHeaders(ctx, req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeUpstreamFailure, "charge creation request failed", err)
	}
	defer c.drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, domain.NewDomainError(domain.ErrorCodeUpstreamFailure,
			fmt.Sprintf("charge creation returned status %d", resp.StatusCode)).
			WithDetail("product_external_id", product.ExternalID)
	}

	var charge domain.Charge
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return nil, domain.WrapError(domain.ErrorCodeUpstreamFailure, "failed to decode charge response", err)
	}
	if charge.NextLink == "" {
		return nil, domain.NewDomainError(domain.ErrorCodeUpstreamFailure, "charge response missing next link")
	}
	return &charge, nil
}

// Healthcheck reports whether the products API is reachable. Used by the
// readiness probe only.
func (c *Client) Healthcheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthcheck", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer c.drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("products API healthcheck returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	if correlationID := correlation.FromContext(ctx); correlationID != "" {
		req.Header.Set(correlation.HeaderName, correlationID)
	}
}

// drainAndClose lets the transport reuse the connection.
func (c *Client) drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
