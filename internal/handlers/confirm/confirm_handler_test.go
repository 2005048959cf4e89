package confirm

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/adapters/render"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
	"github.com/kevin07696/payment-pages/internal/middleware"
	"github.com/kevin07696/payment-pages/internal/testutil/fixtures"
	"github.com/kevin07696/payment-pages/internal/testutil/mocks"
)

func getRequest(product *domain.Product) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/pay/"+product.ExternalID+"/confirm", nil)
	return r.WithContext(middleware.WithProduct(r.Context(), product))
}

func TestGetPage(t *testing.T) {
	t.Run("renders the summary for a fixed-price product", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyReference] = "INV-001"
		renderer := &mocks.Renderer{}
		handler := NewHandler(sessions, renderer, zap.NewNop())

		product := fixtures.NewProduct().WithExternalID("prod-123").WithPrice(1050).Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "confirm/confirm", renderer.RenderedName)

		data, ok := renderer.RenderedData.(render.ConfirmPageData)
		require.True(t, ok)
		assert.Equal(t, "INV-001", data.ReferenceNumber)
		assert.Equal(t, "10.50", data.Amount)
		assert.Equal(t, "/pay/prod-123/reference", data.BackLinkHref)
		assert.Equal(t, "/pay/prod-123/reference", data.ChangeReferenceHref)
		assert.Empty(t, data.ChangeAmountHref)
	})

	t.Run("uses the session amount for adhoc products", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyReference] = "INV-001"
		sessions.Values[ports.SessionKeyAmount] = "2500"
		renderer := &mocks.Renderer{}
		handler := NewHandler(sessions, renderer, zap.NewNop())

		product := fixtures.NewProduct().WithExternalID("prod-123").WithoutPrice().Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		data, ok := renderer.RenderedData.(render.ConfirmPageData)
		require.True(t, ok)
		assert.Equal(t, "25.00", data.Amount)
		assert.Equal(t, "/pay/prod-123/amount", data.BackLinkHref)
		assert.Equal(t, "/pay/prod-123/amount", data.ChangeAmountHref)
	})

	t.Run("the product price wins over a stale session amount", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyReference] = "INV-001"
		sessions.Values[ports.SessionKeyAmount] = "2500"
		renderer := &mocks.Renderer{}
		handler := NewHandler(sessions, renderer, zap.NewNop())

		product := fixtures.NewProduct().WithPrice(1050).Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		data, ok := renderer.RenderedData.(render.ConfirmPageData)
		require.True(t, ok)
		assert.Equal(t, "10.50", data.Amount)
	})

	t.Run("omits the reference row for auto-reference products", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyAmount] = "2500"
		renderer := &mocks.Renderer{}
		handler := NewHandler(sessions, renderer, zap.NewNop())

		product := fixtures.NewProduct().WithReferenceEnabled(false).Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		data, ok := renderer.RenderedData.(render.ConfirmPageData)
		require.True(t, ok)
		assert.Empty(t, data.ReferenceNumber)
		assert.Empty(t, data.ChangeReferenceHref)
	})

	t.Run("redirects to reference entry when the reference is missing", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyAmount] = "2500"
		renderer := &mocks.Renderer{}
		handler := NewHandler(sessions, renderer, zap.NewNop())

		product := fixtures.NewProduct().WithExternalID("prod-123").Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/pay/prod-123/reference", w.Header().Get("Location"))
		assert.Zero(t, renderer.RenderCalls)
	})

	t.Run("redirects to amount entry when no amount is known", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyReference] = "INV-001"
		renderer := &mocks.Renderer{}
		handler := NewHandler(sessions, renderer, zap.NewNop())

		product := fixtures.NewProduct().WithExternalID("prod-123").WithoutPrice().Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/pay/prod-123/amount", w.Header().Get("Location"))
	})
}
