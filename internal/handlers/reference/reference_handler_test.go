package reference

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevin07696/payment-pages/internal/adapters/render"
	"github.com/kevin07696/payment-pages/internal/domain"
	"github.com/kevin07696/payment-pages/internal/domain/ports"
	"github.com/kevin07696/payment-pages/internal/middleware"
	"github.com/kevin07696/payment-pages/internal/services/navigation"
	"github.com/kevin07696/payment-pages/internal/services/validation"
	"github.com/kevin07696/payment-pages/internal/testutil/fixtures"
	"github.com/kevin07696/payment-pages/internal/testutil/mocks"
)

func newTestHandler(sessions *mocks.SessionStore, renderer *mocks.Renderer) *Handler {
	return NewHandler(sessions, renderer, &mocks.Translator{}, navigation.NewResolver(), zap.NewNop())
}

func getRequest(product *domain.Product) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/pay/"+product.ExternalID+"/reference", nil)
	return r.WithContext(middleware.WithProduct(r.Context(), product))
}

func postRequest(product *domain.Product, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/pay/"+product.ExternalID+"/reference",
		strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r.WithContext(middleware.WithProduct(r.Context(), product))
}

func TestGetPage(t *testing.T) {
	t.Run("renders the form for a reference-enabled product", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		product := fixtures.NewProduct().
			WithReferenceLabel("Invoice number").
			Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "reference/reference", renderer.RenderedName)

		data, ok := renderer.RenderedData.(render.ReferencePageData)
		require.True(t, ok)
		assert.Equal(t, product.ExternalID, data.ProductExternalID)
		assert.Equal(t, "Invoice number", data.ReferenceLabel)
		assert.Empty(t, data.ReferenceNumber)
		assert.Empty(t, data.Errors)
	})

	t.Run("prefills the form from the session", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyReference] = "INV-001"
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(fixtures.AdhocProduct()))

		data, ok := renderer.RenderedData.(render.ReferencePageData)
		require.True(t, ok)
		assert.Equal(t, "INV-001", data.ReferenceNumber)
	})

	t.Run("back link points at confirm when a reference is stored", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyReference] = "INV-001"
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		product := fixtures.NewProduct().WithExternalID("prod-123").Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		data, ok := renderer.RenderedData.(render.ReferencePageData)
		require.True(t, ok)
		assert.Equal(t, "/pay/prod-123/confirm", data.BackLinkHref)
	})

	t.Run("back link points at the landing page on first visit", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		product := fixtures.NewProduct().WithExternalID("prod-123").Build()

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(product))

		data, ok := renderer.RenderedData.(render.ReferencePageData)
		require.True(t, ok)
		assert.Equal(t, "/pay/prod-123", data.BackLinkHref)
	})

	t.Run("returns 404 for a product that auto-generates references", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		w := httptest.NewRecorder()
		handler.GetPage(w, getRequest(fixtures.AutoReferenceProduct()))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domain.ErrReferencePageDisabled, renderer.RenderedErr)
		assert.Zero(t, renderer.RenderCalls)
	})
}

func TestPostPage(t *testing.T) {
	t.Run("stores a valid reference and redirects to the amount page", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		product := fixtures.NewProduct().WithExternalID("prod-123").WithoutPrice().Build()

		w := httptest.NewRecorder()
		handler.PostPage(w, postRequest(product, url.Values{"payment-reference": {"INV-001"}}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/pay/prod-123/amount", w.Header().Get("Location"))
		assert.Equal(t, "INV-001", sessions.Values[ports.SessionKeyReference])
	})

	t.Run("redirects to confirm when the product has a fixed price", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		product := fixtures.NewProduct().WithExternalID("prod-123").WithPrice(1050).Build()

		w := httptest.NewRecorder()
		handler.PostPage(w, postRequest(product, url.Values{"payment-reference": {"INV-001"}}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/pay/prod-123/confirm", w.Header().Get("Location"))
	})

	t.Run("redirects to confirm when an amount is already in the session", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyAmount] = "2500"
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		product := fixtures.NewProduct().WithExternalID("prod-123").WithoutPrice().Build()

		w := httptest.NewRecorder()
		handler.PostPage(w, postRequest(product, url.Values{"payment-reference": {"INV-001"}}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/pay/prod-123/confirm", w.Header().Get("Location"))
	})

	t.Run("routes a card-like reference to the warning page", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		product := fixtures.NewProduct().WithExternalID("prod-123").WithPrice(1050).Build()

		w := httptest.NewRecorder()
		handler.PostPage(w, postRequest(product, url.Values{"payment-reference": {"4242424242424242"}}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/pay/prod-123/reference/confirm", w.Header().Get("Location"))
		assert.Equal(t, "4242424242424242", sessions.Values[ports.SessionKeyReference])
	})

	t.Run("re-renders with an error when the reference is empty", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		w := httptest.NewRecorder()
		handler.PostPage(w, postRequest(fixtures.AdhocProduct(), url.Values{"payment-reference": {""}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "reference/reference", renderer.RenderedName)

		data, ok := renderer.RenderedData.(render.ReferencePageData)
		require.True(t, ok)
		assert.Equal(t, "translated:"+validation.MsgEnterAReference, data.Errors["payment-reference"])
		assert.Empty(t, sessions.SetCalls)
	})

	t.Run("echoes the rejected value back into the form", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		tooLong := strings.Repeat("a", 51)

		w := httptest.NewRecorder()
		handler.PostPage(w, postRequest(fixtures.AdhocProduct(), url.Values{"payment-reference": {tooLong}}))

		data, ok := renderer.RenderedData.(render.ReferencePageData)
		require.True(t, ok)
		assert.Equal(t, tooLong, data.ReferenceNumber)
		assert.Equal(t, "translated:"+validation.MsgReferenceTooLong, data.Errors["payment-reference"])
		assert.Empty(t, sessions.SetCalls)
	})

	t.Run("leaves the stored reference untouched on validation failure", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.Values[ports.SessionKeyReference] = "INV-001"
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		w := httptest.NewRecorder()
		handler.PostPage(w, postRequest(fixtures.AdhocProduct(), url.Values{"payment-reference": {"bad<ref>"}}))

		assert.Equal(t, "INV-001", sessions.Values[ports.SessionKeyReference])

		data, ok := renderer.RenderedData.(render.ReferencePageData)
		require.True(t, ok)
		assert.Equal(t, "translated:"+validation.MsgReferenceInvalidChars, data.Errors["payment-reference"])
	})

	t.Run("resubmitting the same reference gives the same result", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		product := fixtures.NewProduct().WithExternalID("prod-123").WithoutPrice().Build()

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			handler.PostPage(w, postRequest(product, url.Values{"payment-reference": {"INV-001"}}))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/pay/prod-123/amount", w.Header().Get("Location"))
			assert.Equal(t, "INV-001", sessions.Values[ports.SessionKeyReference])
		}
	})

	t.Run("renders the error page when the session write fails", func(t *testing.T) {
		sessions := mocks.NewSessionStore()
		sessions.SetErr = assert.AnError
		renderer := &mocks.Renderer{}
		handler := newTestHandler(sessions, renderer)

		w := httptest.NewRecorder()
		handler.PostPage(w, postRequest(fixtures.AdhocProduct(), url.Values{"payment-reference": {"INV-001"}}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
