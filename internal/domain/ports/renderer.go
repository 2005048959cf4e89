package ports

import "net/http"

// Renderer writes HTML responses for the checkout pages.
type Renderer interface {
	// Render executes the named view with data and writes it with a 200
	Render(w http.ResponseWriter, name string, data interface{}) error

	// RenderError dispatches a domain error to the matching error page:
	// not-found codes get the 404 page, everything else the generic 500
	RenderError(w http.ResponseWriter, r *http.Request, err error)
}

// Translator resolves validation message keys to payer-facing text.
type Translator interface {
	Translate(key string) string
}
