package domain

// Product is a configured payment link. It is resolved once per request by
// the product middleware and treated as immutable from then on.
type Product struct {
	// ExternalID is the identifier used in /pay/{productExternalId} paths
	ExternalID string `json:"external_id"`

	// Name is shown on every page of the checkout flow
	Name string `json:"name"`

	// Description is optional text for the landing page
	Description string `json:"description"`

	// Price is the fixed amount in pence. Nil means the payer enters the
	// amount themselves on the amount page.
	Price *int64 `json:"price"`

	// ReferenceEnabled is true when the payer supplies their own payment
	// reference. When false the backend auto-generates one and the
	// reference page must not be reachable.
	ReferenceEnabled bool `json:"reference_enabled"`

	// ReferenceLabel optionally overrides the field label on the
	// reference page (e.g. "invoice number")
	ReferenceLabel string `json:"reference_label"`

	// ReferenceHint is optional help text shown under the reference field
	ReferenceHint string `json:"reference_hint"`
}

// HasFixedPrice reports whether the payer is charged a preconfigured amount.
func (p *Product) HasFixedPrice() bool {
	return p.Price != nil
}

// Charge is a payment created for a product by the products API. NextLink
// is where the payer's browser is sent to enter card details.
type Charge struct {
	ExternalChargeID string `json:"external_charge_id"`
	NextLink         string `json:"next_link"`
}
