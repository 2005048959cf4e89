// Package navigation decides which checkout page a payer sees next and
// which back link each page shows, based on product configuration and the
// values already collected in the session.
package navigation

import (
	"strings"

	"github.com/kevin07696/payment-pages/internal/domain"
)

// Path templates for the checkout flow. The productExternalId parameter is
// substituted with ReplaceParams before redirecting.
const (
	ProductPath          = "/pay/{productExternalId}"
	AmountPath           = "/pay/{productExternalId}/amount"
	ConfirmPath          = "/pay/{productExternalId}/confirm"
	ReferencePath        = "/pay/{productExternalId}/reference"
	ReferenceConfirmPath = "/pay/{productExternalId}/reference/confirm"
)

const productExternalIDParam = "{productExternalId}"

// ReplaceParams substitutes the product external identifier into a path
// template.
func ReplaceParams(pathTemplate, productExternalID string) string {
	return strings.Replace(pathTemplate, productExternalIDParam, productExternalID, 1)
}

// CardNumberPredicate reports whether a payment reference looks like it
// could be a card number entered by mistake.
type CardNumberPredicate func(reference string) bool

// Resolver computes next-page and back-link targets. The card number check
// is pluggable; the zero-config resolver uses IsAPotentialCardNumber.
type Resolver struct {
	isCardNumber CardNumberPredicate
}

// NewResolver creates a resolver with the default card number heuristic.
func NewResolver() *Resolver {
	return &Resolver{isCardNumber: IsAPotentialCardNumber}
}

// NewResolverWithCardCheck creates a resolver with a custom card number
// predicate.
func NewResolverWithCardCheck(predicate CardNumberPredicate) *Resolver {
	return &Resolver{isCardNumber: predicate}
}

// NextPageURL returns the path template for the page after a reference
// submission. A reference that looks like a card number always routes to
// the warning page, whatever else is known.
func (r *Resolver) NextPageURL(productPrice, sessionAmount *int64, reference string) string {
	if r.isCardNumber(reference) {
		return ReferenceConfirmPath
	}
	if productPrice != nil || sessionAmount != nil {
		return ConfirmPath
	}
	return AmountPath
}

// ConfirmedNextPageURL is NextPageURL without the card number check, used
// once the payer has confirmed their reference really is a reference.
func (r *Resolver) ConfirmedNextPageURL(productPrice, sessionAmount *int64) string {
	if productPrice != nil || sessionAmount != nil {
		return ConfirmPath
	}
	return AmountPath
}

// ReferenceBackLinkURL returns the back link template for the reference
// page. A payer with a stored reference arrived from the confirm page;
// anyone else came from the product landing page.
func (r *Resolver) ReferenceBackLinkURL(sessionReference string) string {
	if sessionReference != "" {
		return ConfirmPath
	}
	return ProductPath
}

// AmountBackLinkURL returns the back link template for the amount page.
func (r *Resolver) AmountBackLinkURL(sessionReference string, product *domain.Product) string {
	if product.ReferenceEnabled && sessionReference != "" {
		return ReferencePath
	}
	return ProductPath
}

// FirstPageURL returns the first wizard page for a product: reference
// entry when the payer supplies one, amount entry for adhoc products,
// straight to confirm when everything is preconfigured.
func FirstPageURL(product *domain.Product) string {
	if product.ReferenceEnabled {
		return ReferencePath
	}
	if !product.HasFixedPrice() {
		return AmountPath
	}
	return ConfirmPath
}

// IsAPotentialCardNumber is the default heuristic for catching payers who
// typed their card number into the reference field: after stripping spaces
// and dashes the value is all digits, has a plausible PAN length, and
// carries a valid Luhn check digit.
func IsAPotentialCardNumber(reference string) bool {
	normalized := normalizeDigits(reference)
	if len(normalized) < 12 || len(normalized) > 19 {
		return false
	}
	return luhnValid(normalized)
}

// normalizeDigits strips spaces, tabs and dashes. Returns "" as soon as a
// non-digit remains, so callers only see digit strings.
func normalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '-':
			continue
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			return ""
		}
	}
	return b.String()
}

func luhnValid(digits string) bool {
	sum, double := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
