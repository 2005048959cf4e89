// Package validation holds the server-side form validation rules for the
// checkout pages. All checks are pure and total: any input string produces
// a Result, never an error.
package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Message keys resolved to payer-facing text by the view layer.
const (
	MsgEnterAnAmountInPounds        = "enterAnAmountInPounds"
	MsgEnterAnAmountInCorrectFormat = "enterAnAmountInTheCorrectFormat"
	MsgEnterAnAmountUnderMaxAmount  = "enterAnAmountUnderMaxAmount"
	MsgEnterAReference              = "enterAReference"
	MsgReferenceTooLong             = "referenceMustBeLessThanOrEqual50Chars"
	MsgReferenceInvalidChars        = "referenceCantUseInvalidChars"
)

const maxReferenceLength = 50

// referenceDisallowedChars are rejected outright; they are the characters
// the edge WAF blocks, so accepting them here would only produce a broken
// request later in the flow.
const referenceDisallowedChars = "<>;:{}|\\"

// amountPattern accepts a non-negative pounds value with up to two pence
// digits, e.g. "10", "10.5", "10.50".
var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

// maxAmount is the largest payable amount in pounds.
var maxAmount = decimal.RequireFromString("100000.00")

// Result is the outcome of validating a single field. MessageKey is set
// only when Valid is false.
type Result struct {
	Valid      bool
	MessageKey string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(messageKey string) Result {
	return Result{Valid: false, MessageKey: messageKey}
}

// ValidateAmount checks a raw amount field value in pounds.
func ValidateAmount(raw string) Result {
	if raw == "" {
		return invalid(MsgEnterAnAmountInPounds)
	}
	if !amountPattern.MatchString(raw) {
		return invalid(MsgEnterAnAmountInCorrectFormat)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return invalid(MsgEnterAnAmountInCorrectFormat)
	}
	if amount.GreaterThan(maxAmount) {
		return invalid(MsgEnterAnAmountUnderMaxAmount)
	}
	return valid()
}

// ValidateReference checks a raw payment reference field value.
func ValidateReference(raw string) Result {
	if raw == "" {
		return invalid(MsgEnterAReference)
	}
	if len([]rune(raw)) > maxReferenceLength {
		return invalid(MsgReferenceTooLong)
	}
	if strings.ContainsAny(raw, referenceDisallowedChars) {
		return invalid(MsgReferenceInvalidChars)
	}
	return valid()
}
