package render

import (
	"github.com/kevin07696/payment-pages/internal/domain/ports"
	"github.com/kevin07696/payment-pages/internal/services/validation"
)

// Translator resolves validation message keys to payer-facing English.
// Single-language for now; the message-key indirection is what keeps the
// validation rules free of copy.
type Translator struct {
	messages map[string]string
}

var _ ports.Translator = (*Translator)(nil)

// NewTranslator creates the English translator.
func NewTranslator() *Translator {
	return &Translator{
		messages: map[string]string{
			validation.MsgEnterAnAmountInPounds:        "Enter an amount in pounds",
			validation.MsgEnterAnAmountInCorrectFormat: "Enter an amount in the correct format, for example 20.00",
			validation.MsgEnterAnAmountUnderMaxAmount:  "Enter an amount that is 100,000.00 or less",
			validation.MsgEnterAReference:              "Enter a payment reference",
			validation.MsgReferenceTooLong:             "Payment reference must be 50 characters or fewer",
			validation.MsgReferenceInvalidChars:        "Payment reference cannot contain < > ; : { } characters",
		},
	}
}

// Translate returns the text for a message key. Unknown keys come back
// unchanged so a missing translation is visible rather than silent.
func (t *Translator) Translate(key string) string {
	if text, ok := t.messages[key]; ok {
		return text
	}
	return key
}
