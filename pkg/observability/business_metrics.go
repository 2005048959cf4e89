package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Charge creation metrics
	chargeCreationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "charge_creations_total",
		Help: "Total charge creation attempts against the products API",
	}, []string{
		"status", // created, failed
	})

	chargeAmountPence = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "charge_amount_pence_total",
		Help: "Total charged amount in pence (for revenue tracking)",
	}, []string{
		"status",
	})

	// Form validation metrics
	formValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "form_validation_failures_total",
		Help: "Total form submissions rejected by field validation",
	}, []string{
		"field",       // payment-reference, payment-amount
		"message_key", // which rule failed
	})

	// Card-like reference detections on the reference field
	cardNumberReferencesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "card_number_references_total",
		Help: "Total references routed to the card number warning page",
	})
)

// RecordChargeCreation records a charge creation attempt and its amount.
func RecordChargeCreation(status string, amountPence int64) {
	chargeCreationsTotal.WithLabelValues(status).Inc()
	chargeAmountPence.WithLabelValues(status).Add(float64(amountPence))
}

// RecordValidationFailure records a rejected form submission.
func RecordValidationFailure(field, messageKey string) {
	formValidationFailuresTotal.WithLabelValues(field, messageKey).Inc()
}

// RecordCardNumberReference records a reference that tripped the card
// number heuristic.
func RecordCardNumberReference() {
	cardNumberReferencesTotal.Inc()
}
