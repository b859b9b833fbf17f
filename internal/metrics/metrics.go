// Package metrics exposes the registry's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

var (
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_form_submissions_total",
			Help: "Total number of form submissions by outcome",
		},
		[]string{"form", "outcome"},
	)

	FieldRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_field_rejections_total",
			Help: "Total number of rejected field values",
		},
		[]string{"form", "field"},
	)

	ValidationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_validation_duration_seconds",
			Help:    "Duration of form validation in seconds",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		},
		[]string{"form"},
	)
)
