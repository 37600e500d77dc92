// Package metrics exposes Prometheus collectors for reservation traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Reservations counts reservation attempts by line and outcome
	// (committed, unavailable, invalid).
	Reservations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "train_reservations_total",
		Help: "Reservation attempts by line and outcome",
	}, []string{"line", "outcome"})

	// Cancellations counts cancel requests by line and outcome
	// (cancelled, not_found, invalid).
	Cancellations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "train_cancellations_total",
		Help: "Cancellation requests by line and outcome",
	}, []string{"line", "outcome"})

	// AvailableSeats observes how many seats an availability query found.
	AvailableSeats = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "train_available_seats",
		Help:    "Seats found free per availability query",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	}, []string{"line"})

	// EventPublishFailures counts ticket events that could not be published.
	EventPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "train_event_publish_failures_total",
		Help: "Ticket events that failed to publish",
	})
)
