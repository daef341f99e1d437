// Package metrics exposes Prometheus counters for the intake pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the intake service.
type Metrics struct {
	SubmissionsAccepted *prometheus.CounterVec
	SubmissionsRejected *prometheus.CounterVec
	EmailsSent          prometheus.Counter
	EmailsFailed        prometheus.Counter
}

// New creates and registers all intake metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		SubmissionsAccepted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fightnight_submissions_accepted_total",
			Help: "Form submissions that passed validation and were persisted, by form.",
		}, []string{"form"}),
		SubmissionsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fightnight_submissions_rejected_total",
			Help: "Form submissions rejected by validation, by form.",
		}, []string{"form"}),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fightnight_confirmation_emails_sent_total",
			Help: "Confirmation emails delivered to the relay without error.",
		}),
		EmailsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fightnight_confirmation_emails_failed_total",
			Help: "Confirmation email attempts that failed at the relay.",
		}),
	}
}

// NewForTest creates metrics on a private registry so parallel tests don't
// collide on duplicate registration.
func NewForTest() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		SubmissionsAccepted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fightnight_submissions_accepted_total",
			Help: "Form submissions that passed validation and were persisted, by form.",
		}, []string{"form"}),
		SubmissionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fightnight_submissions_rejected_total",
			Help: "Form submissions rejected by validation, by form.",
		}, []string{"form"}),
		EmailsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "fightnight_confirmation_emails_sent_total",
			Help: "Confirmation emails delivered to the relay without error.",
		}),
		EmailsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fightnight_confirmation_emails_failed_total",
			Help: "Confirmation email attempts that failed at the relay.",
		}),
	}
}
