package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeCompleted = "completed"
	OutcomeRejected  = "rejected"
)

// Metrics holds the simulator collectors.
type Metrics struct {
	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	steps       prometheus.Counter
	rejections  *prometheus.CounterVec
	length      prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fasim_simulations_total",
				Help: "Total number of simulations run, by outcome",
			},
			[]string{"outcome"},
		),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fasim_transitions_total",
			Help: "Total number of transitions taken",
		}),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fasim_illegal_inputs_total",
				Help: "Total number of illegal inputs, by the state they were read in",
			},
			[]string{"state"},
		),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fasim_trajectory_steps",
			Help:    "Number of inputs consumed per simulation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	m.registry.MustRegister(m.simulations, m.steps, m.rejections, m.length)
	return m
}

// Registry exposes the underlying registry, e.g. to add process collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that record engine activity.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.steps.Inc()
		},
		OnReject: func(ctx context.Context, e *domain.StepEvent) {
			m.rejections.WithLabelValues(e.From).Inc()
		},
		OnComplete: func(ctx context.Context, e *domain.CompleteEvent) {
			outcome := OutcomeCompleted
			if e.Rejected {
				outcome = OutcomeRejected
			}
			m.simulations.WithLabelValues(outcome).Inc()
			m.length.Observe(float64(e.Steps))
		},
	}
}

// CombineHooks fans every event out to each set of hooks in order.
func CombineHooks(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range all {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnReject: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range all {
				if h.OnReject != nil {
					h.OnReject(ctx, e)
				}
			}
		},
		OnComplete: func(ctx context.Context, e *domain.CompleteEvent) {
			for _, h := range all {
				if h.OnComplete != nil {
					h.OnComplete(ctx, e)
				}
			}
		},
	}
}
