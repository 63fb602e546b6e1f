package koios

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"

	// unknownEndpoint labels calls to names outside the endpoint table.
	unknownEndpoint = "unknown"
)

// Metrics records per-endpoint call counts and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. Collectors
// already registered by another client are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "koios",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Koios endpoint calls by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "koios",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Koios endpoint call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return &Metrics{requests: requests, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) observe(endpoint string, o Outcome, d time.Duration) {
	label := outcomeSuccess
	if o.Error != nil {
		label = string(o.Error.Kind)
	}
	m.requests.WithLabelValues(endpoint, label).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}
