package client

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var requestDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Metrics holds the Prometheus instruments the transport updates.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RetriesTotal    *prometheus.CounterVec
	ThrottleWaits   prometheus.Counter
}

// NewMetrics creates the transport instruments and registers them with reg.
// Instruments already registered by another client on the same registry are
// shared rather than duplicated.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schematics_client_requests_total",
			Help: "Total number of Schematics API requests by operation and status.",
		}, []string{"operation", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "schematics_client_request_duration_seconds",
			Help:    "Schematics API request duration in seconds, retries included.",
			Buckets: requestDurationBuckets,
		}, []string{"operation"}),
		RetriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schematics_client_retries_total",
			Help: "Total number of retried Schematics API requests.",
		}, []string{"operation"}),
		ThrottleWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "schematics_client_throttle_waits_total",
			Help: "Total number of requests delayed by the client-side throttle.",
		}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.RequestsTotal, err = register(reg, m.RequestsTotal); err != nil {
		return nil, err
	}
	if m.RequestDuration, err = register(reg, m.RequestDuration); err != nil {
		return nil, err
	}
	if m.RetriesTotal, err = register(reg, m.RetriesTotal); err != nil {
		return nil, err
	}
	if m.ThrottleWaits, err = register(reg, m.ThrottleWaits); err != nil {
		return nil, err
	}
	return m, nil
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

func (m *Metrics) observe(operationID, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.RequestsTotal.WithLabelValues(operationID, method, label).Inc()
	m.RequestDuration.WithLabelValues(operationID).Observe(d.Seconds())
}

func (m *Metrics) retried(operationID string) {
	if m == nil {
		return
	}
	m.RetriesTotal.WithLabelValues(operationID).Inc()
}

func (m *Metrics) throttled() {
	if m == nil {
		return
	}
	m.ThrottleWaits.Inc()
}
