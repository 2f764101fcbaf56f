package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dtroode/authcore/internal/model"
)

const outcomeOK = "ok"

// Metrics holds the service collectors.
type Metrics struct {
	flows           *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		flows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_flow_total",
			Help: "Total number of auth flow invocations by outcome",
		}, []string{"flow", "outcome"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// RecordFlow counts one invocation of flow. The outcome is "ok", the error
// kind of an expected failure, or "error".
func (m *Metrics) RecordFlow(flow string, err error) {
	m.flows.WithLabelValues(flow, Outcome(err)).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func Outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	if kind, ok := model.KindOf(err); ok {
		return kind.String()
	}
	return "error"
}
