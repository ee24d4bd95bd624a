package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OpPayment    = "payment"
	OpWithdrawal = "withdrawal"
)

// Operation results.
const (
	ResultApplied            = "applied"
	ResultInvalidInput       = "invalid_input"
	ResultRejected           = "rejected"
	ResultPersistenceFailure = "persistence_failure"
	ResultError              = "error"
)

type Collector struct {
	registry          *prometheus.Registry
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	savedPaise        prometheus.Counter
	withdrawnPaise    prometheus.Counter
	badges            *prometheus.CounterVec
	insightFailures   *prometheus.CounterVec
	activeSessions    prometheus.Gauge
}

// New registers every metric on a private registry.
func New() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paygrow_operations_total",
			Help: "Payments and withdrawals by result",
		}, []string{"op", "result"}),
		operationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paygrow_operation_duration_seconds",
			Help:    "Time taken to apply and persist an operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		savedPaise: factory.NewCounter(prometheus.CounterOpts{
			Name: "paygrow_saved_paise_total",
			Help: "Round-up savings moved into savings pots",
		}),
		withdrawnPaise: factory.NewCounter(prometheus.CounterOpts{
			Name: "paygrow_withdrawn_paise_total",
			Help: "Savings withdrawn back to main balances",
		}),
		badges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paygrow_badges_earned_total",
			Help: "Badge tiers reported after a payment",
		}, []string{"tier"}),
		insightFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paygrow_insight_failures_total",
			Help: "Failed insight calls by kind",
		}, []string{"kind"}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "paygrow_active_sessions",
			Help: "Accounts with a live session",
		}),
	}
}

func (c *Collector) RecordOperation(op, result string, d time.Duration) {
	c.operations.WithLabelValues(op, result).Inc()
	c.operationDuration.WithLabelValues(op).Observe(d.Seconds())
}

func (c *Collector) AddSaved(paise int64) {
	c.savedPaise.Add(float64(paise))
}

func (c *Collector) AddWithdrawn(paise int64) {
	c.withdrawnPaise.Add(float64(paise))
}

func (c *Collector) RecordBadge(tier string) {
	c.badges.WithLabelValues(tier).Inc()
}

func (c *Collector) RecordInsightFailure(kind string) {
	c.insightFailures.WithLabelValues(kind).Inc()
}

func (c *Collector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
