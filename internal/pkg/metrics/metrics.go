package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by usecases and middleware.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordAgreementTransition(status string)
	RecordPaymentSettled()
	RecordPaymentIntent(success bool)
}

type Collector struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	settlements prometheus.Counter
	intents     *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "building_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "building_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "building_agreement_transitions_total",
			Help: "Agreement status transitions by target status.",
		}, []string{"status"}),
		settlements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "building_payments_settled_total",
			Help: "Payments recorded against an accepted agreement.",
		}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "building_payment_intents_total",
			Help: "Payment intent requests by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.transitions,
		c.settlements,
		c.intents,
	)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordAgreementTransition(status string) {
	c.transitions.WithLabelValues(status).Inc()
}

func (c *Collector) RecordPaymentSettled() {
	c.settlements.Inc()
}

func (c *Collector) RecordPaymentIntent(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	c.intents.WithLabelValues(outcome).Inc()
}

// Handler serves the registry for Prometheus scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordAgreementTransition(string)                 {}
func (Nop) RecordPaymentSettled()                            {}
func (Nop) RecordPaymentIntent(bool)                         {}
