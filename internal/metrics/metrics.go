// Package metrics owns the process-local Prometheus registry. A private
// registry keeps the scrape surface limited to what this service registers.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dpletzke/LightBnB/internal/consts"
)

type Metrics struct {
	registry *prometheus.Registry

	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	CacheEvents   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	_ = reg.Register(prometheus.NewGoCollector())
	_ = reg.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: consts.ServiceName,
			Name:      "queries_total",
			Help:      "Data-access operations by outcome.",
		}, []string{"op", "status"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: consts.ServiceName,
			Name:      "query_duration_seconds",
			Help:      "Data-access operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		CacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: consts.ServiceName,
			Name:      "search_cache_events_total",
			Help:      "Search cache lookups by result.",
		}, []string{"result"}),
	}
	_ = reg.Register(m.QueriesTotal)
	_ = reg.Register(m.QueryDuration)
	_ = reg.Register(m.CacheEvents)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveQuery records the outcome and latency of one data-access operation.
// Nil receivers are no-ops so wiring metrics stays optional.
func (m *Metrics) ObserveQuery(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.QueriesTotal.WithLabelValues(op, status).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.CacheEvents.WithLabelValues("hit").Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheEvents.WithLabelValues("miss").Inc()
}
