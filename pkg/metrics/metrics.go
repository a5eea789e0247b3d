package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов Prometheus для сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	QuotesComputed      prometheus.Counter
	IntervalViolations  prometheus.Counter
	SubmissionsTotal    *prometheus.CounterVec
	CatalogCacheLookups *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает коллекторы и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		QuotesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_quotes_computed_total",
			Help:        "Number of package quotes computed for drafts",
			ConstLabels: labels,
		}),

		IntervalViolations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_interval_violations_total",
			Help:        "Number of rejected occurrence date edits",
			ConstLabels: labels,
		}),

		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Number of submitted drafts by result",
			ConstLabels: labels,
		}, []string{"result"}),

		CatalogCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_cache_lookups_total",
			Help:        "Task catalog cache lookups by result",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.QuotesComputed,
		m.IntervalViolations,
		m.SubmissionsTotal,
		m.CatalogCacheLookups,
	)

	return m
}

// IncQuote увеличивает счётчик рассчитанных смет (nil-safe)
func (m *Metrics) IncQuote() {
	if m == nil {
		return
	}
	m.QuotesComputed.Inc()
}

// IncIntervalViolation увеличивает счётчик отклонённых правок даты (nil-safe)
func (m *Metrics) IncIntervalViolation() {
	if m == nil {
		return
	}
	m.IntervalViolations.Inc()
}

// IncSubmission увеличивает счётчик отправок с указанным результатом (nil-safe)
func (m *Metrics) IncSubmission(result string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(result).Inc()
}

// IncCatalogLookup увеличивает счётчик обращений к кэшу каталога (nil-safe)
func (m *Metrics) IncCatalogLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CatalogCacheLookups.WithLabelValues(result).Inc()
}
