package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics.
const (
	MetricLookup               = "lookup"
	MetricLookupDuration       = "lookup.duration"
	MetricCertificateIssued    = "certificate.issued"
	MetricCertificateVerified  = "certificate.verified"
	MetricCertificateRender    = "certificate.render"
	MetricSeedInserted         = "seed.inserted"
	MetricSeedIgnored          = "seed.ignored"
	MetricSeedDuration         = "seed.duration"
	MetricStoreAccounts        = "store.accounts"
	MetricLookupFailed         = "lookup.failed"
	MetricCertificateRenderErr = "certificate.render.failed"
)

type PrometheusMetrics struct {
	lookupsTotal              *prometheus.CounterVec
	lookupFailures            prometheus.Counter
	lookupDuration            prometheus.Histogram
	certificatesIssued        prometheus.Counter
	certificateVerifications  *prometheus.CounterVec
	certificateRenderDuration prometheus.Histogram
	certificateRenderFailures prometheus.Counter
	seedRowsTotal             *prometheus.CounterVec
	seedDuration              prometheus.Histogram
	storedAccounts            prometheus.Gauge
}

// NewPrometheusMetrics registers the service metrics on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		lookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predial_lookups_total",
				Help: "Total number of account lookups by channel and outcome",
			},
			[]string{"channel", "outcome"},
		),
		lookupFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "predial_lookup_failures_total",
				Help: "Total number of lookups that failed on the store",
			},
		),
		lookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "predial_lookup_duration_seconds",
				Help:    "Account lookup duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		certificatesIssued: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "predial_certificates_issued_total",
				Help: "Total number of certificates issued",
			},
		),
		certificateVerifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predial_certificate_verifications_total",
				Help: "Total number of certificate verifications by result",
			},
			[]string{"result"},
		),
		certificateRenderDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "predial_certificate_render_duration_milliseconds",
				Help:    "Certificate PDF render duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		certificateRenderFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "predial_certificate_render_failures_total",
				Help: "Total number of certificate renders that failed",
			},
		),
		seedRowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predial_seed_rows_total",
				Help: "Seed rows processed by result",
			},
			[]string{"result"},
		),
		seedDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "predial_seed_duration_seconds",
				Help:    "Seed step duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		storedAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "predial_stored_accounts",
				Help: "Number of accounts in the store after initialization",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricLookup:
		channel := tags["channel"]
		outcome := tags["outcome"]
		if channel != "" && outcome != "" {
			m.lookupsTotal.WithLabelValues(channel, outcome).Inc()
		}
	case MetricLookupFailed:
		m.lookupFailures.Inc()
	case MetricCertificateIssued:
		m.certificatesIssued.Inc()
	case MetricCertificateVerified:
		if result := tags["result"]; result != "" {
			m.certificateVerifications.WithLabelValues(result).Inc()
		}
	case MetricCertificateRenderErr:
		m.certificateRenderFailures.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricLookupDuration:
		m.lookupDuration.Observe(duration.Seconds())
	case MetricCertificateRender:
		m.certificateRenderDuration.Observe(float64(duration.Milliseconds()))
	case MetricSeedDuration:
		m.seedDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSeedInserted:
		m.seedRowsTotal.WithLabelValues("inserted").Add(value)
	case MetricSeedIgnored:
		m.seedRowsTotal.WithLabelValues("ignored").Add(value)
	case MetricStoreAccounts:
		m.storedAccounts.Set(value)
	}
}
