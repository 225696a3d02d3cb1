package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business
	TransactionsCreated *prometheus.CounterVec
	TransactionErrors   *prometheus.CounterVec
	PurchaseAmount      prometheus.Histogram

	// Database
	DBQueryDuration *prometheus.HistogramVec

	// Validation
	ValidationErrors *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviestore_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moviestore_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "moviestore_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviestore_transactions_created_total",
				Help: "Total number of ledger transactions created, by type",
			},
			[]string{"type"},
		),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviestore_transaction_errors_total",
				Help: "Total number of failed balance operations, by type and reason",
			},
			[]string{"type", "reason"},
		),
		PurchaseAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "moviestore_purchase_amount",
				Help:    "Distribution of purchase amounts in currency units",
				Buckets: prometheus.ExponentialBuckets(1000, 4, 8),
			},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moviestore_db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table", "status"},
		),
		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviestore_validation_errors_total",
				Help: "Total number of request validation failures",
			},
			[]string{"field", "tag"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordTransactionCreated(txType string) {
	m.TransactionsCreated.WithLabelValues(txType).Inc()
}

func (m *Metrics) RecordTransactionError(txType, reason string) {
	m.TransactionErrors.WithLabelValues(txType, reason).Inc()
}

func (m *Metrics) RecordPurchaseAmount(amount int64) {
	m.PurchaseAmount.Observe(float64(amount))
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation, table, status).Observe(duration.Seconds())
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}
