package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BillingMetrics holds all metrics for guarded billable operations.
type BillingMetrics struct {
	// Finalized transactions by outcome
	TransactionsFinalizedTotal prometheus.CounterVec
	RevenueRecordedTotal       prometheus.CounterVec

	// Manual voids
	TransactionsVoidedTotal prometheus.CounterVec

	// Store failures on the guard's write path
	TransactionLogFailuresTotal prometheus.CounterVec

	// Batch runs
	BatchRunsTotal       prometheus.CounterVec
	BatchIterationsTotal prometheus.CounterVec

	// Operation timing
	OperationDuration prometheus.HistogramVec
}

// NewBillingMetrics registers all billing metrics on the given registerer.
func NewBillingMetrics(reg prometheus.Registerer) *BillingMetrics {
	factory := promauto.With(reg)

	return &BillingMetrics{
		TransactionsFinalizedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_transactions_finalized_total",
				Help: "Total transaction records written by the monitor guard",
			},
			[]string{"entity_id", "product_key", "status"},
		),

		RevenueRecordedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_revenue_recorded_total",
				Help: "Total provisional revenue recorded, by product",
			},
			[]string{"entity_id", "product_key"},
		),

		TransactionsVoidedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_transactions_voided_total",
				Help: "Total transactions voided manually by an operator",
			},
			[]string{"entity_id", "product_key"},
		),

		TransactionLogFailuresTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_transaction_log_failures_total",
				Help: "Total transaction writes the store rejected",
			},
			[]string{"product_key"},
		),

		BatchRunsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_batch_runs_total",
				Help: "Total batch runs started",
			},
			[]string{"entity_id", "product_key"},
		),

		BatchIterationsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_batch_iterations_total",
				Help: "Total batch iterations by result",
			},
			[]string{"product_key", "result"},
		),

		OperationDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "billing_operation_duration_seconds",
				Help:    "Wall time of a guarded operation in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 8), // 100ms, 200ms, 400ms...
			},
			[]string{"product_key", "status"},
		),
	}
}

// RecordFinalized records one transaction written at guard exit.
func (m *BillingMetrics) RecordFinalized(entityID, productKey, status string, revenue float64) {
	m.TransactionsFinalizedTotal.WithLabelValues(entityID, productKey, status).Inc()
	if status == "PROVISIONAL" {
		m.RevenueRecordedTotal.WithLabelValues(entityID, productKey).Add(revenue)
	}
}

// RecordManualVoid records an operator-initiated void.
func (m *BillingMetrics) RecordManualVoid(entityID, productKey string) {
	m.TransactionsVoidedTotal.WithLabelValues(entityID, productKey).Inc()
}

// RecordLogFailure records a transaction write the store rejected.
func (m *BillingMetrics) RecordLogFailure(productKey string) {
	m.TransactionLogFailuresTotal.WithLabelValues(productKey).Inc()
}

// RecordBatchRun records one batch run and its per-iteration results.
func (m *BillingMetrics) RecordBatchRun(entityID, productKey string, succeeded, failed int) {
	m.BatchRunsTotal.WithLabelValues(entityID, productKey).Inc()
	m.BatchIterationsTotal.WithLabelValues(productKey, "success").Add(float64(succeeded))
	m.BatchIterationsTotal.WithLabelValues(productKey, "failure").Add(float64(failed))
}

// RecordOperationDuration records wall time of a guarded operation.
func (m *BillingMetrics) RecordOperationDuration(productKey, status string, durationSeconds float64) {
	m.OperationDuration.WithLabelValues(productKey, status).Observe(durationSeconds)
}
