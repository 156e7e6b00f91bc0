package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	TransactionsApplied  *prometheus.CounterVec
	TransactionsRejected *prometheus.CounterVec
	ApplyDuration        prometheus.Histogram
	TransactionAmount    prometheus.Histogram

	// Statement metrics
	StatementReads   prometheus.Counter
	StatementLatency prometheus.Histogram
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_transactions_applied_total",
				Help: "Total number of transactions applied by kind",
			},
			[]string{"kind"},
		),
		TransactionsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_transactions_rejected_total",
				Help: "Total number of rejected transactions by reason",
			},
			[]string{"reason"},
		),
		ApplyDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankledger_apply_duration_seconds",
			Help:    "Duration of apply operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankledger_transaction_amount_cents",
			Help:    "Applied transaction amounts in cents",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),

		StatementReads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_statement_reads_total",
			Help: "Total number of statement reads",
		}),
		StatementLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankledger_statement_duration_seconds",
			Help:    "Duration of statement reads",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
