package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instrumentation for inventory operations.
// Collectors are registered on the supplied registry; exposition is left
// to the embedding process.
type Metrics struct {
	OperationsTotal *prometheus.CounterVec
	OperationErrors *prometheus.CounterVec
	LedgerItems     prometheus.Gauge
}

// New registers and returns the inventory metrics
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockkeeper",
			Name:      "inventory_operations_total",
			Help:      "Total number of completed inventory operations",
		}, []string{"operation"}),
		OperationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockkeeper",
			Name:      "inventory_operation_errors_total",
			Help:      "Total number of failed inventory operations",
		}, []string{"operation"}),
		LedgerItems: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "stockkeeper",
			Name:      "inventory_ledger_items",
			Help:      "Number of distinct items currently in the ledger",
		}),
	}
}
