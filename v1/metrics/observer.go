package metrics

import (
	"github.com/second-state/qdrant-rest-client/v1/observability"
)

// PromObserver translates observability.OperationContext reports into the
// built-in Prometheus metrics of a Metrics instance.
//
// Attach it to a client with WithObserver:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "ingest"})
//	client := qdrant.NewClientWithURL(url).WithObserver(metrics.NewPromObserver(m))
type PromObserver struct {
	metrics *Metrics
}

// NewPromObserver creates an Observer backed by the given Metrics instance.
func NewPromObserver(m *Metrics) *PromObserver {
	return &PromObserver{metrics: m}
}

// ObserveOperation records one completed client operation.
// Safe for concurrent use; Prometheus collectors synchronize internally.
func (o *PromObserver) ObserveOperation(ctx observability.OperationContext) {
	if o == nil || o.metrics == nil {
		return
	}

	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	o.metrics.operationsTotal.
		WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	o.metrics.operationDuration.
		WithLabelValues(ctx.Component, ctx.Operation).
		Observe(ctx.Duration.Seconds())

	if ctx.Size > 0 {
		o.metrics.operationSize.
			WithLabelValues(ctx.Component, ctx.Operation).
			Observe(float64(ctx.Size))
	}
}
