package observability

import "time"

// OperationContext captures a single client operation for observability
// purposes. It is emitted by instrumented clients (e.g. the qdrant package)
// after every completed operation, whether it succeeded or failed.
type OperationContext struct {
	// Component identifies the emitting client, e.g. "qdrant".
	Component string

	// Operation is the logical operation name, e.g. "upsert_points".
	Operation string

	// Resource is the primary resource the operation acted on,
	// e.g. the collection name.
	Resource string

	// SubResource carries additional addressing context, e.g. a point id.
	SubResource string

	// Duration is the wall-clock time the operation took, including the
	// HTTP round trip and response decoding.
	Duration time.Duration

	// Error is the error returned by the operation, or nil on success.
	Error error

	// Size is an operation-defined payload size (e.g. number of points
	// upserted, results returned). Zero when not meaningful.
	Size int64

	// Metadata holds free-form extra fields (e.g. limit, score threshold).
	Metadata map[string]interface{}
}

// Observer receives operation reports from instrumented clients.
//
// Implementations must be safe for concurrent use; clients may report from
// multiple goroutines. The canonical implementation is metrics.PromObserver,
// which translates reports into Prometheus counters and histograms.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
