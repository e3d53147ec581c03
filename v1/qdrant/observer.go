package qdrant

import (
	"time"

	"github.com/second-state/qdrant-rest-client/v1/observability"
)

// observeOperation notifies the observer about a completed operation if one
// is configured. This is used internally to track client operations for
// metrics.
//
// Notes:
//   - resource: the collection the operation acted on
//   - subResource: additional context like a point id
//   - size: operation-defined (points written, results returned)
func (c *Client) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "qdrant",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
