package qdrant

import (
	"errors"
	"fmt"
)

// Common qdrant client errors.
var (
	// ErrCollectionExists is returned by CreateCollection when the target
	// collection already exists. The check happens client-side, before any
	// create request is issued.
	ErrCollectionExists = errors.New("qdrant: collection already exists")

	// ErrCollectionNotFound is returned by DeleteCollection when the target
	// collection does not exist. The check happens client-side, before any
	// delete request is issued.
	ErrCollectionNotFound = errors.New("qdrant: collection not found")
)

// TransportError reports that the HTTP call itself could not be completed:
// DNS, connect, TLS, timeout, or context cancellation. The client never
// retries; the underlying cause is reachable through Unwrap.
type TransportError struct {
	// Op is the logical operation, e.g. "search_points".
	Op string

	// Err is the underlying transport failure.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("qdrant: %s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RequestFailedError reports that the call completed but the server signaled
// failure: a non-2xx HTTP status, a status field other than the "ok"
// sentinel, or a falsy result where a true acknowledgment was required.
type RequestFailedError struct {
	// Op is the logical operation, e.g. "create_collection".
	Op string

	// StatusCode is the HTTP status, when the failure was HTTP-level.
	StatusCode int

	// Status carries the server's status string or error message, if any.
	Status string
}

func (e *RequestFailedError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("qdrant: %s failed: status %d: %s", e.Op, e.StatusCode, e.Status)
	}
	return fmt.Sprintf("qdrant: %s failed: status %d", e.Op, e.StatusCode)
}

// DecodeError reports that a response body was not valid JSON or lacked an
// expected field at a point where absence is not an accepted empty case.
type DecodeError struct {
	// Op is the logical operation, e.g. "list_collections".
	Op string

	// Field names the missing or malformed envelope field, when known
	// (e.g. "result.collections").
	Field string

	// Err is the underlying json error, if decoding itself failed.
	Err error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("qdrant: %s: decode %q: %v", e.Op, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("qdrant: %s: response is missing %q", e.Op, e.Field)
	default:
		return fmt.Sprintf("qdrant: %s: decode response: %v", e.Op, e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsConflict checks if the error is a "collection already exists" error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrCollectionExists)
}

// IsNotFound checks if the error is a "collection not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCollectionNotFound)
}

// IsTransport checks if the error is a transport-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRequestFailed checks if the error is a server-reported failure.
func IsRequestFailed(err error) bool {
	var re *RequestFailedError
	return errors.As(err, &re)
}

// IsDecode checks if the error is a response decoding failure.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
