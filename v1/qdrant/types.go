package qdrant

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PointID identifies a point within a collection. Qdrant accepts either an
// unsigned 64-bit integer or a UUID string, and serializes both untagged:
// on the wire a PointID is a bare JSON number or a bare JSON string.
//
// A PointID is immutable once constructed and comparable with ==; a numeric
// id never turns into a textual one across a wire round trip.
type PointID struct {
	num     uint64
	uuid    string
	numeric bool
}

// NewNumID creates a numeric point id.
func NewNumID(num uint64) PointID {
	return PointID{num: num, numeric: true}
}

// NewStringID creates a textual (UUID) point id.
func NewStringID(uuid string) PointID {
	return PointID{uuid: uuid}
}

// Num returns the numeric value and whether this id is numeric.
func (id PointID) Num() (uint64, bool) {
	return id.num, id.numeric
}

// UUID returns the textual value and whether this id is textual.
func (id PointID) UUID() (string, bool) {
	return id.uuid, !id.numeric
}

// String renders the id the way it appears in request paths.
func (id PointID) String() string {
	if id.numeric {
		return strconv.FormatUint(id.num, 10)
	}
	return id.uuid
}

// MarshalJSON emits the untagged wire form: a bare number for numeric ids,
// a JSON string for textual ones.
func (id PointID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return strconv.AppendUint(nil, id.num, 10), nil
	}
	return json.Marshal(id.uuid)
}

// UnmarshalJSON reconstructs the variant from the untagged wire form by
// trying the numeric representation first, then the textual one. A quoted
// value can never parse as a number, so numeric ids round-trip exactly.
func (id *PointID) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op for numeric targets, so reject
	// it before the numeric attempt.
	if string(data) == "null" {
		return fmt.Errorf("point id is neither a u64 nor a string: %s", data)
	}

	var num uint64
	if err := json.Unmarshal(data, &num); err == nil {
		*id = PointID{num: num, numeric: true}
		return nil
	}

	var uuid string
	if err := json.Unmarshal(data, &uuid); err != nil {
		return fmt.Errorf("point id is neither a u64 nor a string: %s", data)
	}
	*id = PointID{uuid: uuid}
	return nil
}

// Point is a record consisting of an id, a vector, and an optional payload.
// The vector length must equal the dimensionality the collection was
// created with; the server rejects mismatches.
type Point struct {
	// ID of the point, unique within its collection.
	ID PointID `json:"id"`

	// Vector is the embedding, in collection order.
	Vector []float32 `json:"vector"`

	// Payload is optional structured metadata; values may be nested JSON.
	Payload map[string]any `json:"payload,omitempty"`
}

// ScoredPoint is a search result: a point plus its similarity score.
// Vector and Payload are present only when the search requested them;
// whether a higher score is better depends on the collection's distance
// metric, which this layer does not interpret.
type ScoredPoint struct {
	// ID of the matched point.
	ID PointID `json:"id"`

	// Vector of the matched point, if requested.
	Vector []float32 `json:"vector,omitempty"`

	// Payload of the matched point, if requested.
	Payload map[string]any `json:"payload,omitempty"`

	// Score is the point's distance/similarity to the query vector.
	Score float32 `json:"score"`
}

// CollectionDetail carries the collection metadata this client surfaces
// from GET /collections/{name}. The rest of the server's deeply nested
// config envelope stays hidden.
type CollectionDetail struct {
	// Name is the collection name the detail was fetched for.
	Name string `json:"name"`

	// Status is the server-reported state (e.g. "green", "yellow").
	Status string `json:"status"`

	// PointsCount is the number of stored points.
	PointsCount uint64 `json:"pointsCount"`

	// VectorSize is the fixed embedding dimensionality.
	VectorSize uint64 `json:"vectorSize"`

	// Distance is the metric fixed at creation (e.g. "Cosine").
	Distance string `json:"distance"`
}

// ── Wire types ───────────────────────────────────────────────────────────────
//
// Everything below is package-private request/response plumbing. Field names
// follow the server's snake_case convention; the exported types above keep
// the client-facing camelCase names.

// envelope is the generic Qdrant response wrapper {status, time, result}.
// Result stays raw so each operation can decode it into its own shape,
// or detect its absence, which search treats as an empty result set.
type envelope struct {
	Status json.RawMessage `json:"status"`
	Time   float64         `json:"time"`
	Result json.RawMessage `json:"result"`
}

// statusString returns the status field when it is a plain string
// (the success sentinel is "ok"); failure envelopes carry an object here,
// for which this returns "".
func (e *envelope) statusString() string {
	var s string
	if err := json.Unmarshal(e.Status, &s); err != nil {
		return ""
	}
	return s
}

// statusError extracts the error message from a failure envelope,
// where status is {"error": "..."}.
func (e *envelope) statusError() string {
	var s struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(e.Status, &s); err != nil {
		return ""
	}
	return s.Error
}

type vectorParams struct {
	Size     uint64 `json:"size"`
	Distance string `json:"distance"`
	OnDisk   bool   `json:"on_disk"`
}

type createCollectionRequest struct {
	Vectors vectorParams `json:"vectors"`
}

type upsertPointsRequest struct {
	Points []Point `json:"points"`
}

type getPointsRequest struct {
	IDs         []PointID `json:"ids"`
	WithPayload bool      `json:"with_payload"`
	WithVector  bool      `json:"with_vector"`
}

type deletePointsRequest struct {
	Points []PointID `json:"points"`
}

type searchPointsRequest struct {
	Vector         []float32      `json:"vector"`
	Limit          uint64         `json:"limit"`
	WithPayload    bool           `json:"with_payload"`
	WithVector     bool           `json:"with_vector"`
	ScoreThreshold float32        `json:"score_threshold"`
	Filter         map[string]any `json:"filter,omitempty"`
}
