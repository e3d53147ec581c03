package qdrant

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointIDWireForm(t *testing.T) {
	numJSON, err := json.Marshal(NewNumID(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(numJSON), "numeric ids serialize as bare numbers")

	strJSON, err := json.Marshal(NewStringID("550e8400-e29b-41d4-a716-446655440000"))
	require.NoError(t, err)
	assert.Equal(t, `"550e8400-e29b-41d4-a716-446655440000"`, string(strJSON), "textual ids serialize as bare strings")
}

func TestPointIDRoundTrip(t *testing.T) {
	ids := []PointID{
		NewNumID(0),
		NewNumID(1),
		NewNumID(18446744073709551615), // max u64
		NewStringID(uuid.NewString()),
		NewStringID("not-a-uuid-but-still-textual"),
	}

	for _, id := range ids {
		data, err := json.Marshal(id)
		require.NoError(t, err)

		var decoded PointID
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, id, decoded, "round trip must preserve the variant exactly")
	}
}

func TestPointIDNumericStaysNumeric(t *testing.T) {
	var decoded PointID
	require.NoError(t, json.Unmarshal([]byte("7"), &decoded))

	num, ok := decoded.Num()
	require.True(t, ok, "a JSON number must decode to the numeric variant")
	assert.Equal(t, uint64(7), num)

	_, isText := decoded.UUID()
	assert.False(t, isText)
}

func TestPointIDTextualStaysTextual(t *testing.T) {
	// A numeric-looking string stays textual: quoting is the tag.
	var decoded PointID
	require.NoError(t, json.Unmarshal([]byte(`"7"`), &decoded))

	text, ok := decoded.UUID()
	require.True(t, ok)
	assert.Equal(t, "7", text)
}

func TestPointIDRejectsOtherShapes(t *testing.T) {
	for _, raw := range []string{"null", "true", "[1]", `{"num":1}`, "-5", "1.5"} {
		var id PointID
		assert.Error(t, json.Unmarshal([]byte(raw), &id), "input %s", raw)
	}
}

func TestPointIDString(t *testing.T) {
	assert.Equal(t, "42", NewNumID(42).String())
	assert.Equal(t, "abc", NewStringID("abc").String())
}

func TestPointRoundTrip(t *testing.T) {
	points := []Point{
		{
			ID:     NewNumID(1),
			Vector: []float32{0.05, 0.61, 0.76, 0.74},
			Payload: map[string]any{
				"city":  "Berlin",
				"tags":  []any{"capital", "eu"},
				"stats": map[string]any{"population": 3.65e6},
			},
		},
		{
			ID:     NewStringID(uuid.NewString()),
			Vector: []float32{0.1, 0.2},
		},
	}

	for _, p := range points {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var decoded Point
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, p, decoded)
	}
}

func TestPointOmitsEmptyPayload(t *testing.T) {
	data, err := json.Marshal(Point{ID: NewNumID(1), Vector: []float32{1}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "payload")
}

func TestScoredPointDecode(t *testing.T) {
	raw := `{"id":3,"version":0,"score":0.99,"vector":[0.1,0.2],"payload":{"city":"London"}}`

	var sp ScoredPoint
	require.NoError(t, json.Unmarshal([]byte(raw), &sp))

	assert.Equal(t, NewNumID(3), sp.ID)
	assert.InDelta(t, 0.99, float64(sp.Score), 1e-6)
	assert.Equal(t, []float32{0.1, 0.2}, sp.Vector)
	assert.Equal(t, map[string]any{"city": "London"}, sp.Payload)
}

func TestScoredPointDecodeWithoutOptionalFields(t *testing.T) {
	// Score is always present; vector/payload only when requested.
	var sp ScoredPoint
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","score":0.5}`), &sp))

	assert.Equal(t, NewStringID("a"), sp.ID)
	assert.Nil(t, sp.Vector)
	assert.Nil(t, sp.Payload)
}
