package qdrant

import (
	"fmt"

	"github.com/second-state/qdrant-rest-client/v1/vectordb"
)

// buildFilter converts a vectordb.FilterSet into Qdrant's REST filter JSON.
// Returns nil for a nil or empty filter set, so callers can pass the result
// straight into searchPointsRequest.Filter.
//
// Conditions this backend cannot express are reported as errors rather
// than silently dropped.
func buildFilter(filters *vectordb.FilterSet) (map[string]any, error) {
	if filters == nil {
		return nil, nil
	}

	filter := make(map[string]any)

	must, err := buildConditionSet(filters.Must)
	if err != nil {
		return nil, err
	}
	if len(must) > 0 {
		filter["must"] = must
	}

	should, err := buildConditionSet(filters.Should)
	if err != nil {
		return nil, err
	}
	if len(should) > 0 {
		filter["should"] = should
	}

	mustNot, err := buildConditionSet(filters.MustNot)
	if err != nil {
		return nil, err
	}
	if len(mustNot) > 0 {
		filter["must_not"] = mustNot
	}

	if len(filter) == 0 {
		return nil, nil
	}
	return filter, nil
}

func buildConditionSet(cs *vectordb.ConditionSet) ([]map[string]any, error) {
	if cs == nil {
		return nil, nil
	}

	conditions := make([]map[string]any, 0, len(cs.Conditions))
	for _, c := range cs.Conditions {
		cond, err := buildCondition(c)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

// buildCondition translates one condition into its wire form. Qdrant's REST
// filter syntax nests the operator under the payload key:
//
//	{"key": "city", "match": {"value": "London"}}
//	{"key": "price", "range": {"gte": 10, "lt": 100}}
//	{"is_null": {"key": "subtitle"}}
func buildCondition(c vectordb.FilterCondition) (map[string]any, error) {
	switch cond := c.(type) {
	case *vectordb.MatchCondition:
		return map[string]any{
			"key":   cond.Field,
			"match": map[string]any{"value": cond.Value},
		}, nil

	case *vectordb.MatchAnyCondition:
		return map[string]any{
			"key":   cond.Field,
			"match": map[string]any{"any": cond.Values},
		}, nil

	case *vectordb.MatchExceptCondition:
		return map[string]any{
			"key":   cond.Field,
			"match": map[string]any{"except": cond.Values},
		}, nil

	case *vectordb.NumericRangeCondition:
		r := make(map[string]any)
		if cond.Range.Gt != nil {
			r["gt"] = *cond.Range.Gt
		}
		if cond.Range.Gte != nil {
			r["gte"] = *cond.Range.Gte
		}
		if cond.Range.Lt != nil {
			r["lt"] = *cond.Range.Lt
		}
		if cond.Range.Lte != nil {
			r["lte"] = *cond.Range.Lte
		}
		return map[string]any{
			"key":   cond.Field,
			"range": r,
		}, nil

	case *vectordb.TimeRangeCondition:
		r := make(map[string]any)
		if cond.Range.Gt != nil {
			r["gt"] = cond.Range.Gt
		}
		if cond.Range.Gte != nil {
			r["gte"] = cond.Range.Gte
		}
		if cond.Range.Lt != nil {
			r["lt"] = cond.Range.Lt
		}
		if cond.Range.Lte != nil {
			r["lte"] = cond.Range.Lte
		}
		return map[string]any{
			"key":            cond.Field,
			"datetime_range": r,
		}, nil

	case *vectordb.IsNullCondition:
		return map[string]any{
			"is_null": map[string]any{"key": cond.Field},
		}, nil

	case *vectordb.IsEmptyCondition:
		return map[string]any{
			"is_empty": map[string]any{"key": cond.Field},
		}, nil

	default:
		return nil, fmt.Errorf("qdrant: unsupported filter condition type %T", c)
	}
}
