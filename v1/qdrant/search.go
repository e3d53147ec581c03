package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/second-state/qdrant-rest-client/v1/vectordb"
)

// SearchPoints performs a nearest-neighbor search against a collection and
// returns at most limit results, in the server's order (best match first
// by convention; this layer imposes no re-sort). Vectors and payloads are
// always requested back.
//
// scoreThreshold is passed through and applied server-side; zero means no
// cutoff. Score semantics (higher- vs lower-is-better) come from the
// collection's distance metric.
//
// Failure policy: transport failures and non-2xx HTTP statuses are
// surfaced as errors; they are never degraded to an empty result. The one
// tolerated absence is a success envelope without a "result" field, which
// some server variants emit for "no matches"; that decodes as an empty
// slice. A "result" that is present but not an array is a DecodeError.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, vector []float32, limit uint64, scoreThreshold float32) ([]ScoredPoint, error) {
	return c.searchPoints(ctx, collectionName, searchPointsRequest{
		Vector:         vector,
		Limit:          limit,
		WithPayload:    true,
		WithVector:     true,
		ScoreThreshold: scoreThreshold,
	})
}

// SearchPointsWithFilter is SearchPoints restricted to points matching the
// given filter conditions. The filter is translated to the server's native
// filter syntax and applied server-side; a nil filter behaves exactly like
// SearchPoints.
func (c *Client) SearchPointsWithFilter(ctx context.Context, collectionName string, vector []float32, limit uint64, scoreThreshold float32, filters *vectordb.FilterSet) ([]ScoredPoint, error) {
	filter, err := buildFilter(filters)
	if err != nil {
		return nil, err
	}

	return c.searchPoints(ctx, collectionName, searchPointsRequest{
		Vector:         vector,
		Limit:          limit,
		WithPayload:    true,
		WithVector:     true,
		ScoreThreshold: scoreThreshold,
		Filter:         filter,
	})
}

func (c *Client) searchPoints(ctx context.Context, collectionName string, req searchPointsRequest) (results []ScoredPoint, err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("search_points", collectionName, "", time.Since(start), err, int64(len(results)), map[string]interface{}{
			"limit":           req.Limit,
			"score_threshold": req.ScoreThreshold,
		})
	}()

	env, err := c.doJSON(ctx, request{
		op:     "search_points",
		method: http.MethodPost,
		path:   collectionPath(collectionName, "/points/search"),
		body:   req,
	})
	if err != nil {
		return nil, err
	}

	if env.Result == nil {
		// Tolerated server variant: success envelope with no result key
		// on "no matches". Everything else propagates.
		c.logger.Warn("search response has no result field, treating as empty",
			zap.String("collection", collectionName),
		)
		return []ScoredPoint{}, nil
	}

	if err := json.Unmarshal(env.Result, &results); err != nil {
		return nil, &DecodeError{Op: "search_points", Field: "result", Err: err}
	}

	c.logger.Debug("search returned",
		zap.String("collection", collectionName),
		zap.Int("count", len(results)),
	)
	return results, nil
}
