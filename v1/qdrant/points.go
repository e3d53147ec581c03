package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// statusOK is the success sentinel of the envelope status field.
const statusOK = "ok"

// UpsertPoints inserts-or-replaces the given points, keyed by point id,
// as a single batch in one request. The request is issued with wait=true,
// so the call returns only after the server has applied the write.
//
// The client does no batching or splitting; callers control batch sizes.
// Vector lengths must match the collection's dimensionality; the server
// rejects mismatches, which surface as a RequestFailedError.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, points []Point) (err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("upsert_points", collectionName, "", time.Since(start), err, int64(len(points)), nil)
	}()

	env, err := c.doJSON(ctx, request{
		op:     "upsert_points",
		method: http.MethodPut,
		path:   collectionPath(collectionName, "/points"),
		query:  "wait=true",
		body:   upsertPointsRequest{Points: points},
	})
	if err != nil {
		return err
	}

	if status := env.statusString(); status != statusOK {
		return &RequestFailedError{Op: "upsert_points", Status: status}
	}

	c.logger.Debug("upserted points",
		zap.String("collection", collectionName),
		zap.Int("count", len(points)),
	)
	return nil
}

// GetPoint fetches a single point by id, including its vector and payload.
// A missing result field is a DecodeError; this shortcut never masks a
// decode failure as an empty point.
func (c *Client) GetPoint(ctx context.Context, collectionName string, id PointID) (point *Point, err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("get_point", collectionName, id.String(), time.Since(start), err, 0, nil)
	}()

	env, err := c.doJSON(ctx, request{
		op:     "get_point",
		method: http.MethodGet,
		path:   collectionPath(collectionName, "/points/"+url.PathEscape(id.String())),
	})
	if err != nil {
		return nil, err
	}

	if env.Result == nil {
		return nil, &DecodeError{Op: "get_point", Field: "result"}
	}

	var p Point
	if err := json.Unmarshal(env.Result, &p); err != nil {
		return nil, &DecodeError{Op: "get_point", Field: "result", Err: err}
	}

	return &p, nil
}

// GetPoints fetches points by id, including vectors and payloads.
//
// IDs the server does not know are simply absent from the result: partial
// misses are the server's report, not an error this layer fabricates. A
// response without the result array is a DecodeError.
func (c *Client) GetPoints(ctx context.Context, collectionName string, ids []PointID) (points []Point, err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("get_points", collectionName, "", time.Since(start), err, int64(len(points)), nil)
	}()

	env, err := c.doJSON(ctx, request{
		op:     "get_points",
		method: http.MethodPost,
		path:   collectionPath(collectionName, "/points"),
		body: getPointsRequest{
			IDs:         ids,
			WithPayload: true,
			WithVector:  true,
		},
	})
	if err != nil {
		return nil, err
	}

	if env.Result == nil {
		return nil, &DecodeError{Op: "get_points", Field: "result"}
	}

	if err := json.Unmarshal(env.Result, &points); err != nil {
		return nil, &DecodeError{Op: "get_points", Field: "result", Err: err}
	}

	return points, nil
}

// DeletePoints removes points by id, waiting for the deletion to be
// applied before returning (wait=true, same contract as UpsertPoints).
// Deleting ids that do not exist is not an error; the operation is
// idempotent.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []PointID) (err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("delete_points", collectionName, "", time.Since(start), err, int64(len(ids)), nil)
	}()

	_, err = c.doJSON(ctx, request{
		op:       "delete_points",
		method:   http.MethodPost,
		path:     collectionPath(collectionName, "/points/delete"),
		query:    "wait=true",
		body:     deletePointsRequest{Points: ids},
		noDecode: true,
	})
	if err != nil {
		return err
	}

	c.logger.Debug("deleted points",
		zap.String("collection", collectionName),
		zap.Int("count", len(ids)),
	)
	return nil
}
