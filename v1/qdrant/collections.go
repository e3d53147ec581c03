package qdrant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// defaultDistance is the metric used for collections created by this
// client. The server fixes it at creation time; changing it later requires
// recreating the collection.
const defaultDistance = "Cosine"

// collectionPath builds "/collections/{name}" with the name path-escaped.
func collectionPath(name string, suffix string) string {
	return "/collections/" + url.PathEscape(name) + suffix
}

// ListCollections retrieves the names of all existing collections.
// An empty collection set is a valid result and comes back as an empty
// slice; a response missing the result.collections structure is a
// DecodeError.
func (c *Client) ListCollections(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("list_collections", "", "", time.Since(start), err, int64(len(names)), nil)
	}()

	env, err := c.doJSON(ctx, request{
		op:     "list_collections",
		method: http.MethodGet,
		path:   "/collections",
	})
	if err != nil {
		return nil, err
	}

	if env.Result == nil {
		return nil, &DecodeError{Op: "list_collections", Field: "result"}
	}

	var result struct {
		Collections *[]struct {
			Name string `json:"name"`
		} `json:"collections"`
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, &DecodeError{Op: "list_collections", Field: "result.collections", Err: err}
	}
	if result.Collections == nil {
		return nil, &DecodeError{Op: "list_collections", Field: "result.collections"}
	}

	names = make([]string, 0, len(*result.Collections))
	for _, collection := range *result.Collections {
		names = append(names, collection.Name)
	}

	c.logger.Debug("listed collections", zap.Int("count", len(names)))
	return names, nil
}

// CollectionExists reports whether a collection with the given name exists.
//
// "Not found" is a valid false, never an error; the call fails only when
// the round trip itself cannot complete or the response is malformed.
func (c *Client) CollectionExists(ctx context.Context, name string) (exists bool, err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("collection_exists", name, "", time.Since(start), err, 0, nil)
	}()

	env, err := c.doJSON(ctx, request{
		op:     "collection_exists",
		method: http.MethodGet,
		path:   collectionPath(name, "/exists"),
	})
	if err != nil {
		return false, err
	}

	if env.Result == nil {
		return false, &DecodeError{Op: "collection_exists", Field: "result"}
	}

	var result struct {
		Exists *bool `json:"exists"`
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return false, &DecodeError{Op: "collection_exists", Field: "result.exists", Err: err}
	}
	if result.Exists == nil {
		return false, &DecodeError{Op: "collection_exists", Field: "result.exists"}
	}

	return *result.Exists, nil
}

// CreateCollection creates a collection with the given vector
// dimensionality, a Cosine distance metric, and on-disk vector storage.
//
// It first checks existence client-side and returns ErrCollectionExists
// without issuing the create call when the collection is already present,
// even against servers that would silently accept re-creation. A server
// that reports non-success or acknowledges with a falsy result yields a
// RequestFailedError.
func (c *Client) CreateCollection(ctx context.Context, name string, size uint64) (err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("create_collection", name, "", time.Since(start), err, 0, map[string]interface{}{"size": size})
	}()

	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		c.logger.Warn("collection already exists", zap.String("collection", name))
		return fmt.Errorf("create collection %q: %w", name, ErrCollectionExists)
	}

	env, err := c.doJSON(ctx, request{
		op:     "create_collection",
		method: http.MethodPut,
		path:   collectionPath(name, ""),
		body: createCollectionRequest{
			Vectors: vectorParams{
				Size:     size,
				Distance: defaultDistance,
				OnDisk:   true,
			},
		},
	})
	if err != nil {
		return err
	}

	if err := requireTrueResult(env, "create_collection"); err != nil {
		return err
	}

	c.logger.Info("created collection",
		zap.String("collection", name),
		zap.Uint64("size", size),
		zap.String("distance", defaultDistance),
	)
	return nil
}

// DeleteCollection deletes a collection and everything in it.
//
// It first checks existence client-side and returns ErrCollectionNotFound
// without issuing the delete call when the collection is absent. A server
// that reports non-success or acknowledges with a falsy result yields a
// RequestFailedError.
func (c *Client) DeleteCollection(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("delete_collection", name, "", time.Since(start), err, 0, nil)
	}()

	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		c.logger.Warn("collection not found", zap.String("collection", name))
		return fmt.Errorf("delete collection %q: %w", name, ErrCollectionNotFound)
	}

	env, err := c.doJSON(ctx, request{
		op:     "delete_collection",
		method: http.MethodDelete,
		path:   collectionPath(name, ""),
	})
	if err != nil {
		return err
	}

	if err := requireTrueResult(env, "delete_collection"); err != nil {
		return err
	}

	c.logger.Info("deleted collection", zap.String("collection", name))
	return nil
}

// CollectionInfo returns the number of points in a collection.
//
// It is a best-effort shortcut over DescribeCollection with no existence
// pre-check, but a malformed response is still a hard DecodeError rather
// than a silent zero.
func (c *Client) CollectionInfo(ctx context.Context, name string) (count uint64, err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("collection_info", name, "", time.Since(start), err, 0, nil)
	}()

	env, err := c.doJSON(ctx, request{
		op:     "collection_info",
		method: http.MethodGet,
		path:   collectionPath(name, ""),
	})
	if err != nil {
		return 0, err
	}

	if env.Result == nil {
		return 0, &DecodeError{Op: "collection_info", Field: "result"}
	}

	var result struct {
		PointsCount *uint64 `json:"points_count"`
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return 0, &DecodeError{Op: "collection_info", Field: "result.points_count", Err: err}
	}
	if result.PointsCount == nil {
		return 0, &DecodeError{Op: "collection_info", Field: "result.points_count"}
	}

	return *result.PointsCount, nil
}

// DescribeCollection retrieves collection metadata from the server and
// flattens the nested config envelope into a CollectionDetail: status,
// point count, vector dimensionality, and distance metric.
//
// The client caches nothing; every call re-queries the server.
func (c *Client) DescribeCollection(ctx context.Context, name string) (detail *CollectionDetail, err error) {
	start := time.Now()
	defer func() {
		c.observeOperation("describe_collection", name, "", time.Since(start), err, 0, nil)
	}()

	env, err := c.doJSON(ctx, request{
		op:     "describe_collection",
		method: http.MethodGet,
		path:   collectionPath(name, ""),
	})
	if err != nil {
		return nil, err
	}

	if env.Result == nil {
		return nil, &DecodeError{Op: "describe_collection", Field: "result"}
	}

	var result struct {
		Status      string  `json:"status"`
		PointsCount *uint64 `json:"points_count"`
		Config      struct {
			Params struct {
				Vectors struct {
					Size     uint64 `json:"size"`
					Distance string `json:"distance"`
				} `json:"vectors"`
			} `json:"params"`
		} `json:"config"`
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, &DecodeError{Op: "describe_collection", Field: "result", Err: err}
	}
	if result.PointsCount == nil {
		return nil, &DecodeError{Op: "describe_collection", Field: "result.points_count"}
	}

	return &CollectionDetail{
		Name:        name,
		Status:      result.Status,
		PointsCount: *result.PointsCount,
		VectorSize:  result.Config.Params.Vectors.Size,
		Distance:    result.Config.Params.Vectors.Distance,
	}, nil
}

// requireTrueResult enforces the {result: bool} acknowledgment contract of
// collection create/delete: anything other than a JSON true is a failure.
func requireTrueResult(env *envelope, op string) error {
	var ok bool
	if err := json.Unmarshal(env.Result, &ok); err != nil || !ok {
		return &RequestFailedError{Op: op, Status: "server did not acknowledge the operation"}
	}
	return nil
}
