package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/second-state/qdrant-rest-client/v1/vectordb"
)

// maxConcurrentSearches bounds the fan-out of a multi-request Search.
const maxConcurrentSearches = 10

// Adapter implements the database-agnostic vectordb.Service interface on
// top of the REST Client, so application code can target [vectordb.Service]
// and switch vector databases without changing call sites.
type Adapter struct {
	client *Client
}

// NewAdapter wraps a Client in the vectordb.Service interface.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

var _ vectordb.Service = (*Adapter)(nil)

// Search performs one similarity search per request, concurrently with a
// bounded fan-out, and returns result slices in request order. Each
// underlying search is still exactly one HTTP round trip.
func (a *Adapter) Search(ctx context.Context, requests ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("at least one search request is required")
	}

	results := make([][]vectordb.SearchResult, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)

	for i, searchReq := range requests {
		if err := validateSearchInput(searchReq.CollectionName, searchReq.Vector, searchReq.TopK); err != nil {
			return nil, fmt.Errorf("request [%d]: %w", i, err)
		}

		g.Go(func() error {
			scored, err := a.client.SearchPointsWithFilter(ctx,
				searchReq.CollectionName,
				searchReq.Vector,
				uint64(searchReq.TopK),
				searchReq.ScoreThreshold,
				searchReq.Filters,
			)
			if err != nil {
				return fmt.Errorf("request [%d] search failed: %w", i, err)
			}
			results[i] = toSearchResults(scored)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Insert adds embeddings to a collection in one durable batch. Inputs
// without an ID get a generated UUID, matching what the server would
// otherwise reject (it accepts only u64 or UUID ids).
func (a *Adapter) Insert(ctx context.Context, collectionName string, inputs []vectordb.EmbeddingInput) error {
	if len(inputs) == 0 {
		return nil
	}

	points := make([]Point, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		points[i] = Point{
			ID:      NewStringID(id),
			Vector:  in.Vector,
			Payload: in.Payload,
		}
	}

	return a.client.UpsertPoints(ctx, collectionName, points)
}

// Delete removes points by their string IDs. Unknown IDs are ignored.
func (a *Adapter) Delete(ctx context.Context, collectionName string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	pointIDs := make([]PointID, len(ids))
	for i, id := range ids {
		pointIDs[i] = NewStringID(id)
	}

	return a.client.DeletePoints(ctx, collectionName, pointIDs)
}

// EnsureCollection creates the collection if missing. Safe to call
// repeatedly; a concurrent creator winning the race is not an error.
func (a *Adapter) EnsureCollection(ctx context.Context, name string, vectorSize uint64) error {
	exists, err := a.client.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := a.client.CreateCollection(ctx, name, vectorSize); err != nil && !IsConflict(err) {
		return err
	}
	return nil
}

// GetCollection retrieves collection metadata.
func (a *Adapter) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	detail, err := a.client.DescribeCollection(ctx, name)
	if err != nil {
		return nil, err
	}

	return &vectordb.Collection{
		Name:       detail.Name,
		Status:     detail.Status,
		VectorSize: int(detail.VectorSize),
		Distance:   detail.Distance,
		PointCount: detail.PointsCount,
	}, nil
}

// ListCollections returns the names of all collections.
func (a *Adapter) ListCollections(ctx context.Context) ([]string, error) {
	return a.client.ListCollections(ctx)
}

// toSearchResults converts scored points to the database-agnostic shape.
func toSearchResults(scored []ScoredPoint) []vectordb.SearchResult {
	results := make([]vectordb.SearchResult, len(scored))
	for i, sp := range scored {
		results[i] = vectordb.SearchResult{
			ID:      sp.ID.String(),
			Score:   sp.Score,
			Payload: sp.Payload,
			Vector:  sp.Vector,
		}
	}
	return results
}
