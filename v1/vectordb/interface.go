package vectordb

import "context"

// Service is the common interface for all vector databases.
// It provides a database-agnostic abstraction for vector similarity search,
// allowing applications to switch between different vector databases
// without changing application code.
//
// Example usage:
//
//	func NewSearchService(db vectordb.Service) *SearchService {
//	    return &SearchService{db: db}
//	}
//
//	// Works with any implementation, e.g. qdrant.NewAdapter(client)
type Service interface {
	// Search performs similarity search across one or more requests.
	// Each request can target a different collection with different filters.
	// Results come back in request order, one []SearchResult per request.
	//
	// Example:
	//   results, err := db.Search(ctx,
	//       vectordb.SearchRequest{CollectionName: "docs", Vector: vec1, TopK: 10},
	//       vectordb.SearchRequest{CollectionName: "docs", Vector: vec2, TopK: 5, Filters: filters},
	//   )
	Search(ctx context.Context, requests ...SearchRequest) ([][]SearchResult, error)

	// Insert adds embeddings to a collection. Inputs without an ID get a
	// generated UUID. Insert blocks until the write is durable.
	Insert(ctx context.Context, collectionName string, inputs []EmbeddingInput) error

	// Delete removes points by their IDs from a collection.
	// Deleting unknown IDs is not an error.
	Delete(ctx context.Context, collectionName string, ids []string) error

	// EnsureCollection creates a collection if it doesn't exist.
	// Safe to call multiple times; no-op if the collection already exists.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64) error

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns names of all collections.
	ListCollections(ctx context.Context) ([]string, error)
}
