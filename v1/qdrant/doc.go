// Package qdrant provides a typed client for the Qdrant vector database's
// REST API.
//
// The package hides wire-format and transport details behind a small,
// ergonomic surface: collection lifecycle, point upsert/fetch/delete, and
// nearest-neighbor search, each mapping to exactly one HTTP round trip.
// It integrates with the fx dependency injection framework and supports
// builder-style configuration.
//
// # Core Features
//
//   - Stateless client: only a base URL and an optional api-key credential,
//     safe to share across goroutines
//   - Untagged point ids (u64 or UUID) with exact wire round-trips
//   - Client-enforced create/delete preconditions (conflict and not-found
//     are caught before a request is issued)
//   - Durable writes: upsert and delete block until applied (wait=true)
//   - A single error taxonomy for transport, server, and decode failures
//   - Optional structured logging (zap), operation metrics (observability
//     hook), and per-request OpenTelemetry spans
//   - Database-agnostic access via [vectordb.Service] through [Adapter]
//
// # Basic Usage
//
//	client := qdrant.NewClientWithURL("http://localhost:6333").
//	    WithAPIKey(os.Getenv("QDRANT_API_KEY"))
//
//	if err := client.CreateCollection(ctx, "docs", 4); err != nil {
//	    return err
//	}
//
//	err := client.UpsertPoints(ctx, "docs", []qdrant.Point{
//	    {
//	        ID:      qdrant.NewNumID(1),
//	        Vector:  []float32{0.05, 0.61, 0.76, 0.74},
//	        Payload: map[string]any{"city": "Berlin"},
//	    },
//	})
//
//	hits, err := client.SearchPoints(ctx, "docs", []float32{0.2, 0.1, 0.9, 0.7}, 2, 0)
//
// # Error Handling
//
// Fallible operations return a single consistent failure taxonomy:
// TransportError (the call never completed), RequestFailedError (the server
// reported failure), DecodeError (the response was malformed), plus the
// client-enforced sentinels ErrCollectionExists and ErrCollectionNotFound.
// Use the Is* helpers or errors.Is/errors.As:
//
//	if err := client.CreateCollection(ctx, "docs", 4); qdrant.IsConflict(err) {
//	    // collection already there, carry on
//	}
//
// # Search Failure Policy
//
// Search surfaces transport failures and non-2xx statuses as errors; it
// never degrades them to an empty result. The one tolerated absence is a
// success envelope with no "result" field, which decodes as an empty
// slice. See SearchPoints.
//
// # VectorDB Interface
//
// [Adapter] implements the database-agnostic [vectordb.Service] interface:
//
//	var db vectordb.Service = qdrant.NewAdapter(client)
//
// This allows switching between vector databases without changing
// application code.
//
// # Concurrency
//
// The Client holds no per-call mutable state; share one instance freely.
// The underlying http.Client manages its own connection pool. Configure
// the credential and logger before the first request; mutating them
// concurrently with in-flight calls requires caller synchronization.
package qdrant
