// Package vectordb defines a database-agnostic abstraction for vector
// similarity search.
//
// Application code depends on the [Service] interface and the plain value
// types in this package (SearchRequest, SearchResult, EmbeddingInput,
// Collection) instead of any concrete database client. Concrete adapters,
// currently qdrant.Adapter over the REST client, translate these types to
// their native wire format.
//
// # Filtering
//
// The filter model mirrors the boolean structure common to vector databases:
// Must (AND), Should (OR), and MustNot (NOT) clauses over field conditions.
// Build them with the constructors in utils.go:
//
//	filters := vectordb.NewFilterSet(
//	    vectordb.Must(
//	        vectordb.NewMatch("city", "Berlin"),
//	        vectordb.NewNumericRange("year", vectordb.NumericRange{Gte: vectordb.Float(2020)}),
//	    ),
//	    vectordb.MustNot(vectordb.NewIsEmpty("title")),
//	)
//
// Each adapter converts the conditions to its own filter syntax; conditions
// a backend cannot express are reported as errors at search time rather
// than silently dropped.
package vectordb
