// Package metrics provides a Prometheus-based metrics layer for the clients
// in this module.
//
// It maintains a dedicated registry per service, exposes it over an optional
// /metrics HTTP server, and ships a PromObserver that turns the
// observability.OperationContext reports emitted by instrumented clients
// into three built-in series:
//
//   - vectordb_operations_total{component,operation,status}
//   - vectordb_operation_duration_seconds{component,operation}
//   - vectordb_operation_size{component,operation}
//
// # Basic Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "vector-ingest",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
//	client := qdrant.NewClientWithURL("http://localhost:6333").
//	    WithObserver(metrics.NewPromObserver(m))
//
// Applications needing additional series can register their own through
// CreateCounter, CreateHistogram, and CreateGauge.
package metrics
