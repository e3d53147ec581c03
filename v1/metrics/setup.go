package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
//
// This structure provides the components needed to register metrics collectors
// and serve them via the /metrics HTTP endpoint for Prometheus scraping.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	// Nil when Config.Address is empty.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// Built-in client-operation metrics, fed by PromObserver.
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationSize     *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new Metrics instance.
// It sets up a dedicated Prometheus registry, registers the client-operation
// metrics (and optionally the default system collectors), wraps everything
// with a constant `service` label, and, when an address is configured,
// creates an HTTP server exposing the /metrics endpoint.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "vector-ingest",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	// A dedicated registry avoids metric collisions when multiple services
	// run in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.operationsTotal = createCounterVec(
		"vectordb_operations_total",
		"Total number of vector database client operations",
		[]string{"component", "operation", "status"},
	)
	m.operationDuration = createHistogramVec(
		"vectordb_operation_duration_seconds",
		"Duration of vector database client operations in seconds",
		[]string{"component", "operation"},
		prometheus.DefBuckets,
	)
	m.operationSize = createHistogramVec(
		"vectordb_operation_size",
		"Operation-defined payload size (points written, results returned)",
		[]string{"component", "operation"},
		prometheus.ExponentialBuckets(1, 4, 8),
	)

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.operationSize,
	)

	// Standard collectors provide essential runtime metrics for Go
	// processes: memory, goroutines, GC, CPU, file descriptors, build info.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	if cfg.Address != "" {
		handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
		m.Server = &http.Server{
			Addr:    cfg.Address,
			Handler: handler,
		}
	}

	return m
}
