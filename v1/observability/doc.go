// Package observability defines the minimal contract between instrumented
// clients in this module and whatever metrics/tracing backend an application
// wires in.
//
// Clients report one OperationContext per completed operation through the
// Observer interface. The package carries no dependencies: backends
// (Prometheus, OpenTelemetry metrics, plain logs) live elsewhere and simply
// implement Observer. See the metrics package for the Prometheus-backed
// implementation.
package observability
