package metrics

// Config holds the settings for the metrics registry and exposition server.
type Config struct {
	// Address is the listen address for the /metrics HTTP endpoint,
	// e.g. ":9090". Leave empty to build a registry without a server
	// (useful in tests or when the application exposes metrics itself).
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// ServiceName is applied to every metric as a constant "service" label.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// EnableDefaultCollectors registers the standard Go, process, and
	// build-info collectors alongside the client-operation metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_DEFAULT_COLLECTORS"`
}
