package logger

// Level controls the minimum severity emitted by the logger.
type Level int

const (
	// Debug enables verbose diagnostic output, including request URLs.
	Debug Level = iota

	// Info is the default operational level.
	Info

	// Warning emits only degraded-but-tolerated conditions and worse.
	Warning

	// Error emits failures only.
	Error
)

// Config holds the settings for constructing a Logger.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "vector-ingest",
//	})
type Config struct {
	// Level is the minimum log level. Defaults to Info.
	Level Level `yaml:"level" env:"LOG_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}
