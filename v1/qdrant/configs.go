package qdrant

import (
	"time"
)

// DefaultBaseURL is the REST endpoint of a locally running Qdrant instance.
const DefaultBaseURL = "http://localhost:6333"

// Config holds connection settings for the Qdrant REST client.
//
// It stays minimal and easy to override from environment variables, YAML,
// or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := qdrant.DefaultConfig()
//	cfg.BaseURL = "http://qdrant.internal:6333"
//	cfg.APIKey = os.Getenv("QDRANT_API_KEY")
//
// Example (builder style):
//
//	cfg := qdrant.FromEndpoint("http://qdrant.internal:6333").
//	    WithAPIKey(os.Getenv("QDRANT_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// BaseURL of the Qdrant REST API, e.g. "http://localhost:6333".
	// A trailing slash is tolerated and trimmed.
	BaseURL string `yaml:"base_url" env:"QDRANT_BASE_URL"`

	// APIKey is the optional authentication token for secured deployments.
	// When set it is sent as the "api-key" header on every request.
	APIKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Timeout bounds each HTTP request. Zero means no client-side timeout;
	// the client defines no retry or backoff policy, so callers needing
	// resilience wrap calls externally.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
	}
}

// FromEndpoint returns a default config pre-filled with a specific base URL.
func FromEndpoint(url string) *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = url
	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}
