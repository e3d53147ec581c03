package qdrant

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/second-state/qdrant-rest-client/v1/observability"
)

//
// ──────────────────────────────────────────────────────────────
//   QDRANT REST CLIENT
// ──────────────────────────────────────────────────────────────
//
// This file defines a thin client over the Qdrant REST API, providing
// application-level operations for managing collections, points, and
// similarity search without pulling in the gRPC SDK.
//
// Responsibilities:
//   • Hold the base URL and optional api-key credential.
//   • Manage collections (create, delete, exists, list, describe).
//   • Upsert, fetch, delete, and search points.
//   • Normalize transport/HTTP/JSON failures into the errors.go taxonomy.
//
// The client is stateless apart from its configuration: no connection
// state, cache, or session survives between calls, so one instance can be
// shared freely across goroutines. Connection pooling is the http.Client's
// business.
//

// Client talks to one Qdrant instance over HTTP/JSON.
//
// The zero-cost setters (WithAPIKey, WithLogger, WithObserver) return the
// client for chaining and are meant to be called during setup, before the
// first request. Mutating them concurrently with in-flight calls is
// undefined behavior; callers must synchronize.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	observer   observability.Observer
}

// NewClient constructs a Client from Config. No network I/O happens here;
// use HealthCheck to validate connectivity explicitly.
//
// Example:
//
//	client := qdrant.NewClient(qdrant.FromEndpoint("http://localhost:6333"))
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	// One slash convention everywhere: the base never ends with "/",
	// every path starts with "/".
	base = strings.TrimRight(base, "/")

	return &Client{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     zap.NewNop(),
	}
}

// NewClientWithURL is shorthand for NewClient(FromEndpoint(url)).
func NewClientWithURL(url string) *Client {
	return NewClient(FromEndpoint(url))
}

// WithAPIKey sets the credential attached as the "api-key" header on every
// subsequent request. There is no per-call override.
func (c *Client) WithAPIKey(key string) *Client {
	c.apiKey = key
	return c
}

// WithLogger replaces the no-op default logger.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithObserver sets the observer notified after every completed operation.
//
// Example:
//
//	client := qdrant.NewClientWithURL(url).
//	    WithObserver(metrics.NewPromObserver(m))
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// BaseURL returns the normalized base URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HealthCheck verifies the availability of the Qdrant service by calling
// its /healthz endpoint. It is lightweight and fast, suitable for startup
// and readiness probes; construction never calls it.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.doJSON(ctx, request{
		op:       "health_check",
		method:   http.MethodGet,
		path:     "/healthz",
		noDecode: true,
	})
	return err
}

// Close releases client resources. The REST API keeps no persistent
// connections beyond the transport's idle pool, so this closes idle
// connections and exists mostly for lifecycle symmetry.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
