package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/second-state/qdrant-rest-client/v1/logger"
	"github.com/second-state/qdrant-rest-client/v1/observability"
	"github.com/second-state/qdrant-rest-client/v1/vectordb"
)

// ClientParams bundles the dependencies for constructing a managed Client.
// Logger and Observer are optional: without them the client logs nowhere
// and reports no metrics, which is the right default for a bare library.
type ClientParams struct {
	fx.In

	Config   *Config
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewManagedClient builds a Client wired with whatever optional
// dependencies the container provides. Used by FXModule; plain library
// users call NewClient directly.
func NewManagedClient(p ClientParams) *Client {
	client := NewClient(p.Config)
	if p.Logger != nil {
		client = client.WithLogger(p.Logger.Zap)
	}
	if p.Observer != nil {
		client = client.WithObserver(p.Observer)
	}
	return client
}

// FXModule defines the Fx module for the qdrant package.
//
// The module:
//  1. Provides the Client, wired with the container's optional logger and
//     observer.
//  2. Provides the vectordb.Service adapter, so application code can depend
//     on the database-agnostic interface.
//  3. Registers a shutdown hook that releases idle connections.
//
// Usage:
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    fx.Provide(func() *qdrant.Config {
//	        return qdrant.FromEndpoint("http://localhost:6333")
//	    }),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A *qdrant.Config instance must be available in the dependency injection container
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewManagedClient,
		fx.Annotate(
			NewAdapter,
			fx.As(new(vectordb.Service)),
		),
	),
	fx.Invoke(RegisterClientLifecycle),
)

// RegisterClientLifecycle registers the shutdown hook for the Client.
// The REST client holds no persistent connections, so the hook only
// releases the transport's idle pool.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
