// Package logger provides a structured, Zap-based logger with Fx integration.
//
// The package exists so that every component in this module logs the same
// way: JSON entries on stderr with ISO8601 timestamps, the service name and
// process id on every line, and caller information for debugging.
//
// # Basic Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "vector-ingest",
//	})
//	defer log.Sync()
//
//	log.Info("collection created", zap.String("collection", "docs"))
//
// # With the Qdrant client
//
// The qdrant client takes a raw *zap.Logger; pass the wrapped instance:
//
//	client := qdrant.NewClientWithURL("http://localhost:6333").
//	    WithLogger(log.Zap)
//
// # Fx Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config { return logger.Config{} }),
//	)
package logger
