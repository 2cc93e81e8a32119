package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that stops accepting work, like the HTTP server.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer releases a resource that has no deadline, like the store.
type Closer interface {
	Close() error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	Store  Closer
	Log    Closer
}

// GracefulShutdown stops the HTTP server first so no new writes arrive,
// then closes the store, then flushes the log file.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)

	if components.Log != nil {
		_ = components.Log.Close()
	}
}
