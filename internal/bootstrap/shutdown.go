package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SwapMeet_Go/internal/server"
	"github.com/osse101/SwapMeet_Go/internal/tracing"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server         *server.Server
	Storage        *Storage
	TracerShutdown tracing.ShutdownFunc
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Tracer provider (flush buffered spans)
// 3. Storage (close the database pool)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.TracerShutdown != nil {
		slog.Info(LogMsgFlushingTraces)
		if err := components.TracerShutdown(ctx); err != nil {
			slog.Error(LogMsgTracerShutdownFailed, "error", err)
		}
	}

	if components.Storage != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
