package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SwapMeet_Go/internal/bootstrap"
	"github.com/osse101/SwapMeet_Go/internal/config"
	"github.com/osse101/SwapMeet_Go/internal/handler"
	"github.com/osse101/SwapMeet_Go/internal/server"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
	"github.com/osse101/SwapMeet_Go/internal/tracing"
)

// @title SwapMeet API
// @version 1.0
// @description Vendors holding item inventories and trading items with one another.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if handler.Version == "dev" && cfg.Version != "" {
		handler.Version = cfg.Version
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracerShutdown, err := tracing.Init(ctx, tracing.Config{
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})
	if err != nil {
		slog.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	svc := swapmeet.NewService(storage.Vendors, swapmeet.CacheConfig{Size: cfg.CacheSize, TTL: cfg.CacheTTL})

	if err := bootstrap.SeedVendors(ctx, svc, cfg.SeedFile); err != nil {
		slog.Error("Failed to seed vendors", "error", err)
		storage.Close()
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, svc)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		Storage:        storage,
		TracerShutdown: tracerShutdown,
	})
}
