package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config holds tracing settings
type Config struct {
	Endpoint    string // OTLP/HTTP endpoint URL; empty disables export
	ServiceName string
	Version     string
	Environment string
}

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(ctx context.Context) error

// Init installs the global tracer provider.
// Without an endpoint the global provider stays the otel no-op one.
func Init(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	if cfg.Endpoint == "" {
		slog.Default().Info(LogMsgTracingDisabled)
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateExporter, err)
	}

	res := resource.NewSchemaless(
		attribute.String(AttrServiceName, cfg.ServiceName),
		attribute.String(AttrServiceVersion, cfg.Version),
		attribute.String(AttrDeploymentEnvironment, cfg.Environment),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.Default().Info(LogMsgTracingEnabled, "endpoint", cfg.Endpoint)
	return tp.Shutdown, nil
}
