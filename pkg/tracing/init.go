package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Ramsey-B/fern/pkg/tracing/exporters"
)

// Config controls how the tracer provider is built.
type Config struct {
	Enabled     bool
	ServiceName string
	// Exporter is "console" or "otlp"
	Exporter string
	OTLP     exporters.OTLPConfig
}

// Init builds the tracer provider and registers the package tracer.
// The returned function flushes and shuts the provider down.
func Init(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	var exporter sdktrace.SpanExporter
	switch cfg.Exporter {
	case "", "console":
		exporter = &exporters.ConsoleExporter{}
	case "otlp":
		otlpExporter, err := exporters.NewOTLPExporter(ctx, cfg.OTLP)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		exporter = otlpExporter
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s (use 'console' or 'otlp')", cfg.Exporter)
	}

	res, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	SetTracer(provider.Tracer(cfg.ServiceName))

	return provider.Shutdown, nil
}
