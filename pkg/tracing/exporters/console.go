package exporters

import (
	"context"

	"go.opentelemetry.io/otel/sdk/trace"
)

// ConsoleExporter discards spans. Used when tracing is enabled without
// a collector so span and trace ids still propagate into logs.
type ConsoleExporter struct{}

func (c *ConsoleExporter) ExportSpans(ctx context.Context, spans []trace.ReadOnlySpan) error {
	return nil
}

func (c *ConsoleExporter) Shutdown(ctx context.Context) error {
	return nil
}
