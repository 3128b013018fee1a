// Package telemetry sets up OpenTelemetry tracing for a patchwork process.
package telemetry

import (
	"context"
	"fmt"

	"github.com/tliron/commonlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/chazu/patchwork/config"
)

// Setup installs a global tracer provider exporting to cfg.Endpoint over
// OTLP/HTTP. With no endpoint nothing is installed and the returned
// shutdown does nothing.
//
// The returned shutdown flushes pending spans and should be deferred.
func Setup(ctx context.Context, cfg config.Telemetry) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("create trace exporter: %w", err)
	}

	name := cfg.ServiceName
	if name == "" {
		name = "patchwork"
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(name)))
	if err != nil {
		return noop, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	commonlog.GetLogger("patchwork.telemetry").Infof("exporting traces to %s", cfg.Endpoint)
	return tp.Shutdown, nil
}
