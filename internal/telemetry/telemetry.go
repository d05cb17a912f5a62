// Package telemetry provides OpenTelemetry tracing for game events.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "squish"
	serviceVersion = "0.1.0"

	envEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// ErrNotConfigured is returned by Setup when no OTLP endpoint is set.
var ErrNotConfigured = errors.New("telemetry: " + envEndpoint + " not set")

// Setup exports game spans over OTLP/HTTP to the collector named by
// OTEL_EXPORTER_OTLP_ENDPOINT. Headers such as API keys come from
// OTEL_EXPORTER_OTLP_HEADERS.
//
// The returned func flushes pending spans and must run before exit.
// With no endpoint the global provider is left as the no-op default.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	if os.Getenv(envEndpoint) == "" {
		return nil, ErrNotConfigured
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	Install(tp)

	return tp.Shutdown, nil
}

// Install makes tp the provider behind Tracer.
func Install(tp trace.TracerProvider) {
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
}

// Tracer returns the tracer for one part of the game, e.g. "game".
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

// newResource describes this process. It is built from scratch instead of
// merged into resource.Default(), whose schema URL may differ.
func newResource(ctx context.Context) (*resource.Resource, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", host),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}
