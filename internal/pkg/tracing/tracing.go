// Package tracing configures the process-wide OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Provider owns the SDK tracer provider registered as the global one.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider registers a tracer provider for serviceName together with the
// W3C trace-context and baggage propagators. Spans are batched to the Jaeger
// collector at jaegerEndpoint; with an empty endpoint they are recorded but
// not exported.
func NewProvider(serviceName, jaegerEndpoint string, opts ...sdktrace.TracerProviderOption) (*Provider, error) {
	options := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	}

	if jaegerEndpoint != "" {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(
			jaeger.WithEndpoint(jaegerEndpoint),
		))
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(append(options, opts...)...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{tp: tp}, nil
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
