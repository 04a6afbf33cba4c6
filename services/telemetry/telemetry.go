// Package telemetry exports request and session traces over OTLP when an
// endpoint is configured. Without one, the global no-op provider is kept.
package telemetry

import (
	"context"
	"fmt"
	"log"
	"strings"

	"legalscholer_app_go/config"
	"legalscholer_app_go/services/simulator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer used across the app.
const InstrumentationName = "legalscholer_app_go"

// Provider owns the SDK tracer provider, if one was started.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Init installs an OTLP/HTTP tracer provider when cfg.OTelEndpoint is set.
// It returns a disabled Provider otherwise; Shutdown is safe on both.
func Init(ctx context.Context, cfg *config.Config) (*Provider, error) {
	if cfg.OTelEndpoint == "" {
		log.Println("[INFO] OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing disabled")
		return &Provider{}, nil
	}

	exporter, err := otlptracehttp.New(ctx, endpointOptions(cfg.OTelEndpoint)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.OTelServiceName),
		semconv.DeploymentEnvironmentKey.String(cfg.Environment),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Printf("[INFO] Tracing enabled, exporting to %s as %s", cfg.OTelEndpoint, cfg.OTelServiceName)
	return &Provider{provider: tp}, nil
}

// endpointOptions accepts either a full URL or a bare host:port, which is
// treated as plain HTTP.
func endpointOptions(endpoint string) []otlptracehttp.Option {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Tracer returns the app tracer from the global provider.
func Tracer() oteltrace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// RecordTransitions adds one span event per flow transition to the span in ctx.
func RecordTransitions(ctx context.Context, sessionID string, transitions []simulator.Transition) {
	span := oteltrace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.String("legalscholer.session.id", sessionID))
	for _, tr := range transitions {
		span.AddEvent("flow.transition", oteltrace.WithAttributes(
			attribute.String("legalscholer.flow", string(tr.Flow)),
			attribute.String("legalscholer.flow.from", string(tr.From)),
			attribute.String("legalscholer.flow.to", string(tr.To)),
			attribute.Int64("legalscholer.flow.at_ms", tr.At.Milliseconds()),
			attribute.Bool("legalscholer.flow.manual", tr.Manual),
		))
	}
}
