package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"resultsdb/lib/configutil"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Endpoint configures one otlp exporter, grpc wins when both are set.
type Endpoint struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

func (e Endpoint) configured() bool {
	return e.GrpcEndpoint != "" || e.HttpEndpoint != ""
}

func (e Endpoint) String() string {
	if e.GrpcEndpoint != "" {
		return "grpc " + e.GrpcEndpoint
	}
	return "http " + e.HttpEndpoint
}

type Config struct {
	Traces  Endpoint `json:"traces"`
	Metrics Endpoint `json:"metrics"`
	// seconds between metric exports, defaults to 5
	MetricInterval int `json:"metric_interval"`
}

// Telemetry holds the providers installed by Setup, a provider is nil when
// its endpoint was not configured.
type Telemetry struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
}

func (t Telemetry) Enabled() bool {
	return t.TracerProvider != nil || t.MeterProvider != nil
}

func (t Telemetry) Shutdown(ctx context.Context) error {
	var errlist []error
	if t.TracerProvider != nil {
		errlist = append(errlist, t.TracerProvider.Shutdown(ctx))
	}
	if t.MeterProvider != nil {
		errlist = append(errlist, t.MeterProvider.Shutdown(ctx))
	}
	return errors.Join(errlist...)
}

// SetupFromEnv looks for telemetry.json5 in the cwd and its parents and
// calls Setup with it. Without one, the global no-op providers are kept.
func SetupFromEnv(ctx context.Context, serviceName string) (Telemetry, error) {
	config, err := configutil.ReadRecursively[Config]("telemetry.json5")
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no telemetry.json5 found, telemetry export disabled")
		return Telemetry{}, nil
	}
	if err != nil {
		return Telemetry{}, err
	}
	return Setup(ctx, serviceName, config)
}

// Setup installs a global tracer and meter provider for every configured
// endpoint.
func Setup(ctx context.Context, serviceName string, config Config) (Telemetry, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	var out Telemetry
	if !config.Traces.configured() && !config.Metrics.configured() {
		return out, nil
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return out, err
	}

	if config.Traces.configured() {
		exporter, err := newSpanExporter(ctx, config.Traces)
		if err != nil {
			return out, fmt.Errorf("trace exporter: %w", err)
		}
		out.TracerProvider = trace.NewTracerProvider(
			trace.WithBatcher(exporter),
			trace.WithResource(r),
		)
		otel.SetTracerProvider(out.TracerProvider)
		slog.Info("exporting traces", "endpoint", config.Traces.String())
	}

	if config.Metrics.configured() {
		exporter, err := newMetricExporter(ctx, config.Metrics)
		if err != nil {
			return out, fmt.Errorf("metric exporter: %w", err)
		}
		interval := time.Duration(config.MetricInterval) * time.Second
		if interval <= 0 {
			interval = 5 * time.Second
		}
		out.MeterProvider = metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(interval))),
			metric.WithResource(r),
		)
		otel.SetMeterProvider(out.MeterProvider)
		slog.Info("exporting metrics", "endpoint", config.Metrics.String())
	}

	return out, nil
}

func newSpanExporter(ctx context.Context, e Endpoint) (trace.SpanExporter, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if e.GrpcEndpoint != "" {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpointURL(e.GrpcEndpoint),
			otlptracegrpc.WithHeaders(e.Headers),
		)
	}
	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(e.HttpEndpoint),
		otlptracehttp.WithHeaders(e.Headers),
	)
}

func newMetricExporter(ctx context.Context, e Endpoint) (metric.Exporter, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if e.GrpcEndpoint != "" {
		return otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpointURL(e.GrpcEndpoint),
			otlpmetricgrpc.WithHeaders(e.Headers),
		)
	}
	return otlpmetrichttp.New(
		ctx,
		otlpmetrichttp.WithEndpointURL(e.HttpEndpoint),
		otlpmetrichttp.WithHeaders(e.Headers),
	)
}
