package instrument

import (
	"context"
	"errors"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const defaultMetricsInterval = 30 * time.Second

// Instrumentation exposes tracing and metrics providers to the contact and
// portfolio modules and the HTTP middleware.
type Instrumentation interface {
	Tracer(name string) trace.Tracer
	Meter(name string) metric.Meter
	Shutdown(ctx context.Context) error
}

// Config drives OpenTelemetry initialization.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	// OTLPEndpoint is host:port of the collector, shared by all three signals.
	OTLPEndpoint string
	OTLPSecure   bool
	// TraceSampleRatio is clamped to [0, 1].
	TraceSampleRatio float64
	// MetricsInterval defaults to 30s when zero.
	MetricsInterval time.Duration
	// MaskFields lists log attribute keys whose values are masked.
	MaskFields []string
}

type exporters struct {
	trace  *otlptrace.Exporter
	metric *otlpmetricgrpc.Exporter
	log    *otlploggrpc.Exporter
}

// shutdown releases whatever was created before a failed setup.
func (e exporters) shutdown(ctx context.Context) {
	if e.trace != nil {
		_ = e.trace.Shutdown(ctx)
	}
	if e.metric != nil {
		_ = e.metric.Shutdown(ctx)
	}
	if e.log != nil {
		_ = e.log.Shutdown(ctx)
	}
}

func newExporters(ctx context.Context, cfg *Config) (exporters, error) {
	var exp exporters

	traceOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
	metricOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint)}
	logOpts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.OTLPEndpoint)}
	if !cfg.OTLPSecure {
		traceOpts = append(traceOpts, otlptracegrpc.WithInsecure())
		metricOpts = append(metricOpts, otlpmetricgrpc.WithInsecure())
		logOpts = append(logOpts, otlploggrpc.WithInsecure())
	}

	var err error
	if exp.trace, err = otlptracegrpc.New(ctx, traceOpts...); err != nil {
		return exp, err
	}
	if exp.metric, err = otlpmetricgrpc.New(ctx, metricOpts...); err != nil {
		exp.shutdown(ctx)
		return exporters{}, err
	}
	if exp.log, err = otlploggrpc.New(ctx, logOpts...); err != nil {
		exp.shutdown(ctx)
		return exporters{}, err
	}
	return exp, nil
}

type otelInstrumentation struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	loggerProvider *sdklog.LoggerProvider
}

// New configures the default slog logger and, when enabled, OTLP export of
// traces, metrics and logs. Disabled instrumentation returns NewNoop.
func New(ctx context.Context, cfg *Config) (Instrumentation, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if !cfg.Enabled {
		SetupLogging(os.Stdout, cfg.ServiceName, nil, cfg.MaskFields)
		return NewNoop(), nil
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		attribute.String("env", cfg.Environment),
	))
	if err != nil {
		return nil, err
	}

	exp, err := newExporters(ctx, cfg)
	if err != nil {
		return nil, err
	}

	interval := cfg.MetricsInterval
	if interval <= 0 {
		interval = defaultMetricsInterval
	}

	o := &otelInstrumentation{
		tracerProvider: sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(min(max(cfg.TraceSampleRatio, 0), 1)))),
			sdktrace.WithBatcher(exp.trace),
		),
		meterProvider: sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp.metric, sdkmetric.WithInterval(interval))),
		),
		loggerProvider: sdklog.NewLoggerProvider(
			sdklog.WithResource(res),
			sdklog.WithProcessor(sdklog.NewBatchProcessor(exp.log)),
		),
	}

	otel.SetTracerProvider(o.tracerProvider)
	otel.SetMeterProvider(o.meterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	SetupLogging(os.Stdout, cfg.ServiceName, o.loggerProvider, cfg.MaskFields)

	return o, nil
}

func (o *otelInstrumentation) Tracer(name string) trace.Tracer {
	return o.tracerProvider.Tracer(name)
}

func (o *otelInstrumentation) Meter(name string) metric.Meter {
	return o.meterProvider.Meter(name)
}

// Shutdown flushes traces and metrics first; the logger goes last so their
// errors can still be exported.
func (o *otelInstrumentation) Shutdown(ctx context.Context) error {
	var errs []error
	errs = append(errs, o.tracerProvider.Shutdown(ctx))
	errs = append(errs, o.meterProvider.Shutdown(ctx))
	errs = append(errs, o.loggerProvider.Shutdown(ctx))
	return errors.Join(errs...)
}

// NewNoop returns instrumentation that records nothing.
func NewNoop() Instrumentation {
	return noopInstrumentation{
		tracerProvider: tracenoop.NewTracerProvider(),
		meterProvider:  metricnoop.NewMeterProvider(),
	}
}

type noopInstrumentation struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

func (n noopInstrumentation) Tracer(name string) trace.Tracer { return n.tracerProvider.Tracer(name) }

func (n noopInstrumentation) Meter(name string) metric.Meter { return n.meterProvider.Meter(name) }

func (noopInstrumentation) Shutdown(context.Context) error { return nil }
