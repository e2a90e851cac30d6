package observability

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	tracer "go.opentelemetry.io/otel/trace"
	"k8s.io/klog/v2"
)

// ServiceName identifies this program in traces.
const ServiceName = "linode-fsutil"

// Global tracing variables. Tracer starts out backed by the global no-op
// provider so spans are cheap until InitTracer runs.
var (
	Tracer         tracer.Tracer = otel.Tracer(ServiceName)
	TracerProvider *trace.TracerProvider
)

// InitOtelTracing sets up an OTLP HTTP exporter and installs a batching
// TracerProvider as the global provider.
func InitOtelTracing(ctx context.Context, serviceName, serviceVersion, tracingPort string) error {
	oltpEndpoint := fmt.Sprintf("otel-collector:%s", tracingPort)

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(oltpEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return fmt.Errorf("create OTLP HTTP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
		resource.WithProcess(),
		resource.WithOS(),
		resource.WithHost(),
	)
	if err != nil {
		klog.Errorf("Failed to create resource: %v", err)
	}

	TracerProvider = trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(TracerProvider)

	klog.Infof("OpenTelemetry tracing initialized for service: %s, version: %s, port: %s", serviceName, serviceVersion, tracingPort)
	return nil
}

// InitTracer initializes the global tracer.
func InitTracer(ctx context.Context, serviceName, serviceVersion, tracingPort string) error {
	// Initialize the OTLP exporter and TracerProvider
	if err := InitOtelTracing(ctx, serviceName, serviceVersion, tracingPort); err != nil {
		return err
	}

	// Set the global tracer
	Tracer = otel.Tracer(serviceName)
	return nil
}

// ShutdownTracer flushes pending spans. It is a no-op when tracing was never
// initialized.
func ShutdownTracer(ctx context.Context) error {
	if TracerProvider == nil {
		return nil
	}
	return TracerProvider.Shutdown(ctx)
}

// TraceFunctionData records params and the outcome on span, then ends it.
func TraceFunctionData(span tracer.Span, operationName string, params map[string]string, err error) {
	// Add attributes to the span
	for key, value := range params {
		span.SetAttributes(attribute.String(key, value))
	}

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "operation successful")
	}
	span.End()
	klog.V(5).Infof("Traced operation %s. Params: %v", operationName, params)
}

// StartFunctionSpan creates a tracing span using the calling function's name
func StartFunctionSpan(ctx context.Context) (context.Context, tracer.Span) {
	// Get the name of the current function
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		klog.Warning("Failed to retrieve function name from runtime.Caller")
		return Tracer.Start(ctx, "unknown_function")
	}

	// Extract the function name
	functionName := runtime.FuncForPC(pc).Name()

	// Extract only the function name (removing package path)
	if idx := strings.LastIndex(functionName, "."); idx != -1 {
		functionName = functionName[idx+1:]
	}

	// Start and return the span
	return Tracer.Start(ctx, functionName)
}
