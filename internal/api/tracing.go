package api

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/lucasbrito-wdt/asaas-sdk-go"

func newTracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(tracerName, trace.WithInstrumentationVersion(Version))
}

// startSpan opens the client span covering one API call, retries included.
func startSpan(ctx context.Context, tracer trace.Tracer, req *Request, requestID string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, req.Method+" "+req.Template,
		trace.WithSpanKind(trace.SpanKindClient),
	)
	span.SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.template", req.Template),
		attribute.String("asaas.request_id", requestID),
	)
	return ctx, span
}

func endSpan(span trace.Span, statusCode, retries int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
	}
	span.SetAttributes(attribute.Int("asaas.retry_count", retries))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
