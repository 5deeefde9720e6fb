package client

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/IBM/schematics-go-sdk/client"

// startSpan opens a client span named after the operation.
func (c *Client) startSpan(ctx context.Context, operationID, method, url string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, operationID,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("schematics.operation", operationID),
			semconv.HTTPRequestMethodKey.String(method),
			semconv.URLFull(url),
		),
	)
}

// endSpan records the outcome of a request on span and ends it.
func endSpan(span trace.Span, status int, err error) {
	if status > 0 {
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// injectTraceHeaders adds propagation headers that the request does not
// already carry.
func injectTraceHeaders(ctx context.Context, h http.Header) {
	carrier := propagation.HeaderCarrier(http.Header{})
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, key := range carrier.Keys() {
		if h.Get(key) == "" {
			h.Set(key, carrier.Get(key))
		}
	}
}
