package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RequestContext tracks one outbound request: its span, request id and
// metrics.
type RequestContext struct {
	Client    string
	Method    string
	URL       string
	RequestID string
	StartTime time.Time
	Metrics   *HTTPMetrics
	Tracer    trace.Tracer
}

// NewRequestContext creates a request context starting now. A nil metrics
// skips metric recording; a nil tracer uses the global provider.
func NewRequestContext(client, method, url, requestID string, metrics *HTTPMetrics, tracer trace.Tracer) *RequestContext {
	if tracer == nil {
		tracer = Tracer(InstrumentationName)
	}
	return &RequestContext{
		Client:    client,
		Method:    method,
		URL:       url,
		RequestID: requestID,
		StartTime: time.Now(),
		Metrics:   metrics,
		Tracer:    tracer,
	}
}

type requestContextKey struct{}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFromContext returns the RequestContext stored in ctx, or nil.
func RequestContextFromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return rc
	}
	return nil
}

// Start opens the client span and records the in-flight metric. The
// returned context carries both the span and rc.
func (rc *RequestContext) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := rc.Tracer.Start(ctx, SpanHTTPRequest, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String(AttrClientName, rc.Client),
		attribute.String(AttrHTTPMethod, rc.Method),
		attribute.String(AttrHTTPURL, rc.URL),
		attribute.String(AttrRequestID, rc.RequestID),
	)
	if rc.Metrics != nil {
		rc.Metrics.RecordStart(ctx, rc.Client, rc.Method)
	}
	return WithRequestContext(ctx, rc), span
}

// End closes the span and records the completed request.
func (rc *RequestContext) End(ctx context.Context, span trace.Span, statusCode int, err error) {
	duration := rc.Duration()

	if statusCode > 0 {
		span.SetAttributes(attribute.Int(AttrHTTPStatusCode, statusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}
	span.SetAttributes(attribute.Int64(AttrDurationMs, duration.Milliseconds()))
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordEnd(ctx, rc.Client, rc.Method, statusCode, duration)
	}
}

// Duration returns the elapsed time since the request started.
func (rc *RequestContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
