// Package observability wires OpenTelemetry tracing and metrics for outbound
// HTTP requests.
//
// Setup starts both providers from one Config:
//
//	shutdown, err := observability.Setup(ctx, cfg)
//	defer shutdown(ctx)
//
// Every request sent by httpclient.Adapter opens an "http.request" client
// span through a RequestContext and is recorded on HTTPMetrics:
//
//	metrics, err := observability.NewHTTPMetrics(observability.Meter(observability.InstrumentationName))
//	rc := observability.NewRequestContext("orders", "GET", url, requestID, metrics, nil)
//	ctx, span := rc.Start(ctx)
//	defer rc.End(ctx, span, status, err)
//
// Health probes from several clients are aggregated with ServiceHealth.
package observability
