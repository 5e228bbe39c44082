package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/httpkit/httpclient/form"
	"github.com/kbukum/httpkit/logger"
	"github.com/kbukum/httpkit/observability"
)

// Adapter builds and sends requests with a fixed timeout, user agent and
// charset. It holds only immutable configuration and is safe for concurrent
// use.
type Adapter struct {
	httpClient *http.Client
	config     Config
	charset    *charset
	log        *logger.Logger
	metrics    *observability.HTTPMetrics
	tracer     trace.Tracer
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used for request debug records.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) {
		a.log = l
	}
}

// WithMetrics records every request on m.
func WithMetrics(m *observability.HTTPMetrics) Option {
	return func(a *Adapter) {
		a.metrics = m
	}
}

// WithTracerProvider traces requests with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *Adapter) {
		a.tracer = tp.Tracer(observability.InstrumentationName)
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(a *Adapter) {
		a.httpClient.Transport = rt
	}
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cs, err := newCharset(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		httpClient: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		},
		config:  cfg,
		charset: cs,
		log:     logger.Get("httpclient"),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Send executes spec and returns the complete response. Transport failures
// and non-2xx statuses return a *Error; for the latter the response is
// returned as well.
func (a *Adapter) Send(ctx context.Context, spec RequestSpec) (*Response, error) {
	requestID := uuid.NewString()
	rc := observability.NewRequestContext(a.config.Name, spec.Method, spec.URL, requestID, a.metrics, a.tracer)
	ctx, span := rc.Start(ctx)

	resp, err := a.execute(ctx, spec)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	rc.End(ctx, span, status, err)

	log := a.log.WithRequestID(requestID)
	fields := logger.Fields(
		logger.FieldMethod, spec.Method,
		logger.FieldURL, spec.URL,
		logger.FieldStatus, status,
		logger.FieldDuration, rc.Duration().Milliseconds(),
	)
	if err != nil {
		log.WithError(err).Debug("request failed", fields)
	} else {
		log.Debug("request completed", fields)
	}

	return resp, err
}

// Get sends a GET to url with query appended.
func (a *Adapter) Get(ctx context.Context, url, query string, opts ...RequestOption) (*Response, error) {
	return a.Send(ctx, newSpec(http.MethodGet, form.AppendQuery(url, query), opts))
}

// Post sends body as a form-urlencoded POST. A nil body sends an empty POST.
func (a *Adapter) Post(ctx context.Context, url string, body []byte, opts ...RequestOption) (*Response, error) {
	spec := newSpec(http.MethodPost, url, opts)
	spec.Body = body
	return a.Send(ctx, spec)
}

// Head probes url and returns its status code. Any transport failure or
// non-2xx status yields http.StatusExpectationFailed; Head never fails.
func (a *Adapter) Head(ctx context.Context, url string, opts ...RequestOption) int {
	resp, err := a.Send(ctx, newSpec(http.MethodHead, url, opts))
	if err != nil || !resp.IsSuccess() {
		return http.StatusExpectationFailed
	}
	return resp.StatusCode
}

// Upload posts the file at filePath as multipart/form-data (field "file")
// to url with query appended, and returns the response body as text.
func (a *Adapter) Upload(ctx context.Context, url, query, filePath string, opts ...RequestOption) (string, error) {
	upload, err := openFileUpload(filePath)
	if err != nil {
		return "", err
	}
	body, contentType, wait := upload.stream()
	defer wait()

	spec := newSpec(http.MethodPost, form.AppendQuery(url, query), opts)
	spec.stream = body
	spec.ContentType = contentType

	resp, err := a.Send(ctx, spec)
	if err != nil {
		return "", err
	}
	return a.Text(resp.Body)
}

// Text decodes body bytes with the configured charset.
func (a *Adapter) Text(body []byte) (string, error) {
	return a.charset.decode(body)
}

// Bytes encodes text with the configured charset.
func (a *Adapter) Bytes(text string) ([]byte, error) {
	return a.charset.encode(text)
}

// CheckHealth probes the configured BaseURL with HEAD.
func (a *Adapter) CheckHealth(ctx context.Context) observability.Health {
	code := a.Head(ctx, a.config.BaseURL)
	return observability.HealthFromStatusCode(a.config.Name, a.config.BaseURL, code)
}

// execute builds and sends the HTTP request.
func (a *Adapter) execute(ctx context.Context, spec RequestSpec) (*Response, error) {
	httpReq, err := a.buildRequest(ctx, spec)
	if err != nil {
		return nil, err
	}

	client := a.httpClient
	if spec.Cookies != nil {
		withJar := *a.httpClient
		withJar.Jar = spec.Cookies
		client = &withJar
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(err, ctx.Err())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the adapter config and spec.
func (a *Adapter) buildRequest(ctx context.Context, spec RequestSpec) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, spec.bodyReader())
	if err != nil {
		return nil, NewValidationError("create request", err)
	}

	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}
	if spec.Auth != nil {
		spec.Auth.apply(httpReq)
	} else {
		a.config.Auth.apply(httpReq)
	}
	for k, v := range spec.Headers {
		httpReq.Header.Set(k, v)
	}

	switch {
	case spec.ContentType != "":
		httpReq.Header.Set("Content-Type", spec.ContentType)
	case spec.Method == http.MethodPost:
		httpReq.Header.Set("Content-Type", contentTypeForm)
	}

	if spec.Referer != "" {
		httpReq.Header.Set("Referer", spec.Referer)
	}
	httpReq.Header.Set("User-Agent", LegacyUserAgent)

	return httpReq, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return a.config.Name
}

// Config returns the adapter's configuration.
func (a *Adapter) Config() Config {
	return a.config
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (a *Adapter) Unwrap() *http.Client {
	return a.httpClient
}

// Close releases idle connections held by the adapter.
func (a *Adapter) Close(_ context.Context) error {
	a.httpClient.CloseIdleConnections()
	return nil
}
