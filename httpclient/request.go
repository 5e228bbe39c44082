package httpclient

import (
	"bytes"
	"io"
	"net/http"
)

// LegacyUserAgent is sent with every request. Some upstreams gate on a
// browser signature, so it is not configurable.
const LegacyUserAgent = "Mozilla/5.0 (Windows NT 6.2; WOW64) AppleWebKit/537.1 (KHTML, like Gecko) Maxthon/4.1.2.4000 Chrome/26.0.1410.43 Safari/537.1"

const (
	contentTypeForm   = "application/x-www-form-urlencoded"
	contentTypeBinary = "application/octet-stream"
)

// RequestSpec describes one outbound request. It is owned by a single call.
type RequestSpec struct {
	// Method is GET, POST or HEAD.
	Method string
	// URL is the full target URL including any encoded query.
	URL string
	// Body is sent as is. Nil sends no body.
	Body []byte
	// ContentType overrides the content type of a body. POST defaults to
	// application/x-www-form-urlencoded.
	ContentType string
	// Cookies is attached for this request only. Response cookies are
	// stored back into it.
	Cookies http.CookieJar
	// Referer is sent as the Referer header when set.
	Referer string
	// Headers are request-specific headers merged over the config defaults.
	Headers map[string]string
	// Auth replaces the configured credentials for this request.
	Auth *AuthConfig

	stream io.Reader
}

func (s *RequestSpec) bodyReader() io.Reader {
	if s.stream != nil {
		return s.stream
	}
	if s.Body != nil {
		return bytes.NewReader(s.Body)
	}
	return nil
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// RequestOption configures a single request.
type RequestOption func(*RequestSpec)

// WithCookies attaches a cookie jar to the request.
func WithCookies(jar http.CookieJar) RequestOption {
	return func(s *RequestSpec) {
		s.Cookies = jar
	}
}

// WithReferer sets the Referer header.
func WithReferer(referer string) RequestOption {
	return func(s *RequestSpec) {
		s.Referer = referer
	}
}

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(s *RequestSpec) {
		if s.Headers == nil {
			s.Headers = make(map[string]string)
		}
		s.Headers[key] = value
	}
}

// WithAuth attaches credentials to the request, replacing Config.Auth.
func WithAuth(auth *AuthConfig) RequestOption {
	return func(s *RequestSpec) {
		s.Auth = auth
	}
}

func newSpec(method, url string, opts []RequestOption) RequestSpec {
	spec := RequestSpec{Method: method, URL: url}
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}
