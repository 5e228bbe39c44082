package rest

import (
	"context"

	"github.com/kbukum/httpkit/httpclient"
	"github.com/kbukum/httpkit/httpclient/form"
	"github.com/kbukum/httpkit/observability"
)

// Client binds an HTTP adapter to one base URL. Every call targets that URL,
// with parameters appended as the query string.
type Client struct {
	adapter *httpclient.Adapter
	baseURL string
}

// New builds an adapter from cfg and binds it to baseURL. An empty baseURL
// falls back to cfg.BaseURL.
func New(baseURL string, cfg httpclient.Config, opts ...httpclient.Option) (*Client, error) {
	if baseURL == "" {
		baseURL = cfg.BaseURL
	} else {
		cfg.BaseURL = baseURL
	}
	a, err := httpclient.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{adapter: a, baseURL: baseURL}, nil
}

// NewFromAdapter binds an existing adapter to baseURL.
func NewFromAdapter(baseURL string, a *httpclient.Adapter) *Client {
	return &Client{adapter: a, baseURL: baseURL}
}

// BaseURL returns the bound URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Adapter returns the underlying HTTP adapter.
func (c *Client) Adapter() *httpclient.Adapter { return c.adapter }

// Get sends a GET with data as the query and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, data *form.Data, opts ...httpclient.RequestOption) (T, error) {
	return httpclient.GetJSON[T](ctx, c.adapter, c.baseURL, data, opts...)
}

// GetModel sends a GET with model projected as the query and decodes the
// response into T.
func GetModel[T any](ctx context.Context, c *Client, model form.Model, opts ...httpclient.RequestOption) (T, error) {
	return httpclient.GetJSONModel[T](ctx, c.adapter, c.baseURL, model, opts...)
}

// Post sends body verbatim to the bound URL with data appended as the query,
// and decodes the response into T. data may be nil.
func Post[T any](ctx context.Context, c *Client, body string, data *form.Data, opts ...httpclient.RequestOption) (T, error) {
	text, err := c.PostString(ctx, body, data, opts...)
	return decode[T](text, err)
}

// PostModel is Post with the query projected from model.
func PostModel[T any](ctx context.Context, c *Client, body string, model form.Model, opts ...httpclient.RequestOption) (T, error) {
	text, err := c.PostStringModel(ctx, body, model, opts...)
	return decode[T](text, err)
}

// GetString sends a GET with data as the query and returns the body as text.
func (c *Client) GetString(ctx context.Context, data *form.Data, opts ...httpclient.RequestOption) (string, error) {
	return httpclient.GetString(ctx, c.adapter, c.baseURL, data, opts...)
}

// GetStringModel sends a GET with model projected as the query and returns
// the body as text.
func (c *Client) GetStringModel(ctx context.Context, model form.Model, opts ...httpclient.RequestOption) (string, error) {
	return httpclient.GetStringModel(ctx, c.adapter, c.baseURL, model, opts...)
}

// PostString sends body verbatim with data as the query and returns the
// response as text.
func (c *Client) PostString(ctx context.Context, body string, data *form.Data, opts ...httpclient.RequestOption) (string, error) {
	query, err := form.EncodeFromMap(data, form.DefaultOptions())
	if err != nil {
		return "", httpclient.NewValidationError("encode parameters", err)
	}
	return httpclient.PostString(ctx, c.adapter, form.AppendQuery(c.baseURL, query), body, opts...)
}

// PostStringModel is PostString with the query projected from model.
func (c *Client) PostStringModel(ctx context.Context, body string, model form.Model, opts ...httpclient.RequestOption) (string, error) {
	query, err := form.EncodeFromModel(model, form.DefaultOptions())
	if err != nil {
		return "", httpclient.NewValidationError("encode query model", err)
	}
	return httpclient.PostString(ctx, c.adapter, form.AppendQuery(c.baseURL, query), body, opts...)
}

// Upload posts the file at filePath to the bound URL with data as the query.
func (c *Client) Upload(ctx context.Context, data *form.Data, filePath string, opts ...httpclient.RequestOption) (string, error) {
	return httpclient.Upload(ctx, c.adapter, c.baseURL, data, filePath, opts...)
}

// UploadModel posts the file at filePath with the query projected from model.
func (c *Client) UploadModel(ctx context.Context, filePath string, model form.Model, opts ...httpclient.RequestOption) (string, error) {
	return httpclient.UploadModel(ctx, c.adapter, c.baseURL, filePath, model, opts...)
}

// Head probes the bound URL. See httpclient.Adapter.Head.
func (c *Client) Head(ctx context.Context, opts ...httpclient.RequestOption) int {
	return httpclient.HeadStatus(ctx, c.adapter, c.baseURL, opts...)
}

// CheckHealth probes the bound URL and reports it as a health component.
func (c *Client) CheckHealth(ctx context.Context) observability.Health {
	return observability.HealthFromStatusCode(c.adapter.Name(), c.baseURL, c.Head(ctx))
}

func decode[T any](text string, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return httpclient.Decode[T](text)
}
