package httpclient

import (
	"context"

	"github.com/kbukum/httpkit/httpclient/form"
)

// The functions below bind the target URL per call. Each raw key/value entry
// point has a query-model twin; both encode with form.DefaultOptions, so nil
// and empty values are never sent.

// GetJSON sends a GET with data as the query and decodes the response into T.
func GetJSON[T any](ctx context.Context, a *Adapter, url string, data *form.Data, opts ...RequestOption) (T, error) {
	return decodeText[T](GetString(ctx, a, url, data, opts...))
}

// GetJSONModel sends a GET with model projected as the query and decodes the
// response into T.
func GetJSONModel[T any](ctx context.Context, a *Adapter, url string, model form.Model, opts ...RequestOption) (T, error) {
	return decodeText[T](GetStringModel(ctx, a, url, model, opts...))
}

// GetString sends a GET with data as the query and returns the body as text.
func GetString(ctx context.Context, a *Adapter, url string, data *form.Data, opts ...RequestOption) (string, error) {
	query, err := encodeMap(data)
	if err != nil {
		return "", err
	}
	return a.getText(ctx, url, query, opts)
}

// GetStringModel sends a GET with model projected as the query and returns
// the body as text.
func GetStringModel(ctx context.Context, a *Adapter, url string, model form.Model, opts ...RequestOption) (string, error) {
	query, err := encodeModel(model)
	if err != nil {
		return "", err
	}
	return a.getText(ctx, url, query, opts)
}

// PostJSON posts body verbatim and decodes the response into T.
func PostJSON[T any](ctx context.Context, a *Adapter, url, body string, opts ...RequestOption) (T, error) {
	return decodeText[T](PostString(ctx, a, url, body, opts...))
}

// PostForm posts data as a form-urlencoded body and decodes the response
// into T.
func PostForm[T any](ctx context.Context, a *Adapter, url string, data *form.Data, opts ...RequestOption) (T, error) {
	body, err := encodeMap(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return PostJSON[T](ctx, a, url, body, opts...)
}

// PostFormModel posts model as a form-urlencoded body and decodes the
// response into T.
func PostFormModel[T any](ctx context.Context, a *Adapter, url string, model form.Model, opts ...RequestOption) (T, error) {
	body, err := encodeModel(model)
	if err != nil {
		var zero T
		return zero, err
	}
	return PostJSON[T](ctx, a, url, body, opts...)
}

// PostString posts body verbatim and returns the response as text.
func PostString(ctx context.Context, a *Adapter, url, body string, opts ...RequestOption) (string, error) {
	var payload []byte
	if body != "" {
		var err error
		if payload, err = a.Bytes(body); err != nil {
			return "", NewValidationError("encode body", err)
		}
	}
	resp, err := a.Post(ctx, url, payload, opts...)
	if err != nil {
		return "", err
	}
	return a.Text(resp.Body)
}

// HeadStatus probes url. See Adapter.Head.
func HeadStatus(ctx context.Context, a *Adapter, url string, opts ...RequestOption) int {
	return a.Head(ctx, url, opts...)
}

// Upload posts the file at filePath with data as the query and returns the
// response as text.
func Upload(ctx context.Context, a *Adapter, url string, data *form.Data, filePath string, opts ...RequestOption) (string, error) {
	query, err := encodeMap(data)
	if err != nil {
		return "", err
	}
	return a.Upload(ctx, url, query, filePath, opts...)
}

// UploadModel posts the file at filePath with model projected as the query
// and returns the response as text.
func UploadModel(ctx context.Context, a *Adapter, url, filePath string, model form.Model, opts ...RequestOption) (string, error) {
	query, err := encodeModel(model)
	if err != nil {
		return "", err
	}
	return a.Upload(ctx, url, query, filePath, opts...)
}

func (a *Adapter) getText(ctx context.Context, url, query string, opts []RequestOption) (string, error) {
	resp, err := a.Get(ctx, url, query, opts...)
	if err != nil {
		return "", err
	}
	return a.Text(resp.Body)
}

func encodeMap(data *form.Data) (string, error) {
	s, err := form.EncodeFromMap(data, form.DefaultOptions())
	if err != nil {
		return "", NewValidationError("encode parameters", err)
	}
	return s, nil
}

func encodeModel(model form.Model) (string, error) {
	s, err := form.EncodeFromModel(model, form.DefaultOptions())
	if err != nil {
		return "", NewValidationError("encode query model", err)
	}
	return s, nil
}

func decodeText[T any](text string, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](text)
}
