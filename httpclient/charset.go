package httpclient

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// charset converts between body bytes and text in the configured encoding.
type charset struct {
	name string
	enc  encoding.Encoding
}

func newCharset(name string) (*charset, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("httpclient: unsupported encoding %q: %w", name, err)
	}
	return &charset{name: name, enc: enc}, nil
}

// decode converts body bytes to text.
func (c *charset) decode(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("httpclient: decode %s body: %w", c.name, err)
	}
	return string(out), nil
}

// encode converts text to body bytes.
func (c *charset) encode(s string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode %s body: %w", c.name, err)
	}
	return out, nil
}
