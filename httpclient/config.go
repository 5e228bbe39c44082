package httpclient

import (
	"fmt"
	"time"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/kbukum/httpkit/validation"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultEncoding = "utf-8"
)

// Config configures the HTTP adapter. It is read-only once the adapter is
// built.
type Config struct {
	// Name identifies the adapter in logs, spans and metrics.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is the URL a rest.Client is bound to. The adapter itself
	// takes full URLs per call.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout is the per-request timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// Encoding is the charset used to convert bodies to and from text.
	// Any WHATWG encoding label is accepted. Defaults to utf-8.
	Encoding string `yaml:"encoding" mapstructure:"encoding"`

	// Headers are default headers applied to all requests. User-Agent is
	// fixed and cannot be overridden here.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth is applied to every request unless a call supplies WithAuth.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "http"
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Encoding == "" {
		c.Encoding = defaultEncoding
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if _, err := htmlindex.Get(c.Encoding); err != nil {
		return fmt.Errorf("httpclient: unsupported encoding %q: %w", c.Encoding, err)
	}
	return c.Auth.Validate()
}
