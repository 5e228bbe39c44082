// Package validation checks configuration and command input for httpkit.
//
// Struct tag validation uses go-playground/validator. Field names in messages
// come from the mapstructure or json tag, falling back to snake_case.
//
//	type Config struct {
//	    BaseURL string        `mapstructure:"base_url" validate:"omitempty,url"`
//	    Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
//	}
//	err := validation.Validate(cfg)
//
// Programmatic validation collects field errors and reports them together:
//
//	v := validation.New()
//	v.Required("url", rawURL).OneOf("output", out, []string{"json", "raw"})
//	err := v.Validate()
//
// Both forms return a *errors.ServiceError built from errors.InvalidInput.
package validation
