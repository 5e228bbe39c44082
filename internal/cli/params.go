package cli

import (
	"fmt"
	"strings"

	"github.com/kbukum/httpkit/httpclient/form"
	"github.com/kbukum/httpkit/validation"
)

// parsePairs turns repeated key=value flags into ordered parameters. The
// value may be empty; the key may not.
func parsePairs(flag string, pairs []string) (*form.Data, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	v := validation.New()
	data := form.NewData()
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		v.Custom(ok && key != "", flag, fmt.Sprintf("%q is not key=value", pair))
		if ok && key != "" {
			data.Set(key, value)
		}
	}
	if err := v.Validate(); err != nil {
		return nil, withExitCode(ExitUsage, err)
	}
	return data, nil
}

func validateTarget(rawURL string) error {
	return withExitCode(ExitUsage, validation.New().URL("url", rawURL).Validate())
}
