package form

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Options controls which entries are written.
type Options struct {
	// SkipNull omits entries whose value is nil.
	SkipNull bool
	// SkipEmpty omits entries whose text form is the empty string.
	SkipEmpty bool
}

// DefaultOptions skips both nil and empty values.
func DefaultOptions() Options {
	return Options{SkipNull: true, SkipEmpty: true}
}

// EncodeFromMap encodes an explicit collection. A nil or empty collection
// encodes to "".
func EncodeFromMap(d *Data, opts Options) (string, error) {
	return encode(d, opts)
}

// EncodeFromModel projects m and encodes the result. A nil model encodes
// to "".
func EncodeFromModel(m Model, opts Options) (string, error) {
	if isNil(m) {
		return "", nil
	}
	d, err := m.QueryParams()
	if err != nil {
		return "", fmt.Errorf("form: project query model: %w", err)
	}
	return encode(d, opts)
}

func encode(d *Data, opts Options) (string, error) {
	if d.Len() == 0 {
		return "", nil
	}

	var (
		b   strings.Builder
		err error
	)
	d.Range(func(key string, value any) bool {
		if isNil(value) && opts.SkipNull {
			return true
		}
		var text string
		text, err = ToText(value)
		if err != nil {
			err = fmt.Errorf("form: convert %q: %w", key, err)
			return false
		}
		if text == "" && opts.SkipEmpty {
			return true
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(key))
		b.WriteByte('=')
		b.WriteString(Escape(text))
		return true
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Escape percent-encodes s, keeping only A-Z a-z 0-9 and "-_.~". Space is
// written as %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// AppendQuery appends an encoded query to rawURL. An empty query leaves the
// URL unchanged; a URL that already has a query gets "&", otherwise "?".
func AppendQuery(rawURL, query string) string {
	if query == "" {
		return rawURL
	}
	if strings.Contains(rawURL, "?") {
		return rawURL + "&" + query
	}
	return rawURL + "?" + query
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
