package form

import (
	"fmt"
	"reflect"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// ToText converts a parameter value to its text form.
//
// Times use RFC 3339 with nanoseconds, Stringers and errors their own text,
// pointers are followed, scalars (including named scalar types) use their
// canonical form and structs, maps and slices are JSON encoded. A nil value
// converts to "". Values with no text form return an error.
func ToText(v any) (string, error) {
	if isNil(v) {
		return "", nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case error:
		return t.Error(), nil
	case fmt.Stringer:
		return t.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return ToText(rv.Elem().Interface())
	case reflect.Bool:
		return cast.ToStringE(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cast.ToStringE(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cast.ToStringE(rv.Uint())
	case reflect.Float32:
		return cast.ToStringE(float32(rv.Float()))
	case reflect.Float64:
		return cast.ToStringE(rv.Float())
	case reflect.String:
		return rv.String(), nil
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return cast.ToStringE(v)
	}
}
