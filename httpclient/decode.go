package httpclient

import (
	"bytes"
	"reflect"

	"github.com/goccy/go-json"

	"github.com/kbukum/httpkit/errors"
)

// Decode deserializes JSON text into T.
//
// Empty text yields the zero value of T. Text the codec rejects, and
// non-empty text that decodes to nothing (a JSON null, or a nil pointer,
// map, slice or interface), both return a ServiceError with code
// errors.CodeDeserializeFailed naming T and carrying the text.
func Decode[T any](text string) (T, error) {
	var out T
	if text == "" {
		return out, nil
	}

	if err := json.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, errors.Deserialization(typeName[T](), text, err)
	}
	if isJSONNull(text) || isNilResult(out) {
		var zero T
		return zero, errors.Deserialization(typeName[T](), text, nil)
	}
	return out, nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func isJSONNull(text string) bool {
	return bytes.Equal(bytes.TrimSpace([]byte(text)), []byte("null"))
}

func isNilResult(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
