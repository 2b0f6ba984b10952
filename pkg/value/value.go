// Package value inspects and normalises field values before they leave the
// connector.
package value

import (
	"encoding"
	"fmt"
	"reflect"
)

// IsTextLike reports whether v serialises as a single string: strings, byte
// slices, fmt.Stringer and encoding.TextMarshaler implementations.
func IsTextLike(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case string, []byte, fmt.Stringer, encoding.TextMarshaler:
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return true
	}
	return rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
}

// IsIterable reports whether v holds a collection: slices, arrays, maps and
// range-over-func sequences. Strings and byte slices are text, not
// collections.
func IsIterable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array, reflect.Map:
		return true
	case reflect.Func:
		return rv.Type().CanSeq() || rv.Type().CanSeq2()
	}
	return false
}
