package fieldtype

import (
	"fmt"

	"github.com/goliatone/go-fieldconnector/pkg/host"
)

var byClass = func() map[string]FieldType {
	out := make(map[string]FieldType, len(table))
	for _, c := range table {
		out[c.class] = c.value
	}
	return out
}()

// Match returns the field type for a host field object. Types embedding a
// host field type resolve to the embedded type's label. Nil fields and
// unrecognised classes yield ErrUnknownField, including nil pointers of a
// known type.
func Match(field host.Field) (FieldType, error) {
	if host.IsNil(field) {
		return "", fmt.Errorf("%w: <nil>", ErrUnknownField)
	}
	return MatchClass(field.Class())
}

// MatchClass resolves a host class name such as craft\fields\Assets.
func MatchClass(class string) (FieldType, error) {
	normalized := host.NormalizeClass(class)
	if ft, ok := byClass[normalized]; ok {
		return ft, nil
	}
	if normalized == "" {
		normalized = "<empty>"
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, normalized)
}
