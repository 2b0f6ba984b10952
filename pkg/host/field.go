package host

import (
	"reflect"
	"strings"
)

// Field is implemented by every host field object.
type Field interface {
	// Class returns the fully-qualified host class name, e.g. craft\fields\Assets.
	Class() string
	// Meta returns the attributes shared by all field classes.
	Meta() Base
}

// Base holds the attributes the host stores for every field regardless of
// its class.
type Base struct {
	UID               string `json:"uid,omitempty" yaml:"uid,omitempty"`
	Handle            string `json:"handle" yaml:"handle"`
	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	Instructions      string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Searchable        bool   `json:"searchable,omitempty" yaml:"searchable,omitempty"`
	TranslationMethod string `json:"translationMethod,omitempty" yaml:"translationMethod,omitempty"`
}

// Meta implements Field for every type embedding Base.
func (b *Base) Meta() Base {
	if b == nil {
		return Base{}
	}
	return *b
}

func (b *Base) setBase(base Base) {
	*b = base
}

type baseSetter interface {
	setBase(Base)
}

// IsNil reports whether field is nil or a nil pointer behind the interface.
// Class works on a nil receiver but Meta does not, so callers check this
// before touching a field.
func IsNil(field Field) bool {
	if field == nil {
		return true
	}
	rv := reflect.ValueOf(field)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// NormalizeClass trims whitespace and leading namespace separators so that
// `\craft\fields\Assets` and `craft\fields\Assets` compare equal.
func NormalizeClass(class string) string {
	return strings.TrimLeft(strings.TrimSpace(class), `\`)
}

// Option is a single choice of an option field (dropdown, checkboxes, ...).
type Option struct {
	Label   string `json:"label" yaml:"label"`
	Value   string `json:"value" yaml:"value"`
	Default bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

// OptionSet is embedded by the option field classes.
type OptionSet struct {
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`
}

// DefaultValues returns the values flagged as default, in declaration order.
func (o OptionSet) DefaultValues() []string {
	var out []string
	for _, opt := range o.Options {
		if opt.Default {
			out = append(out, opt.Value)
		}
	}
	return out
}

// Relation is embedded by the element relation field classes.
type Relation struct {
	Sources      []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	MaxRelations int      `json:"maxRelations,omitempty" yaml:"maxRelations,omitempty"`
	MinRelations int      `json:"minRelations,omitempty" yaml:"minRelations,omitempty"`
}

// Column describes a single column of a table field.
type Column struct {
	Heading string `json:"heading" yaml:"heading"`
	Handle  string `json:"handle" yaml:"handle"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
}
