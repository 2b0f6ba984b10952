package host

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyClass is returned by Build when no class name is supplied.
var ErrEmptyClass = errors.New("host: field class is required")

// DecodeFunc decodes raw field settings into target. Callers plug in their
// serialization of choice (yaml.Node.Decode, json.Unmarshal, ...).
type DecodeFunc func(target any) error

var constructors = map[string]func() Field{
	ClassAssets:       func() Field { return &Assets{} },
	ClassCategories:   func() Field { return &Categories{} },
	ClassCheckboxes:   func() Field { return &Checkboxes{} },
	ClassColor:        func() Field { return &Color{} },
	ClassCountry:      func() Field { return &Country{} },
	ClassDate:         func() Field { return &Date{} },
	ClassDropdown:     func() Field { return &Dropdown{} },
	ClassEmail:        func() Field { return &Email{} },
	ClassEntries:      func() Field { return &Entries{} },
	ClassLightSwitch:  func() Field { return &LightSwitch{} },
	ClassMatrix:       func() Field { return &Matrix{} },
	ClassMissingField: func() Field { return &MissingField{} },
	ClassMoney:        func() Field { return &Money{} },
	ClassMultiSelect:  func() Field { return &MultiSelect{} },
	ClassNumber:       func() Field { return &Number{} },
	ClassPlainText:    func() Field { return &PlainText{} },
	ClassRadioButtons: func() Field { return &RadioButtons{} },
	ClassTable:        func() Field { return &Table{} },
	ClassTags:         func() Field { return &Tags{} },
	ClassTime:         func() Field { return &Time{} },
	ClassURL:          func() Field { return &URL{} },
	ClassUsers:        func() Field { return &Users{} },
	ClassBlurhash:     func() Field { return &Blurhash{} },
	ClassEmbed:        func() Field { return &Embed{} },
	ClassMap:          func() Field { return &Map{} },
	ClassPosition:     func() Field { return &Position{} },
	ClassRedactor:     func() Field { return &Redactor{} },
	ClassSuperTable:   func() Field { return &SuperTable{} },
}

// Build instantiates the Go mirror of class, decodes its settings through
// decode (when non-nil) and applies base. Classes without a mirror produce an
// *Unsupported whose Settings are decoded into a generic map.
func Build(class string, base Base, decode DecodeFunc) (Field, error) {
	normalized := NormalizeClass(class)
	if normalized == "" {
		return nil, ErrEmptyClass
	}

	var field Field
	var target any
	if ctor, ok := constructors[normalized]; ok {
		field = ctor()
		target = field
	} else {
		unsupported := &Unsupported{ClassName: normalized}
		field = unsupported
		target = &unsupported.Settings
	}

	if decode != nil {
		if err := decode(target); err != nil {
			return nil, fmt.Errorf("host: decode %s settings: %w", normalized, err)
		}
	}
	if setter, ok := field.(baseSetter); ok {
		setter.setBase(base)
	}
	return field, nil
}

// Known reports whether class has a Go mirror in this package.
func Known(class string) bool {
	_, ok := constructors[NormalizeClass(class)]
	return ok
}

// Classes returns every class with a Go mirror, sorted.
func Classes() []string {
	out := make([]string, 0, len(constructors))
	for class := range constructors {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}
