package fieldtype

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-fieldconnector/pkg/host"
)

// FieldType is the connector's own label for a host field class.
type FieldType string

const (
	Assets       FieldType = "assets"
	Blurhash     FieldType = "blurhash"
	Categories   FieldType = "categories"
	Checkboxes   FieldType = "checkboxes"
	Color        FieldType = "color"
	Country      FieldType = "country"
	Date         FieldType = "date"
	Dropdown     FieldType = "dropdown"
	Email        FieldType = "email"
	Embed        FieldType = "embed"
	Entries      FieldType = "entries"
	LightSwitch  FieldType = "lightSwitch"
	Matrix       FieldType = "matrix"
	Map          FieldType = "map"
	MissingField FieldType = "missingField"
	Money        FieldType = "money"
	MultiSelect  FieldType = "multiSelect"
	Number       FieldType = "number"
	PlainText    FieldType = "plainText"
	Position     FieldType = "position"
	RadioButtons FieldType = "radioButtons"
	Redactor     FieldType = "redactor"
	SuperTable   FieldType = "superTable"
	Table        FieldType = "table"
	Tags         FieldType = "tags"
	Time         FieldType = "time"
	URL          FieldType = "url"
	Users        FieldType = "users"
)

var (
	// ErrUnknownField is returned when a field's class has no label.
	ErrUnknownField = errors.New("fieldtype: no field type for field")
	// ErrInvalidType is returned when decoding a string outside the set.
	ErrInvalidType = errors.New("fieldtype: invalid field type")
)

type entry struct {
	value FieldType
	class string
}

// table is in declaration order; Values and FromType scan it linearly.
var table = [...]entry{
	{Assets, host.ClassAssets},
	{Blurhash, host.ClassBlurhash},
	{Categories, host.ClassCategories},
	{Checkboxes, host.ClassCheckboxes},
	{Color, host.ClassColor},
	{Country, host.ClassCountry},
	{Date, host.ClassDate},
	{Dropdown, host.ClassDropdown},
	{Email, host.ClassEmail},
	{Embed, host.ClassEmbed},
	{Entries, host.ClassEntries},
	{LightSwitch, host.ClassLightSwitch},
	{Matrix, host.ClassMatrix},
	{Map, host.ClassMap},
	{MissingField, host.ClassMissingField},
	{Money, host.ClassMoney},
	{MultiSelect, host.ClassMultiSelect},
	{Number, host.ClassNumber},
	{PlainText, host.ClassPlainText},
	{Position, host.ClassPosition},
	{RadioButtons, host.ClassRadioButtons},
	{Redactor, host.ClassRedactor},
	{SuperTable, host.ClassSuperTable},
	{Table, host.ClassTable},
	{Tags, host.ClassTags},
	{Time, host.ClassTime},
	{URL, host.ClassURL},
	{Users, host.ClassUsers},
}

// Values returns every field type in declaration order.
func Values() []FieldType {
	out := make([]FieldType, len(table))
	for i, c := range table {
		out[i] = c.value
	}
	return out
}

// FromType returns the field type whose string value equals value. The
// comparison is exact and case-sensitive.
func FromType(value string) (FieldType, bool) {
	for _, c := range table {
		if string(c.value) == value {
			return c.value, true
		}
	}
	return "", false
}

// Parse is FromType with an error for callers that propagate failures.
func Parse(value string) (FieldType, error) {
	if ft, ok := FromType(value); ok {
		return ft, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, value)
}

// String implements fmt.Stringer.
func (t FieldType) String() string {
	return string(t)
}

// Valid reports whether t is one of the declared field types.
func (t FieldType) Valid() bool {
	_, ok := FromType(string(t))
	return ok
}

// Class returns the host class associated with t, or "" for invalid values.
func (t FieldType) Class() string {
	for _, c := range table {
		if c.value == t {
			return c.class
		}
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler. Invalid values are rejected
// so a stray label never leaves the process.
func (t FieldType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, string(t))
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FieldType) UnmarshalText(text []byte) error {
	ft, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = ft
	return nil
}
