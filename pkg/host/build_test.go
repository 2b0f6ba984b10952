package host

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func jsonDecoder(raw string) DecodeFunc {
	return func(target any) error {
		return json.Unmarshal([]byte(raw), target)
	}
}

func TestBuild_KnownClassDecodesSettings(t *testing.T) {
	base := Base{Handle: "theme", Name: "Theme"}
	field, err := Build(`\craft\fields\Dropdown`, base, jsonDecoder(`{"options":[{"label":"Light","value":"light","default":true},{"label":"Dark","value":"dark"}]}`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	dropdown, ok := field.(*Dropdown)
	if !ok {
		t.Fatalf("expected *Dropdown, got %T", field)
	}
	if got := dropdown.Meta(); got != base {
		t.Fatalf("base mismatch: %#v", got)
	}
	want := []Option{
		{Label: "Light", Value: "light", Default: true},
		{Label: "Dark", Value: "dark"},
	}
	if diff := cmp.Diff(want, dropdown.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"light"}, dropdown.DefaultValues()); diff != "" {
		t.Fatalf("default values mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_BaseWinsOverSettings(t *testing.T) {
	field, err := Build(ClassPlainText, Base{Handle: "title"}, jsonDecoder(`{"handle":"ignored","charLimit":80}`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	text := field.(*PlainText)
	if text.Handle != "title" {
		t.Fatalf("expected base handle to win, got %q", text.Handle)
	}
	if text.CharLimit != 80 {
		t.Fatalf("char limit not decoded: %d", text.CharLimit)
	}
}

func TestBuild_UnknownClassIsUnsupported(t *testing.T) {
	field, err := Build(`acme\fields\Rating`, Base{Handle: "stars"}, jsonDecoder(`{"max":5}`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	unsupported, ok := field.(*Unsupported)
	if !ok {
		t.Fatalf("expected *Unsupported, got %T", field)
	}
	if unsupported.Class() != `acme\fields\Rating` {
		t.Fatalf("class mismatch: %q", unsupported.Class())
	}
	if unsupported.Settings["max"] != float64(5) {
		t.Fatalf("settings not decoded: %#v", unsupported.Settings)
	}
	if unsupported.Meta().Handle != "stars" {
		t.Fatalf("base not applied: %#v", unsupported.Meta())
	}
}

func TestBuild_Errors(t *testing.T) {
	if _, err := Build("  ", Base{}, nil); !errors.Is(err, ErrEmptyClass) {
		t.Fatalf("expected ErrEmptyClass, got %v", err)
	}

	boom := errors.New("boom")
	_, err := Build(ClassColor, Base{}, func(any) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected decode error to be wrapped, got %v", err)
	}
}

func TestClasses_SortedAndKnown(t *testing.T) {
	classes := Classes()
	if len(classes) != len(constructors) {
		t.Fatalf("expected %d classes, got %d", len(constructors), len(classes))
	}
	for i, class := range classes {
		if i > 0 && classes[i-1] >= class {
			t.Fatalf("classes not sorted at %d: %q >= %q", i, classes[i-1], class)
		}
		if !Known(class) {
			t.Fatalf("class %q not reported as known", class)
		}
		field, err := Build(class, Base{}, nil)
		if err != nil {
			t.Fatalf("build %s: %v", class, err)
		}
		if field.Class() != class {
			t.Fatalf("constructor for %s returned class %s", class, field.Class())
		}
	}
	if Known(`acme\fields\Rating`) {
		t.Fatalf("unexpected known class")
	}
}

type customText struct {
	PlainText
}

func TestEmbeddedTypeInheritsClass(t *testing.T) {
	var field Field = &customText{PlainText{Base: Base{Handle: "subtitle"}}}
	if field.Class() != ClassPlainText {
		t.Fatalf("embedded type should inherit class, got %q", field.Class())
	}
	if field.Meta().Handle != "subtitle" {
		t.Fatalf("embedded type should inherit meta, got %#v", field.Meta())
	}
}

func TestNormalizeClass(t *testing.T) {
	cases := map[string]string{
		`\craft\fields\Assets`:    `craft\fields\Assets`,
		"  craft\\fields\\Url  ": `craft\fields\Url`,
		"":                        "",
	}
	for input, want := range cases {
		if got := NormalizeClass(input); got != want {
			t.Fatalf("NormalizeClass(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsNil(t *testing.T) {
	var assets *Assets
	var field Field = assets
	cases := map[string]struct {
		field Field
		want  bool
	}{
		"untyped nil":   {nil, true},
		"typed nil":     {field, true},
		"zero value":    {&Assets{}, false},
		"unsupported":   {&Unsupported{ClassName: "x"}, false},
		"typed nil uns": {(*Unsupported)(nil), true},
	}
	for name, tc := range cases {
		if got := IsNil(tc.field); got != tc.want {
			t.Fatalf("%s: IsNil = %v, want %v", name, got, tc.want)
		}
	}
}
