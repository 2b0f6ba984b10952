package value

import (
	"errors"
	"image/color"
	"maps"
	"net/url"
	"slices"
	"testing"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type label string

func TestIsTextLike(t *testing.T) {
	link, _ := url.Parse("https://example.com")
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"string", "hello", true},
		{"empty string", "", true},
		{"named string", label("x"), true},
		{"bytes", []byte("hi"), true},
		{"stringer", link, true},
		{"text marshaler", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"nil", nil, false},
		{"int", 42, false},
		{"slice", []string{"a"}, false},
		{"map", map[string]any{}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsTextLike(tc.value); got != tc.want {
				t.Fatalf("IsTextLike(%#v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestIsIterable(t *testing.T) {
	ids := []int{1, 2}
	var nilSlice *[]int
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"slice", []string{"a", "b"}, true},
		{"empty slice", []any{}, true},
		{"array", [2]int{1, 2}, true},
		{"map", map[string]int{"a": 1}, true},
		{"pointer to slice", &ids, true},
		{"seq", slices.Values(ids), true},
		{"seq2", maps.All(map[string]int{"a": 1}), true},
		{"string", "abc", false},
		{"bytes", []byte("abc"), false},
		{"nil", nil, false},
		{"nil pointer", nilSlice, false},
		{"int", 3, false},
		{"plain func", func() {}, false},
		{"struct", struct{}{}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsIterable(tc.value); got != tc.want {
				t.Fatalf("IsIterable(%T) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	red := "#FF0000"
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"long hex", "#ff8800", "#ff8800"},
		{"upper hex", "#FFAA00", "#ffaa00"},
		{"no hash", "00ff00", "#00ff00"},
		{"short hex", "#abc", "#aabbcc"},
		{"padded", "  #123456 ", "#123456"},
		{"string pointer", &red, "#ff0000"},
		{"rgba", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, "#123456"},
		{"colorful", colorful.Color{R: 1, G: 1, B: 1}, "#ffffff"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ColorHex(tc.value)
			if err != nil {
				t.Fatalf("ColorHex(%v): %v", tc.value, err)
			}
			if got != tc.want {
				t.Fatalf("ColorHex(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestColorHex_Errors(t *testing.T) {
	var nilString *string
	empty := []any{nil, "", "   ", nilString, color.RGBA{}}
	for _, v := range empty {
		if _, err := ColorHex(v); !errors.Is(err, ErrNoColor) {
			t.Fatalf("ColorHex(%#v) error = %v, want ErrNoColor", v, err)
		}
	}

	invalid := []any{"#ggg", "#12345", "#1234567", "#12345g", "#abcdez", "12g", "red", 42, colorful.Color{R: 2}}
	for _, v := range invalid {
		if _, err := ColorHex(v); !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("ColorHex(%#v) error = %v, want ErrInvalidColor", v, err)
		}
	}
}

func TestPlainText(t *testing.T) {
	cases := map[string]string{
		"<p>Hello <strong>world</strong></p>":         "Hello world",
		"<p>First</p><p>Second</p>":                   "First Second",
		"Line one<br>Line two":                        "Line one Line two",
		"<ul><li>One</li><li>Two</li></ul>":           "One Two",
		"Tom &amp; Jerry":                             "Tom & Jerry",
		"<a href=\"https://example.com\">link</a> ok": "link ok",
		"   ":                                         "",
		"plain":                                       "plain",
	}
	for input, want := range cases {
		if got := PlainText(input); got != want {
			t.Fatalf("PlainText(%q) = %q, want %q", input, got, want)
		}
	}
}
