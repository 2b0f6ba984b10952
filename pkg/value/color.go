package value

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrNoColor is returned when the value holds no color at all.
	ErrNoColor = errors.New("value: no color")
	// ErrInvalidColor is returned for values that cannot be read as a color.
	ErrInvalidColor = errors.New("value: invalid color")
)

// ColorHex formats v as a lowercase #rrggbb string. Accepted inputs are hex
// strings with or without the leading '#', in short (#rgb) or long form,
// colorful.Color and any image/color.Color.
func ColorHex(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", ErrNoColor
	case string:
		return hexFromString(c)
	case *string:
		if c == nil {
			return "", ErrNoColor
		}
		return hexFromString(*c)
	case colorful.Color:
		if !c.IsValid() {
			return "", fmt.Errorf("%w: out of gamut %v", ErrInvalidColor, c)
		}
		return c.Hex(), nil
	case color.Color:
		// MakeColor refuses fully transparent colors; treat those as absent.
		converted, ok := colorful.MakeColor(c)
		if !ok {
			return "", ErrNoColor
		}
		return converted.Hex(), nil
	case fmt.Stringer:
		return hexFromString(c.String())
	}
	return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidColor, v)
}

func hexFromString(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrNoColor
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	// colorful.Hex scans with Sscanf, which stops quietly at the first
	// non-hex digit, so the digits are checked here.
	if (len(trimmed) != 4 && len(trimmed) != 7) || strings.IndexFunc(trimmed[1:], notHexDigit) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}
	parsed, err := colorful.Hex(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}
	return parsed.Hex(), nil
}

func notHexDigit(r rune) bool {
	return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F')
}
