package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

// Fixture uids used by ProjectConfigFS.
const (
	HeroImageUID = "0b6c6f4e-3d7a-4b7e-9a55-1f2b3c4d5e6f"
	ThemeUID     = "8d9e0f1a-2b3c-4d5e-8f70-819203a4b5c6"
	AccentUID    = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
	RatingUID    = "c0ffee00-1234-4abc-9def-0123456789ab"
)

// ProjectConfigFS returns an in-memory project config root covering the
// layouts projectconfig understands: per-field YAML, per-field JSON, the
// aggregate project.yaml, and a plugin class with no Go mirror.
func ProjectConfigFS() fstest.MapFS {
	return fstest.MapFS{
		"project.yaml": {Data: []byte(`dateModified: 1718000000
fields:
  ` + AccentUID + `:
    handle: accent
    name: Accent
    type: craft\fields\Color
    settings:
      defaultColor: '#FF8800'
`)},
		"fields/heroImage--" + HeroImageUID + ".yaml": {Data: []byte(`columnSuffix: null
handle: heroImage
instructions: 'Shown at the top of the page.'
name: 'Hero Image'
searchable: false
settings:
  allowedKinds:
    - image
  maxRelations: 1
  sources:
    - 'volume:images'
translationMethod: site
type: craft\fields\Assets
`)},
		"fields/theme.json": {Data: []byte(`{
  "uid": "` + ThemeUID + `",
  "handle": "theme",
  "name": "Theme",
  "type": "craft\\fields\\Dropdown",
  "settings": {
    "options": [
      {"label": "Light", "value": "light", "default": true},
      {"label": "Dark", "value": "dark"}
    ]
  }
}`)},
		"fields/rating--" + RatingUID + ".yaml": {Data: []byte(`handle: rating
name: Rating
type: acme\ratings\fields\Stars
settings:
  max: 5
`)},
		"fields/body.yaml": {Data: []byte(`handle: body
name: Body
type: craft\redactor\Field
settings: null
`)},
		"fields/README.md":      {Data: []byte("not a definition")},
		"sections/news--x.yaml": {Data: []byte("handle: news\ntype: channel\n")},
	}
}

// FixtureHandles lists the handles ProjectConfigFS yields, sorted.
func FixtureHandles() []string {
	return []string{"accent", "body", "heroImage", "rating", "theme"}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustJSON marshals value with indentation, failing the test on error.
func MustJSON(t *testing.T, value any) []byte {
	t.Helper()
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	return payload
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
