package projectconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldconnector/pkg/host"
	"github.com/goliatone/go-fieldconnector/pkg/projectconfig"
	"github.com/goliatone/go-fieldconnector/pkg/testsupport"
)

func handles(fields []host.Field) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.Meta().Handle)
	}
	return out
}

func byHandle(t *testing.T, fields []host.Field, handle string) host.Field {
	t.Helper()
	for _, field := range fields {
		if field.Meta().Handle == handle {
			return field
		}
	}
	t.Fatalf("field %q not loaded", handle)
	return nil
}

func TestLoadFS_Fixture(t *testing.T) {
	fields, err := projectconfig.LoadFS(testsupport.ProjectConfigFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(testsupport.FixtureHandles(), handles(fields)); diff != "" {
		t.Fatalf("handles mismatch (-want +got):\n%s", diff)
	}

	hero, ok := byHandle(t, fields, "heroImage").(*host.Assets)
	if !ok {
		t.Fatalf("heroImage should load as *host.Assets")
	}
	wantBase := host.Base{
		UID:               testsupport.HeroImageUID,
		Handle:            "heroImage",
		Name:              "Hero Image",
		Instructions:      "Shown at the top of the page.",
		TranslationMethod: "site",
	}
	if diff := cmp.Diff(wantBase, hero.Meta()); diff != "" {
		t.Fatalf("hero base mismatch (-want +got):\n%s", diff)
	}
	if hero.MaxRelations != 1 || len(hero.Sources) != 1 || hero.Sources[0] != "volume:images" {
		t.Fatalf("hero settings not decoded: %#v", hero.Relation)
	}
	if diff := cmp.Diff([]string{"image"}, hero.AllowedKinds); diff != "" {
		t.Fatalf("allowed kinds mismatch (-want +got):\n%s", diff)
	}

	theme, ok := byHandle(t, fields, "theme").(*host.Dropdown)
	if !ok {
		t.Fatalf("theme should load as *host.Dropdown")
	}
	if theme.Meta().UID != testsupport.ThemeUID {
		t.Fatalf("theme uid = %q", theme.Meta().UID)
	}
	if diff := cmp.Diff([]string{"light"}, theme.DefaultValues()); diff != "" {
		t.Fatalf("theme defaults mismatch (-want +got):\n%s", diff)
	}

	accent, ok := byHandle(t, fields, "accent").(*host.Color)
	if !ok {
		t.Fatalf("accent should load as *host.Color")
	}
	if accent.DefaultColor != "#FF8800" || accent.Meta().UID != testsupport.AccentUID {
		t.Fatalf("accent not decoded from project.yaml: %#v", accent)
	}

	if _, ok := byHandle(t, fields, "body").(*host.Redactor); !ok {
		t.Fatalf("body should load as *host.Redactor")
	}

	rating, ok := byHandle(t, fields, "rating").(*host.Unsupported)
	if !ok {
		t.Fatalf("rating should load as *host.Unsupported")
	}
	if rating.Class() != `acme\ratings\fields\Stars` {
		t.Fatalf("rating class = %q", rating.Class())
	}
	if rating.Settings["max"] != 5 {
		t.Fatalf("rating settings = %#v", rating.Settings)
	}
	if rating.Meta().UID != testsupport.RatingUID {
		t.Fatalf("rating uid should come from filename, got %q", rating.Meta().UID)
	}
}

func TestLoadFS_NilAndEmpty(t *testing.T) {
	fields, err := projectconfig.LoadFS(nil)
	if err != nil || len(fields) != 0 {
		t.Fatalf("nil fs should load nothing, got %v, %v", fields, err)
	}
	fields, err = projectconfig.LoadFS(fstest.MapFS{})
	if err != nil || len(fields) != 0 {
		t.Fatalf("empty fs should load nothing, got %v, %v", fields, err)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name    string
		fsys    fstest.MapFS
		message string
	}{
		{
			name: "missing handle",
			fsys: fstest.MapFS{
				"fields/a.yaml": {Data: []byte("type: craft\\fields\\Email\n")},
			},
			message: "without a handle",
		},
		{
			name: "missing type",
			fsys: fstest.MapFS{
				"fields/a.yaml": {Data: []byte("handle: email\n")},
			},
			message: "has no type",
		},
		{
			name: "duplicate handle",
			fsys: fstest.MapFS{
				"fields/a.yaml": {Data: []byte("handle: email\ntype: craft\\fields\\Email\n")},
				"fields/b.json": {Data: []byte(`{"handle":"email","type":"craft\\fields\\Email"}`)},
			},
			message: `duplicate field handle "email"`,
		},
		{
			name: "invalid uid",
			fsys: fstest.MapFS{
				"fields/a.yaml": {Data: []byte("uid: not-a-uid\nhandle: email\ntype: craft\\fields\\Email\n")},
			},
			message: "invalid uid",
		},
		{
			name: "empty file",
			fsys: fstest.MapFS{
				"fields/a.yaml": {Data: []byte("  \n")},
			},
			message: "is empty",
		},
		{
			name: "bad json",
			fsys: fstest.MapFS{
				"fields/a.json": {Data: []byte("{")},
			},
			message: "parse fields/a.json",
		},
		{
			name: "settings type mismatch",
			fsys: fstest.MapFS{
				"fields/a.yaml": {Data: []byte("handle: n\ntype: craft\\fields\\Number\nsettings:\n  decimals: many\n")},
			},
			message: "decode craft\\fields\\Number settings",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := projectconfig.LoadFS(tc.fsys)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.message)
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Fatalf("error %q does not contain %q", err, tc.message)
			}
		})
	}
}

func TestLoadFieldsFS_RootIsFieldsDir(t *testing.T) {
	fsys := fstest.MapFS{
		"email.yaml":        {Data: []byte("handle: email\ntype: craft\\fields\\Email\nsettings:\n  placeholder: you@example.com\n")},
		"nested/table.yaml": {Data: []byte("handle: specs\ntype: craft\\fields\\Table\nsettings:\n  columns:\n    - heading: Key\n      handle: key\n")},
	}
	fields, err := projectconfig.LoadFieldsFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"email", "specs"}, handles(fields)); diff != "" {
		t.Fatalf("handles mismatch (-want +got):\n%s", diff)
	}
	email := fields[0].(*host.Email)
	if email.Placeholder != "you@example.com" {
		t.Fatalf("placeholder = %q", email.Placeholder)
	}
	table := fields[1].(*host.Table)
	if diff := cmp.Diff([]host.Column{{Heading: "Key", Handle: "key"}}, table.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "fields"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := []byte("handle: enabled\ntype: craft\\fields\\LightSwitch\nsettings:\n  default: true\n")
	if err := os.WriteFile(filepath.Join(dir, "fields", "enabled.yaml"), body, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fields, err := projectconfig.LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("expected one field, got %d", len(fields))
	}
	toggle, ok := fields[0].(*host.LightSwitch)
	if !ok || !toggle.Default {
		t.Fatalf("unexpected field %#v", fields[0])
	}

	if _, err := projectconfig.LoadDir(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
	if _, err := projectconfig.LoadDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
	if _, err := projectconfig.LoadDir(filepath.Join(dir, "fields", "enabled.yaml")); err == nil {
		t.Fatalf("expected error for file path")
	}
}
