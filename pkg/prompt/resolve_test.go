package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
)

type scriptedDriver struct {
	picks    []string
	asked    []string
	err      error
	confirms []bool
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if d.err != nil {
		return -1, d.err
	}
	d.asked = append(d.asked, cfg.Message)
	pick := d.picks[0]
	d.picks = d.picks[1:]
	for i, option := range cfg.Options {
		if option == pick || strings.HasPrefix(option, pick+" ") {
			return i, nil
		}
	}
	return -1, nil
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func TestResolveUnknown(t *testing.T) {
	driver := &scriptedDriver{picks: []string{"dropdown", skipOption, "superTable"}}
	classes := []string{`acme\fields\Rating`, `acme\fields\Mystery`, `verbb\supertable\fields\Legacy`}

	got, err := ResolveUnknown(context.Background(), driver, classes)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := map[string]fieldtype.FieldType{
		`acme\fields\Rating`:             fieldtype.Dropdown,
		`verbb\supertable\fields\Legacy`: fieldtype.SuperTable,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}
	if len(driver.asked) != 3 || !strings.Contains(driver.asked[0], `acme\fields\Rating`) {
		t.Fatalf("unexpected prompts: %v", driver.asked)
	}
}

func TestResolveUnknown_NoClasses(t *testing.T) {
	got, err := ResolveUnknown(context.Background(), nil, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v, %v", got, err)
	}
}

func TestResolveUnknown_Errors(t *testing.T) {
	if _, err := ResolveUnknown(context.Background(), nil, []string{"x"}); err == nil {
		t.Fatalf("expected error for nil driver")
	}
	driver := &scriptedDriver{err: ErrAborted}
	if _, err := ResolveUnknown(context.Background(), driver, []string{"x"}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSurveyDriver_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewSurveyDriver()
	if _, err := driver.Select(ctx, SelectConfig{Options: []string{"a"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("select should observe cancellation, got %v", err)
	}
	if _, err := driver.Confirm(ctx, ConfirmConfig{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("confirm should observe cancellation, got %v", err)
	}
}

func TestIndexOf(t *testing.T) {
	options := []string{"a", "b"}
	if indexOf(options, "b") != 1 || indexOf(options, "z") != -1 {
		t.Fatalf("indexOf mismatch")
	}
}
