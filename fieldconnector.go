// Package fieldconnector classifies host field definitions into the closed
// set of field type labels exposed by package fieldtype.
package fieldconnector

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-fieldconnector/pkg/classify"
	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
	"github.com/goliatone/go-fieldconnector/pkg/projectconfig"
)

// FieldType aliases fieldtype.FieldType for callers that only import the
// root package.
type FieldType = fieldtype.FieldType

// Report aliases classify.Report.
type Report = classify.Report

// Option customises a Classify call.
type Option func(*options)

type options struct {
	registry  *classify.Registry
	overrides map[string]fieldtype.FieldType
}

// WithRegistry classifies through registry instead of a fresh one.
func WithRegistry(registry *classify.Registry) Option {
	return func(o *options) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// WithOverrides maps plugin classes straight to labels. Entries are applied
// to the registry in use, so they also persist on a registry passed through
// WithRegistry.
func WithOverrides(overrides map[string]fieldtype.FieldType) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]fieldtype.FieldType, len(overrides))
		}
		for class, label := range overrides {
			o.overrides[class] = label
		}
	}
}

// NewRegistry builds a registry with the supplied overrides applied.
func NewRegistry(opts ...Option) (*classify.Registry, error) {
	cfg := &options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	registry := cfg.registry
	if registry == nil {
		registry = classify.NewRegistry()
	}
	for class, label := range cfg.overrides {
		if !registry.Override(class, label) {
			return nil, fmt.Errorf("fieldconnector: override %q -> %q: %w", class, label, fieldtype.ErrInvalidType)
		}
	}
	return registry, nil
}

// Classify loads project config definitions from fsys and classifies every
// field. Unknown classes are reported per field rather than failing the
// call.
func Classify(ctx context.Context, fsys fs.FS, opts ...Option) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	registry, err := NewRegistry(opts...)
	if err != nil {
		return Report{}, err
	}
	fields, err := projectconfig.LoadFS(fsys)
	if err != nil {
		return Report{}, fmt.Errorf("fieldconnector: load fields: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	return registry.Classify(fields), nil
}

// Lookup resolves a raw label string. It is fieldtype.FromType re-exported.
func Lookup(value string) (FieldType, bool) {
	return fieldtype.FromType(value)
}
