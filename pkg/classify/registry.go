package classify

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
	"github.com/goliatone/go-fieldconnector/pkg/host"
)

// Matcher decides whether a field should receive the label it was
// registered with.
type Matcher func(field host.Field) bool

type rule struct {
	label    fieldtype.FieldType
	priority int
	match    Matcher
	order    int
}

// Registry resolves host fields to field type labels. Explicit class
// overrides are honoured first, then registered matchers (higher priority
// wins; ties fall back to registration order), then the built-in class
// table in package fieldtype.
type Registry struct {
	mu        sync.RWMutex
	rules     []rule
	overrides map[string]fieldtype.FieldType
}

// NewRegistry constructs an empty registry that resolves through the
// built-in class table only.
func NewRegistry() *Registry {
	return &Registry{overrides: make(map[string]fieldtype.FieldType)}
}

// Register adds a matcher for label. Labels outside the closed set and nil
// matchers are ignored.
func (r *Registry) Register(label fieldtype.FieldType, priority int, matcher Matcher) {
	if r == nil || matcher == nil || !label.Valid() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		label:    label,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Override maps a host class directly to label, taking precedence over
// matchers and the built-in table. It returns false when either argument is
// unusable.
func (r *Registry) Override(class string, label fieldtype.FieldType) bool {
	normalized := host.NormalizeClass(class)
	if r == nil || normalized == "" || !label.Valid() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overrides == nil {
		r.overrides = make(map[string]fieldtype.FieldType)
	}
	r.overrides[normalized] = label
	return true
}

// Overrides returns a copy of the configured class overrides.
func (r *Registry) Overrides() map[string]fieldtype.FieldType {
	out := make(map[string]fieldtype.FieldType)
	if r == nil {
		return out
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for class, label := range r.overrides {
		out[class] = label
	}
	return out
}

// Resolve returns the label for field. When nothing matches the error wraps
// fieldtype.ErrUnknownField.
func (r *Registry) Resolve(field host.Field) (fieldtype.FieldType, error) {
	if r == nil || host.IsNil(field) {
		return fieldtype.Match(field)
	}

	r.mu.RLock()
	label, overridden := r.overrides[host.NormalizeClass(field.Class())]
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	if overridden {
		return label, nil
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.label, nil
		}
	}
	return fieldtype.Match(field)
}

// ClassPrefix returns a matcher accepting classes under the given namespace,
// e.g. `verbb\supertable\`.
func ClassPrefix(namespace string) Matcher {
	prefix := host.NormalizeClass(namespace)
	return func(field host.Field) bool {
		if prefix == "" {
			return false
		}
		return strings.HasPrefix(host.NormalizeClass(field.Class()), prefix)
	}
}
