package classify

import (
	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
	"github.com/goliatone/go-fieldconnector/pkg/host"
)

// Result is the classification outcome for a single field. Type is empty
// when Error is set.
type Result struct {
	Handle string              `json:"handle" yaml:"handle"`
	Name   string              `json:"name,omitempty" yaml:"name,omitempty"`
	Class  string              `json:"class" yaml:"class"`
	Type   fieldtype.FieldType `json:"type,omitempty" yaml:"type,omitempty"`
	Traits []string            `json:"traits,omitempty" yaml:"traits,omitempty"`
	Error  string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// Resolved reports whether the field received a label.
func (r Result) Resolved() bool {
	return r.Error == "" && r.Type != ""
}

// Report collects results in input order.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
}

// Unresolved returns the results that failed to classify.
func (r Report) Unresolved() []Result {
	var out []Result
	for _, result := range r.Results {
		if !result.Resolved() {
			out = append(out, result)
		}
	}
	return out
}

// UnresolvedClasses returns the distinct classes of unresolved results in
// first-seen order.
func (r Report) UnresolvedClasses() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, result := range r.Unresolved() {
		if _, ok := seen[result.Class]; ok {
			continue
		}
		seen[result.Class] = struct{}{}
		out = append(out, result.Class)
	}
	return out
}

// Counts tallies resolved results per label.
func (r Report) Counts() map[fieldtype.FieldType]int {
	out := make(map[fieldtype.FieldType]int)
	for _, result := range r.Results {
		if result.Resolved() {
			out[result.Type]++
		}
	}
	return out
}

// Classify resolves every field. Nil entries, including nil pointers of a
// field type, are skipped.
func (r *Registry) Classify(fields []host.Field) Report {
	report := Report{Results: make([]Result, 0, len(fields))}
	for _, field := range fields {
		if host.IsNil(field) {
			continue
		}
		report.Results = append(report.Results, r.classifyField(field))
	}
	return report
}

func (r *Registry) classifyField(field host.Field) Result {
	meta := field.Meta()
	result := Result{
		Handle: meta.Handle,
		Name:   meta.Name,
		Class:  host.NormalizeClass(field.Class()),
	}
	label, err := r.Resolve(field)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Type = label
	result.Traits = label.Traits()
	return result
}
