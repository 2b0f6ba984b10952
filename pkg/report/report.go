// Package report renders classification reports for terminals and tools.
package report

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2/v6"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldconnector/pkg/classify"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat accepts text, json and yaml (case-insensitive). An empty
// string selects text.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
}

//go:embed templates/report.tpl
var defaultTemplate string

// Option customises a Renderer.
type Option func(*config)

type config struct {
	template string
}

// WithTemplate replaces the embedded text template. The template receives
// `rows` (pre-aligned table lines), `summary` (Total, Resolved, Unresolved)
// and `unresolved` (classify.Result values).
func WithTemplate(source string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(source) != "" {
			cfg.template = source
		}
	}
}

// Renderer writes reports in the supported formats.
type Renderer struct {
	text *pongo2.Template
}

// New compiles the text template and returns a Renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{template: defaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	tpl, err := pongo2.FromString(cfg.template)
	if err != nil {
		return nil, fmt.Errorf("report: parse template: %w", err)
	}
	return &Renderer{text: tpl}, nil
}

// Render writes report to w in the requested format.
func (r *Renderer) Render(w io.Writer, rep classify.Report, format Format) error {
	if r == nil || r.text == nil {
		return errors.New("report: renderer is nil")
	}
	switch format {
	case FormatText, "":
		return r.renderText(w, rep)
	case FormatJSON:
		payload, err := json.MarshalIndent(normalized(rep), "", "  ")
		if err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		payload = append(payload, '\n')
		_, err = w.Write(payload)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(normalized(rep)); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// Render writes rep with a default Renderer.
func Render(w io.Writer, rep classify.Report, format Format) error {
	r, err := New()
	if err != nil {
		return err
	}
	return r.Render(w, rep, format)
}

type summary struct {
	Total      int
	Resolved   int
	Unresolved int
}

func (r *Renderer) renderText(w io.Writer, rep classify.Report) error {
	unresolved := rep.Unresolved()
	ctx := pongo2.Context{
		"rows": tableRows(rep.Results),
		"summary": summary{
			Total:      len(rep.Results),
			Resolved:   len(rep.Results) - len(unresolved),
			Unresolved: len(unresolved),
		},
		"unresolved": unresolved,
	}
	if err := r.text.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("report: render text: %w", err)
	}
	return nil
}

func tableRows(results []classify.Result) []string {
	handleWidth, typeWidth := len("HANDLE"), len("TYPE")
	for _, result := range results {
		handleWidth = max(handleWidth, len(result.Handle))
		typeWidth = max(typeWidth, len(typeCell(result)))
	}
	rows := make([]string, 0, len(results)+1)
	rows = append(rows, fmt.Sprintf("%-*s  %-*s  %s", handleWidth, "HANDLE", typeWidth, "TYPE", "CLASS"))
	for _, result := range results {
		rows = append(rows, fmt.Sprintf("%-*s  %-*s  %s", handleWidth, result.Handle, typeWidth, typeCell(result), result.Class))
	}
	return rows
}

func typeCell(result classify.Result) string {
	if result.Resolved() {
		return result.Type.String()
	}
	return "-"
}

// normalized keeps the results slice non-nil so encoders emit [] rather
// than null.
func normalized(rep classify.Report) classify.Report {
	if rep.Results == nil {
		rep.Results = []classify.Result{}
	}
	return rep
}
