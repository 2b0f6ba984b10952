package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldconnector/pkg/openapi"
	"github.com/goliatone/go-fieldconnector/pkg/report"
)

func newSchemaCmd(a *app) *cobra.Command {
	var rawFormat string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing field types and reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(rawFormat)
			if err != nil || format == report.FormatText {
				return &exitError{code: exitUserError, msg: fmt.Sprintf("schema: unsupported format %q", rawFormat)}
			}

			payload, err := json.MarshalIndent(openapi.Document(version), "", "  ")
			if err != nil {
				return fmt.Errorf("schema: encode json: %w", err)
			}
			if format == report.FormatJSON {
				_, err = fmt.Fprintf(a.stdout, "%s\n", payload)
				return err
			}

			// JSON is valid YAML; decoding into a node keeps key order.
			var node yaml.Node
			if err := yaml.Unmarshal(payload, &node); err != nil {
				return fmt.Errorf("schema: convert yaml: %w", err)
			}
			blockStyle(&node)
			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(&node); err != nil {
				return fmt.Errorf("schema: encode yaml: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&rawFormat, "format", "f", string(report.FormatJSON), "output format: json or yaml")
	return cmd
}

// blockStyle turns the flow collections produced by a JSON source into
// block collections.
func blockStyle(node *yaml.Node) {
	if node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode {
		node.Style = 0
	}
	for _, child := range node.Content {
		blockStyle(child)
	}
}
