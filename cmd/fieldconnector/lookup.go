package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "types",
		Short:       "List every field type with its host class and traits",
		Args:        cobra.NoArgs,
		Annotations: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tLABEL\tCLASS\tTRAITS")
			for _, t := range fieldtype.Values() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t, t.Label(), t.Class(), traitsCell(t))
			}
			return w.Flush()
		},
	}
}

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <value>",
		Short: "Resolve a raw string to a field type",
		Long: `Resolve a raw string to a field type. Matching is exact and
case-sensitive. The command exits with status 1 when nothing matches.`,
		Args:        cobra.ExactArgs(1),
		Annotations: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := fieldtype.FromType(args[0])
			if !ok {
				return &exitError{code: exitUserError, msg: fmt.Sprintf("unknown field type %q", args[0])}
			}
			_, err := fmt.Fprintf(a.stdout, "%s\t%s\t%s\n", t, t.Class(), traitsCell(t))
			return err
		},
	}
}

func traitsCell(t fieldtype.FieldType) string {
	traits := t.Traits()
	if len(traits) == 0 {
		return "-"
	}
	return strings.Join(traits, ",")
}
