package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fieldconnector "github.com/goliatone/go-fieldconnector"
	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
	"github.com/goliatone/go-fieldconnector/pkg/prompt"
	"github.com/goliatone/go-fieldconnector/pkg/report"
)

type classifyFlags struct {
	format      string
	interactive bool
	save        bool
}

func newClassifyCmd(a *app) *cobra.Command {
	flags := &classifyFlags{}
	cmd := &cobra.Command{
		Use:   "classify <dir>",
		Short: "Classify every field in a project config directory",
		Long: `Load field definitions from a project config directory (project.yaml
and the fields/ folder) and report the field type of each one.

Fields whose class has no field type are listed as unresolved. With
--interactive the command asks for a field type per unresolved class, and
with --save the answers are written to the config file as overrides.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, a, flags, args[0])
		},
	}
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "prompt for a field type per unresolved class")
	cmd.Flags().BoolVar(&flags.save, "save", false, "write overrides chosen interactively to the config file")
	return cmd
}

func runClassify(cmd *cobra.Command, a *app, flags *classifyFlags, dir string) error {
	rawFormat := a.config.Format
	if cmd.Flags().Changed("format") {
		rawFormat = flags.format
	}
	format, err := report.ParseFormat(rawFormat)
	if err != nil {
		return &exitError{code: exitUserError, msg: err.Error()}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return &exitError{code: exitUserError, msg: fmt.Sprintf("project config: %v", err)}
	}
	if !info.IsDir() {
		return &exitError{code: exitUserError, msg: fmt.Sprintf("project config: %s is not a directory", dir)}
	}

	overrides, err := a.config.overrides()
	if err != nil {
		return err
	}
	a.tracef("transfer: %s, retention %s", a.config.Transfer.Type, a.config.Transfer.Retention())

	ctx := cmd.Context()
	fsys := os.DirFS(dir)
	rep, err := fieldconnector.Classify(ctx, fsys, fieldconnector.WithOverrides(overrides))
	if err != nil {
		return err
	}

	if flags.interactive {
		if classes := rep.UnresolvedClasses(); len(classes) > 0 {
			driver := a.newDriver()
			chosen, err := prompt.ResolveUnknown(ctx, driver, classes)
			if err != nil {
				return err
			}
			if len(chosen) > 0 {
				rep, err = fieldconnector.Classify(ctx, fsys,
					fieldconnector.WithOverrides(overrides),
					fieldconnector.WithOverrides(chosen),
				)
				if err != nil {
					return err
				}
				if err := a.maybeSave(cmd, driver, flags.save, chosen); err != nil {
					return err
				}
			}
		}
	}

	for _, result := range rep.Results {
		if result.Resolved() {
			a.tracef("field %s: %s -> %s", result.Handle, result.Class, result.Type)
		} else {
			a.tracef("field %s: %s unresolved", result.Handle, result.Class)
		}
	}
	return report.Render(a.stdout, rep, format)
}

func (a *app) maybeSave(cmd *cobra.Command, driver prompt.Driver, save bool, chosen map[string]fieldtype.FieldType) error {
	if !save {
		ok, err := driver.Confirm(cmd.Context(), prompt.ConfirmConfig{
			Message: fmt.Sprintf("Save %d override(s) to the config file?", len(chosen)),
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	path, err := saveOverrides(a.viper, a.configFile, chosen)
	if err != nil {
		return err
	}
	a.logger.Printf("saved %d override(s) to %s", len(chosen), path)
	return nil
}
