package main

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-fieldconnector/pkg/prompt"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// annotationNoConfig marks commands that run without loading config.
const annotationNoConfig = "fieldconnector/no-config"

var noConfig = map[string]string{annotationNoConfig: "true"}

// version is replaced at build time with -ldflags "-X main.version=...".
var version = "dev"

// exitError carries a specific exit status out of a command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger

	configFile string
	verbose    bool

	viper  *viper.Viper
	config config

	// newDriver builds the prompt driver used by --interactive.
	newDriver func() prompt.Driver
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: log.New(stderr, "fieldconnector: ", 0),
	}
	a.newDriver = func() prompt.Driver {
		in, inOK := a.stdin.(terminal.FileReader)
		out, outOK := a.stdout.(terminal.FileWriter)
		if !inOK || !outOK {
			return prompt.NewSurveyDriver()
		}
		return prompt.NewSurveyDriver(survey.WithStdio(in, out, a.stderr))
	}
	return a
}

// tracef logs only when --verbose is set.
func (a *app) tracef(format string, args ...any) {
	if a.verbose {
		a.logger.Printf(format, args...)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldconnector",
		Short:         "Classify host field definitions into connector field types",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoConfig] != "" {
				return nil
			}
			v, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			cfg, err := decodeConfig(v)
			if err != nil {
				return err
			}
			a.viper, a.config = v, cfg
			if used := v.ConfigFileUsed(); used != "" {
				a.tracef("config: %s", used)
			}
			return nil
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./fieldconnector.yaml or ~/.fieldconnector/fieldconnector.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log per-field trace lines to stderr")

	root.AddCommand(
		newTypesCmd(a),
		newLookupCmd(a),
		newClassifyCmd(a),
		newSchemaCmd(a),
		newVersionCmd(a),
	)
	return root
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version number",
		Args:        cobra.NoArgs,
		Annotations: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "fieldconnector %s\n", version)
			return err
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
