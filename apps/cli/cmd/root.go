package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/hitpie/packages/core/config"
	"github.com/abdul-hamid-achik/hitpie/packages/http"
	"github.com/abdul-hamid-achik/hitpie/packages/output"
	"github.com/abdul-hamid-achik/hitpie/packages/request"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	noColorFlag bool
	prettyFlag  bool
	verboseFlag bool

	settingsErr error
)

var rootCmd = &cobra.Command{
	Use:   "hitpie",
	Short: "A small HTTP client for the terminal.",
	Long: `hitpie sends a single HTTP request and prints the response status,
headers and body. JSON and HTML bodies are syntax highlighted when
writing to a terminal.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Leftover positional args on the root mean an unknown subcommand.
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return settingsErr
	},
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs tags positional argument failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if code := execute(os.Args[1:], os.Stdout, os.Stderr); code != ExitSuccess {
		os.Exit(code)
	}
}

// execute runs the CLI with the given arguments and returns the exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return ExitSuccess
	}

	if cmd == nil {
		cmd = rootCmd
	}

	code := exitCode(err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if code == ExitUsageError {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return code
}

func exitCode(err error) int {
	var (
		ue *usageError
		pe *request.ParseError
		te *http.TransportError
		re *output.RenderError
		ce *configError
	)
	switch {
	case errors.As(err, &ue), errors.As(err, &pe):
		return ExitUsageError
	case errors.As(err, &ce):
		return ExitConfigError
	case errors.As(err, &te):
		return ExitNetworkError
	case errors.As(err, &re):
		return ExitRenderError
	default:
		return ExitFailure
	}
}

type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func init() {
	settings, err := config.Load()
	if err != nil {
		settingsErr = &configError{err: err}
		settings = config.DefaultSettings()
	}

	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", settings.NoColor, "Disable colored output and syntax highlighting (env: HITPIE_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVar(&prettyFlag, "pretty", settings.Pretty, "Re-indent JSON response bodies (env: HITPIE_PRETTY)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", settings.Verbose, "Log request diagnostics to stderr (env: HITPIE_VERBOSE)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
