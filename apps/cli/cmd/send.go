package cmd

import (
	"io"
	"os"

	"github.com/abdul-hamid-achik/hitpie/packages/http"
	"github.com/abdul-hamid-achik/hitpie/packages/logger"
	"github.com/abdul-hamid-achik/hitpie/packages/output"
	"github.com/abdul-hamid-achik/hitpie/packages/request"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// send issues spec and renders the response. Both subcommands go through
// here so GET and POST responses look the same.
func send(cmd *cobra.Command, spec *request.Spec) error {
	noColor := noColorFlag || !isTerminal(cmd.OutOrStdout())
	log := logger.New(cmd.ErrOrStderr(), verboseFlag, noColorFlag || !isTerminal(cmd.ErrOrStderr()))

	client := http.NewClient(http.Config{
		DefaultHeaders: http.DefaultHeaders(version),
		Logger:         log,
	})

	resp, err := client.Do(cmd.Context(), spec)
	if err != nil {
		return err
	}

	renderer := output.NewConsoleRenderer(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithNoColor(noColor),
		output.WithPretty(prettyFlag),
		output.WithLogger(log),
	)
	return renderer.Render(resp)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
