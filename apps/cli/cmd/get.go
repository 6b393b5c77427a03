package cmd

import (
	"github.com/abdul-hamid-achik/hitpie/packages/request"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Send a GET request and print the response",
	Long: `Send a GET request to an absolute http or https URL and print the
response status, headers and body.

Examples:
  hitpie get https://httpbin.org/get
  hitpie get --no-color http://localhost:8080/health`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: getCommand,
}

func getCommand(cmd *cobra.Command, args []string) error {
	spec, err := request.ParseGet(args[0])
	if err != nil {
		return err
	}
	return send(cmd, spec)
}
