package cmd

import (
	"github.com/abdul-hamid-achik/hitpie/packages/request"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <url> [key=value ...]",
	Short: "Send key=value pairs as JSON and print the response",
	Long: `Send a POST request whose body is a JSON object built from the
given key=value pairs. Values are always sent as strings, and a value may
itself contain '='. When a key is repeated the last value wins.

Examples:
  hitpie post https://httpbin.org/post name=hitpie lang=go
  hitpie post http://localhost:8080/search q=a=b`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: postCommand,
}

func postCommand(cmd *cobra.Command, args []string) error {
	spec, err := request.ParsePost(args[0], args[1:])
	if err != nil {
		return err
	}
	return send(cmd, spec)
}
