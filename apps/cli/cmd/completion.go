package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   "completion <shell>",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for hitpie's subcommands and global flags.

Examples:
  source <(hitpie completion bash)
  hitpie completion zsh > "${fpath[1]}/_hitpie"
  hitpie completion fish | source
  hitpie completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
	RunE:                  completionCommand,
}

func completionCommand(cmd *cobra.Command, args []string) error {
	root, out := cmd.Root(), cmd.OutOrStdout()

	var err error
	switch args[0] {
	case "bash":
		err = root.GenBashCompletionV2(out, true)
	case "zsh":
		err = root.GenZshCompletion(out)
	case "fish":
		err = root.GenFishCompletion(out, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(out)
	}
	if err != nil {
		return fmt.Errorf("generating %s completion: %w", args[0], err)
	}
	return nil
}
