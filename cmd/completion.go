package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	// Add the completion command to the root
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate autocompletion script for your shell",
	Long: `To load completions:

Bash:

  $ source <(shdw-drive completion bash)
  # To load completions for each session, add to your ~/.bashrc:
  #   source <(shdw-drive completion bash)

Zsh:

  $ shdw-drive completion zsh > "${fpath[1]}/_shdw-drive"
  # Or:
  $ shdw-drive completion zsh > ~/.zsh/completion/_shdw-drive

Fish:

  $ shdw-drive completion fish | source
  # To load automatically:
  $ shdw-drive completion fish > ~/.config/fish/completions/shdw-drive.fish

PowerShell:

  PS> shdw-drive completion powershell | Out-String | Invoke-Expression
  # To load for every session, add the above to your $PROFILE
`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Hidden:    true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		default:
			return fmt.Errorf("unsupported shell type: %s", args[0])
		}
	},
}
