package cmd

import (
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/shell"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().StringP("prompt", "P", "", "Prompt shown before each command")
	lo.Must0(viper.BindPFlag(key.ShellPrompt, shellCmd.Flags().Lookup("prompt")))
}

// shellCmd starts the line-based interactive mode.
var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"mini", "repl"},
	Short:   "Drive a stack one command per line",
	Long: `Read stack operations from standard input, one per line.
A prompt is shown when standard input is a terminal, so the same command can be fed from a pipe.`,
	Example: `  echo -e "push 1\npush 2\npop" | lifo shell`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(shell.Run(&shell.Options{}))
	},
}
