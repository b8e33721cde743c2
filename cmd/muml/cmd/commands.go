package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mUML/internal/command"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the shell commands",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range command.Templates() {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
