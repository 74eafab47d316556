package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oxlang/oxlang/repl"
)

// replCmd starts the interactive read-print loop.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-print loop",
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run("> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
