package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxlang/oxlang/parser/rdparser"
	"github.com/oxlang/oxlang/printer"
)

var readExpression bool

// readCmd parses source and prints the forms it contains.
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read oxlang source",
	Long:  `Read forms from files (or expressions with -e) and print them.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := argSources(args, readExpression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, src := range srcs {
			forms, err := rdparser.Read(src.name, bytes.NewReader(src.source))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, form := range forms {
				s, err := printer.Default.Sprint(form)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				fmt.Println(s)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().BoolVarP(&readExpression, "expression", "e", false,
		"Interpret arguments as oxlang expressions")
}
