package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxlang/oxlang/parser/lexer"
)

var tokensExpression bool

// tokensCmd dumps the raw located token stream for source input.
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Tokenize oxlang source",
	Long:  `Scan files (or expressions with -e) and print the token stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := argSources(args, tokensExpression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, src := range srcs {
			lex := lexer.New(src.name, bytes.NewReader(src.source))
			toks, err := lex.ReadAll()
			for _, tok := range toks {
				fmt.Println(tok)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVarP(&tokensExpression, "expression", "e", false,
		"Interpret arguments as oxlang expressions")
}
