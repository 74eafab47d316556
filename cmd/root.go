package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the ox front end.
var rootCmd = &cobra.Command{
	Use:   "ox",
	Short: "oxlang front-end tools",
	Long:  `Tokenize, read, and print oxlang source.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// argSources pairs each command line argument with its stream identifier and
// content.  With expression true the arguments themselves are source text;
// otherwise they are paths to read.
func argSources(args []string, expression bool) ([]namedSource, error) {
	srcs := make([]namedSource, len(args))
	for i, arg := range args {
		if expression {
			srcs[i] = namedSource{fmt.Sprintf("arg %d", i), []byte(arg)}
			continue
		}
		b, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		srcs[i] = namedSource{arg, b}
	}
	return srcs, nil
}

type namedSource struct {
	name   string
	source []byte
}
