// Package oxtest provides a table-driven harness for exercising the scanner,
// reader, and printer together: source text in, printed forms (or an error)
// out.
package oxtest

import (
	"strings"
	"testing"

	"github.com/oxlang/oxlang/parser/rdparser"
	"github.com/oxlang/oxlang/printer"
)

// TestSequence is a sequence of source strings which are read and printed in
// order.  Result holds the expected printed forms, one per form read,
// separated by single spaces.  Err, when non-empty, is a substring expected
// in the read error.
type TestSequence []struct {
	Source string
	Result string
	Err    string
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite reads and prints each TestSequence in tests.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		for j, c := range test.TestSequence {
			forms, err := rdparser.ReadString("test", c.Source)
			if c.Err != "" {
				if err == nil {
					t.Errorf("test %d %q: source %d: expected error containing %q (got none)", i, test.Name, j, c.Err)
				} else if !strings.Contains(err.Error(), c.Err) {
					t.Errorf("test %d %q: source %d: expected error containing %q (got %q)", i, test.Name, j, c.Err, err)
				}
				continue
			}
			if err != nil {
				t.Errorf("test %d %q: source %d: read error: %v", i, test.Name, j, err)
				continue
			}
			printed := make([]string, 0, len(forms))
			for _, form := range forms {
				s, err := printer.Default.Sprint(form)
				if err != nil {
					t.Errorf("test %d %q: source %d: print error: %v", i, test.Name, j, err)
					continue
				}
				printed = append(printed, s)
			}
			result := strings.Join(printed, " ")
			if result != c.Result {
				t.Errorf("test %d %q: source %d: expected result %s (got %s)", i, test.Name, j, c.Result, result)
			}
		}
	}
}
