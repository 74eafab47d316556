package oxtest

import "testing"

func TestReadPrint(t *testing.T) {
	tests := TestSuite{
		{"atoms", TestSequence{
			{Source: "42", Result: "42"},
			{Source: "2.5", Result: "2.5"},
			{Source: "foo", Result: "foo"},
			{Source: ":k", Result: ":k"},
			{Source: "ns/x", Result: "ns/x"},
		}},
		{"strings", TestSequence{
			{Source: `"hello"`, Result: `"hello"`},
			// The two legal escapes survive a read/print round trip.
			{Source: `"a\"b\\c"`, Result: `"a\"b\\c"`},
			{Source: `""`, Result: `""`},
		}},
		{"piped symbols", TestSequence{
			{Source: "|has space|", Result: "|has space|"},
			{Source: "|)(|", Result: "|)(|"},
			{Source: ":|k w|", Result: ":|k w|"},
		}},
		{"containers", TestSequence{
			{Source: "(f 1 2)", Result: "(f 1 2)"},
			{Source: "[1 [2] 3]", Result: "[1 [2] 3]"},
			{Source: "{:a 1 :b 2}", Result: "{:a 1 :b 2}"},
			{Source: "#{x}", Result: "#{x}"},
			{Source: "(defn f [x] (g x))", Result: "(defn f [x] (g x))"},
		}},
		{"quote", TestSequence{
			{Source: "'x", Result: "(quote x)"},
			{Source: "'(1 2)", Result: "(quote (1 2))"},
		}},
		{"whitespace and comments", TestSequence{
			{Source: "  1\n\t2  ", Result: "1 2"},
			{Source: "1 ; comment\n2", Result: "1 2"},
		}},
		{"errors", TestSequence{
			{Source: `"ab`, Err: "unterminated string literal"},
			{Source: `"a\n"`, Err: `invalid escape sequence \n`},
			{Source: "|ab", Err: "unterminated piped symbol"},
			{Source: "(1 2", Err: "unmatched ("},
			{Source: "#1", Err: "invalid dispatch macro"},
		}},
	}
	RunTestSuite(t, tests)
}
