package token

import "fmt"

// Token is a single lexical unit scanned from a source stream.  Text holds
// the raw rune for single-character tokens and the accumulated (unescaped)
// content for strings and symbols.  Tokens are never modified after they are
// emitted.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

func (tok *Token) String() string {
	return fmt.Sprintf("%s %s %q", tok.Source, tok.Type, tok.Text)
}

type Type uint

// Type constants used by the oxlang scanner.
const (
	INVALID Type = iota

	// Structural delimiters
	PAREN_L
	PAREN_R
	BRACKET_L
	BRACKET_R
	BRACE_L
	BRACE_R

	// Whitespace (newlines are tagged distinctly)
	WHITESPACE
	NEWLINE

	// Reader macro markers
	HASH
	QUOTE
	COMMENT

	// Atoms
	STRING
	NUMBER
	SYMBOL
	SYMBOL_PIPED
	KEYWORD
	KEYWORD_PIPED

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:       "invalid",
		PAREN_L:       "(",
		PAREN_R:       ")",
		BRACKET_L:     "[",
		BRACKET_R:     "]",
		BRACE_L:       "{",
		BRACE_R:       "}",
		WHITESPACE:    "whitespace",
		NEWLINE:       "newline",
		HASH:          "#",
		QUOTE:         "'",
		COMMENT:       ";",
		STRING:        "string",
		NUMBER:        "number",
		SYMBOL:        "symbol",
		SYMBOL_PIPED:  "piped-symbol",
		KEYWORD:       "keyword",
		KEYWORD_PIPED: "piped-keyword",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location identifies the position of a rune in a named source stream.  File
// is an opaque stream identifier supplied by the caller and is only used for
// rendering and equality.  Pos counts runes from the start of the stream and
// increases by exactly one per rune read.  Line and Col are 0-indexed,
// although the column a line restarts at is configurable in the scanner.
type Location struct {
	File string
	Pos  int
	Line int
	Col  int
}

func (loc *Location) String() string {
	if loc == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
}
