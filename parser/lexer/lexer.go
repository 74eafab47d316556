package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/oxlang/oxlang/parser/token"
)

// delimiterRunes terminate a bare symbol, keyword, or number in progress.
// The quote and hash markers deliberately do not appear here; they only
// dispatch at the start of a token.
const delimiterRunes = "()[]{}\";"

// ScanError is a fatal tokenization error.  Source references the first rune
// of the token that could not be scanned.
type ScanError struct {
	Source *token.Location
	Msg    string
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("%s: %s", err.Source, err.Msg)
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithFirstColumn returns an Option that sets the column index assigned to
// the first rune of every line.  The default first column is 0.
func WithFirstColumn(col int) Option {
	return func(lex *Lexer) {
		lex.firstCol = col
	}
}

// Lexer scans a character stream into a sequence of located tokens.  The
// sequence is single-pass and terminates when the underlying reader is
// exhausted or a ScanError is encountered.
type Lexer struct {
	name     string
	r        *bufio.Reader
	firstCol int

	// loc is the location of the rune just read while nextLoc is the
	// location that applies to the rune about to be read.  Line and column
	// advancement for nextLoc is computed from the rune stored at loc.
	loc     token.Location
	nextLoc token.Location

	err error
}

// New initializes and returns a Lexer scanning r.  The name is an opaque
// stream identifier threaded into every emitted location and error.
func New(name string, r io.Reader, opts ...Option) *Lexer {
	lex := &Lexer{
		name: name,
		r:    bufio.NewReader(r),
	}
	for _, opt := range opts {
		opt(lex)
	}
	lex.nextLoc = token.Location{File: name, Col: lex.firstCol}
	return lex
}

// HasNext returns true if the stream has more tokens.  HasNext consumes no
// input.
func (lex *Lexer) HasNext() bool {
	if lex.err != nil {
		return false
	}
	_, err := lex.r.Peek(1)
	return err == nil
}

// Next scans and returns the next token.  Clean stream termination is
// signaled with a nil token and io.EOF.  Any other error is a *ScanError and
// terminates the token sequence.
func (lex *Lexer) Next() (*token.Token, error) {
	if lex.err != nil {
		return nil, lex.err
	}
	c, err := lex.read()
	if err == io.EOF {
		lex.err = io.EOF
		return nil, io.EOF
	}
	if err != nil {
		// A reader failure is not clean termination; report it at the
		// position the unread rune would have occupied.
		return lex.fatalf(lex.nextLoc, "error reading stream: %v", err)
	}
	start := lex.loc
	switch c {
	case '(':
		return lex.charToken(token.PAREN_L, c)
	case ')':
		return lex.charToken(token.PAREN_R, c)
	case '[':
		return lex.charToken(token.BRACKET_L, c)
	case ']':
		return lex.charToken(token.BRACKET_R, c)
	case '{':
		return lex.charToken(token.BRACE_L, c)
	case '}':
		return lex.charToken(token.BRACE_R, c)
	case ';':
		return lex.charToken(token.COMMENT, c)
	case '#':
		return lex.charToken(token.HASH, c)
	case '\'':
		return lex.charToken(token.QUOTE, c)
	case '"':
		return lex.scanString(start)
	case '\n':
		return lex.charToken(token.NEWLINE, c)
	case '|':
		return lex.scanPiped(token.SYMBOL_PIPED, start)
	default:
		if unicode.IsSpace(c) {
			return lex.charToken(token.WHITESPACE, c)
		}
		if isDigit(c) {
			return lex.scanAtom(token.NUMBER, c)
		}
		if c == ':' {
			if next, ok := lex.peek(); ok && next == '|' {
				if _, err := lex.read(); err != nil {
					return lex.fatalf(start, "error reading stream: %v", err)
				}
				return lex.scanPiped(token.KEYWORD_PIPED, start)
			}
			return lex.scanAtom(token.KEYWORD, c)
		}
		return lex.scanAtom(token.SYMBOL, c)
	}
}

// ReadAll scans the remainder of the stream and returns the tokens read.  If
// scanning fails the tokens read before the failure are returned along with
// the error.
func (lex *Lexer) ReadAll() ([]*token.Token, error) {
	var toks []*token.Token
	for {
		tok, err := lex.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// scanString scans the remainder of a string literal, the opening quote
// having been consumed already.  The emitted token holds the unescaped string
// content and the location of the terminating quote.
func (lex *Lexer) scanString(start token.Location) (*token.Token, error) {
	var buf strings.Builder
	for {
		c, err := lex.read()
		if err == io.EOF {
			return lex.fatalf(start, "unterminated string literal")
		}
		if err != nil {
			return lex.fatalf(start, "error reading stream: %v", err)
		}
		switch c {
		case '"':
			return lex.emit(token.STRING, buf.String())
		case '\\':
			c, err := lex.read()
			if err == io.EOF {
				return lex.fatalf(start, "unterminated string literal")
			}
			if err != nil {
				return lex.fatalf(start, "error reading stream: %v", err)
			}
			if c != '\\' && c != '"' {
				return lex.fatalf(start, "invalid escape sequence \\%c in string literal", c)
			}
			buf.WriteRune(c)
		default:
			buf.WriteRune(c)
		}
	}
}

// scanPiped scans a name quoted between vertical bars, the opening bar
// having been consumed already.  Content is accumulated raw, with no escape
// interpretation.  The typ is SYMBOL_PIPED or KEYWORD_PIPED.
func (lex *Lexer) scanPiped(typ token.Type, start token.Location) (*token.Token, error) {
	what := "symbol"
	if typ == token.KEYWORD_PIPED {
		what = "keyword"
	}
	var buf strings.Builder
	for {
		c, err := lex.read()
		if err == io.EOF {
			return lex.fatalf(start, "unterminated piped %s", what)
		}
		if err != nil {
			return lex.fatalf(start, "error reading stream: %v", err)
		}
		if c == '|' {
			return lex.emit(typ, buf.String())
		}
		buf.WriteRune(c)
	}
}

// scanAtom scans a bare symbol, keyword, or number starting with first.  The
// atom terminates at whitespace, a delimiter rune, or the end of the stream.
func (lex *Lexer) scanAtom(typ token.Type, first rune) (*token.Token, error) {
	var buf strings.Builder
	buf.WriteRune(first)
	for {
		c, ok := lex.peek()
		if !ok || unicode.IsSpace(c) || strings.ContainsRune(delimiterRunes, c) {
			return lex.emit(typ, buf.String())
		}
		_, err := lex.read()
		if err != nil {
			return lex.emit(typ, buf.String())
		}
		buf.WriteRune(c)
	}
}

func (lex *Lexer) charToken(typ token.Type, c rune) (*token.Token, error) {
	return lex.emit(typ, string(c))
}

// emit returns a token completed at the location of the last rune read.
func (lex *Lexer) emit(typ token.Type, text string) (*token.Token, error) {
	loc := lex.loc
	return &token.Token{
		Type:   typ,
		Text:   text,
		Source: &loc,
	}, nil
}

func (lex *Lexer) fatalf(start token.Location, format string, v ...interface{}) (*token.Token, error) {
	lex.err = &ScanError{
		Source: &start,
		Msg:    fmt.Sprintf(format, v...),
	}
	return nil, lex.err
}

// read consumes one rune and advances the location bookkeeping.  The rune's
// own location is left in lex.loc.
func (lex *Lexer) read() (rune, error) {
	c, _, err := lex.r.ReadRune()
	if err != nil {
		return 0, err
	}
	lex.loc = lex.nextLoc
	lex.nextLoc.Pos++
	if c == '\n' {
		lex.nextLoc.Line++
		lex.nextLoc.Col = lex.firstCol
	} else {
		lex.nextLoc.Col++
	}
	return c, nil
}

func (lex *Lexer) peek() (rune, bool) {
	c, _, err := lex.r.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = lex.r.UnreadRune()
	return c, true
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
