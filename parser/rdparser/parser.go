// Package rdparser builds structured forms from the scanner's token stream.
// It owns no scoping semantics; symbols it produces are resolved later
// against an environ.Environ.
package rdparser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oxlang/oxlang/lisp"
	"github.com/oxlang/oxlang/parser/lexer"
	"github.com/oxlang/oxlang/parser/token"
)

// ParseError is a fatal reader error located at the offending token.
type ParseError struct {
	Source *token.Location
	Msg    string

	// Incomplete marks errors caused by the stream ending mid-form, which
	// an interactive caller can repair by supplying more input.
	Incomplete bool
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", err.Source, err.Msg)
}

// IsIncomplete reports whether err indicates the source ended in the middle
// of a form.  A REPL uses this to decide whether to prompt for a
// continuation line instead of reporting an error.
func IsIncomplete(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Incomplete
}

// Read scans and parses every form in r.  The name is the opaque stream
// identifier used in locations and errors.
func Read(name string, r io.Reader) ([]lisp.Value, error) {
	return New(lexer.New(name, r)).ParseProgram()
}

// ReadString is a convenience wrapper around Read for in-memory source.
func ReadString(name, src string) ([]lisp.Value, error) {
	return Read(name, strings.NewReader(src))
}

// Parser is a recursive-descent reader over a token stream.
type Parser struct {
	lex     *lexer.Lexer
	curr    *token.Token
	peek    *token.Token
	peekErr error
}

// New initializes and returns a new Parser reading tokens from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	// Load the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.readToken()
	return p
}

// ParseProgram parses forms until the token stream is exhausted.
func (p *Parser) ParseProgram() ([]lisp.Value, error) {
	var forms []lisp.Value
	for {
		p.skipIgnored()
		if p.peek == nil {
			if p.peekErr == io.EOF {
				return forms, nil
			}
			return forms, p.peekErr
		}
		form, err := p.ParseExpression()
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
}

// ParseExpression parses a single form.
func (p *Parser) ParseExpression() (lisp.Value, error) {
	p.skipIgnored()
	if p.peek == nil {
		if p.peekErr == io.EOF {
			return nil, p.incompletef(p.lastLoc(), "unexpected end of stream")
		}
		return nil, p.peekErr
	}
	switch p.peek.Type {
	case token.STRING:
		p.readToken()
		return p.curr.Text, nil
	case token.NUMBER:
		p.readToken()
		return p.parseNumber(p.curr)
	case token.SYMBOL:
		p.readToken()
		return p.parseSymbol(p.curr), nil
	case token.SYMBOL_PIPED:
		p.readToken()
		sym := lisp.NewSymbol(p.curr.Text)
		sym.Piped = true
		sym.Source = p.curr.Source
		return sym, nil
	case token.KEYWORD:
		p.readToken()
		return p.parseKeyword(p.curr)
	case token.KEYWORD_PIPED:
		p.readToken()
		kw := lisp.NewKeyword(p.curr.Text)
		kw.Piped = true
		kw.Source = p.curr.Source
		return kw, nil
	case token.QUOTE:
		p.readToken()
		form, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		return lisp.Quote(form), nil
	case token.HASH:
		return p.parseDispatch()
	case token.PAREN_L:
		p.readToken()
		open := p.curr
		cells, err := p.parseCells(open, token.PAREN_R)
		if err != nil {
			return nil, err
		}
		return &lisp.List{Cells: cells, Source: open.Source}, nil
	case token.BRACKET_L:
		p.readToken()
		open := p.curr
		cells, err := p.parseCells(open, token.BRACKET_R)
		if err != nil {
			return nil, err
		}
		return &lisp.Vector{Cells: cells, Source: open.Source}, nil
	case token.BRACE_L:
		return p.parseMap()
	default:
		p.readToken()
		return nil, p.errorf(p.curr.Source, "unexpected %s", p.curr.Type)
	}
}

func (p *Parser) parseNumber(tok *token.Token) (lisp.Value, error) {
	if x, err := strconv.Atoi(tok.Text); err == nil {
		return x, nil
	}
	if x, err := strconv.ParseFloat(tok.Text, 64); err == nil {
		return x, nil
	}
	return nil, p.errorf(tok.Source, "invalid number literal: %s", tok.Text)
}

// parseSymbol splits the token text on '/' into a namespace chain.  Text
// without a usable qualifier (including "/" itself) names a bare symbol.
func (p *Parser) parseSymbol(tok *token.Token) *lisp.Symbol {
	ns, name := splitName(tok.Text)
	sym := lisp.Qualified(ns, name)
	sym.Source = tok.Source
	return sym
}

func (p *Parser) parseKeyword(tok *token.Token) (lisp.Value, error) {
	text := strings.TrimPrefix(tok.Text, ":")
	if text == "" {
		return nil, p.errorf(tok.Source, "invalid keyword: %s", tok.Text)
	}
	ns, name := splitName(text)
	kw := lisp.QualifiedKeyword(ns, name)
	kw.Source = tok.Source
	return kw, nil
}

// parseDispatch handles the hash marker.  The only dispatch form read is the
// set literal #{...}; the brace must immediately follow the hash.
func (p *Parser) parseDispatch() (lisp.Value, error) {
	p.readToken()
	hash := p.curr
	if p.peek == nil || p.peek.Type != token.BRACE_L {
		return nil, p.errorf(hash.Source, "invalid dispatch macro")
	}
	p.readToken()
	cells, err := p.parseCells(p.curr, token.BRACE_R)
	if err != nil {
		return nil, err
	}
	return &lisp.Set{Cells: cells, Source: hash.Source}, nil
}

func (p *Parser) parseMap() (lisp.Value, error) {
	p.readToken()
	open := p.curr
	cells, err := p.parseCells(open, token.BRACE_R)
	if err != nil {
		return nil, err
	}
	if len(cells)%2 != 0 {
		return nil, p.errorf(open.Source, "map literal requires an even number of forms")
	}
	return &lisp.Map{Cells: cells, Source: open.Source}, nil
}

// parseCells parses forms until the closing delimiter closeType.
func (p *Parser) parseCells(open *token.Token, closeType token.Type) ([]lisp.Value, error) {
	var cells []lisp.Value
	for {
		p.skipIgnored()
		if p.peek == nil {
			if p.peekErr == io.EOF {
				return nil, p.incompletef(open.Source, "unmatched %s", open.Text)
			}
			return nil, p.peekErr
		}
		if p.peek.Type == closeType {
			p.readToken()
			return cells, nil
		}
		cell, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
}

// skipIgnored advances past whitespace and comments.  A comment marker
// consumes the remainder of its line.
func (p *Parser) skipIgnored() {
	for p.peek != nil {
		switch p.peek.Type {
		case token.WHITESPACE, token.NEWLINE:
			p.readToken()
		case token.COMMENT:
			p.readToken()
			for p.peek != nil && p.peek.Type != token.NEWLINE {
				p.readToken()
			}
		default:
			return
		}
	}
}

func (p *Parser) readToken() {
	p.curr = p.peek
	p.peek, p.peekErr = p.lex.Next()
}

func (p *Parser) lastLoc() *token.Location {
	if p.curr != nil {
		return p.curr.Source
	}
	return nil
}

func (p *Parser) errorf(loc *token.Location, format string, v ...interface{}) error {
	return &ParseError{Source: loc, Msg: fmt.Sprintf(format, v...)}
}

func (p *Parser) incompletef(loc *token.Location, format string, v ...interface{}) error {
	return &ParseError{Source: loc, Msg: fmt.Sprintf(format, v...), Incomplete: true}
}

func splitName(text string) (*lisp.Symbol, string) {
	parts := strings.Split(text, "/")
	if len(parts) == 1 {
		return nil, text
	}
	for _, part := range parts {
		if part == "" {
			return nil, text
		}
	}
	ns := lisp.NewSymbol(parts[0])
	for _, part := range parts[1 : len(parts)-1] {
		ns = lisp.Qualified(ns, part)
	}
	return ns, parts[len(parts)-1]
}
