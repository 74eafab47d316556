// Package printer renders front-end values back to textual syntax.  Dispatch
// is by a type-indexed formatter registry with a generic fallback, so
// callers can extend printing to their own value types without touching the
// core.
package printer

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/oxlang/oxlang/lisp"
)

// Formatter renders a single value of the type it was registered under.
type Formatter func(w io.Writer, p *Printer, v lisp.Value) error

// Printer holds an immutable type-to-formatter table.  The zero Printer is
// not usable; construct one with New or derive one with Extend.
type Printer struct {
	formatters map[reflect.Type]Formatter
}

// Default is the shared base printer.  It is constructed once at startup and
// never mutated; use Extend to derive a printer with additional formatters.
var Default = New()

// New returns a Printer with formatters for all values produced by the
// scanner, reader, and environment.
func New() *Printer {
	p := &Printer{formatters: make(map[reflect.Type]Formatter)}
	p.register(&lisp.Symbol{}, formatSymbol)
	p.register(&lisp.Keyword{}, formatKeyword)
	p.register("", formatString)
	p.register(int(0), formatInt)
	p.register(float64(0), formatFloat)
	p.register(false, formatBool)
	p.register(&lisp.List{}, formatList)
	p.register(&lisp.Vector{}, formatVector)
	p.register(&lisp.Map{}, formatMap)
	p.register(&lisp.Set{}, formatSet)
	return p
}

func (p *Printer) register(sample lisp.Value, f Formatter) {
	p.formatters[reflect.TypeOf(sample)] = f
}

// Extend returns a copy of p with a formatter registered for sample's type.
// The receiver is never modified, so extending Default is safe.
func (p *Printer) Extend(sample lisp.Value, f Formatter) *Printer {
	cp := &Printer{formatters: make(map[reflect.Type]Formatter, len(p.formatters)+1)}
	for typ, fmtr := range p.formatters {
		cp.formatters[typ] = fmtr
	}
	cp.register(sample, f)
	return cp
}

// Fprint writes the textual form of v to w.  Unregistered types fall back to
// fmt's generic rendering.
func (p *Printer) Fprint(w io.Writer, v lisp.Value) error {
	if v == nil {
		_, err := io.WriteString(w, "nil")
		return err
	}
	if f, ok := p.formatters[reflect.TypeOf(v)]; ok {
		return f(w, p, v)
	}
	_, err := fmt.Fprintf(w, "%v", v)
	return err
}

// Sprint returns the textual form of v.
func (p *Printer) Sprint(v lisp.Value) (string, error) {
	var buf strings.Builder
	err := p.Fprint(&buf, v)
	return buf.String(), err
}

func formatSymbol(w io.Writer, _ *Printer, v lisp.Value) error {
	_, err := io.WriteString(w, symbolText(v.(*lisp.Symbol)))
	return err
}

func formatKeyword(w io.Writer, _ *Printer, v lisp.Value) error {
	k := v.(*lisp.Keyword)
	text := nameText(k.Name, k.Piped)
	if k.NS != nil {
		text = symbolText(k.NS) + "/" + text
	}
	_, err := io.WriteString(w, ":"+text)
	return err
}

// symbolText renders a symbol's namespace chain, restoring pipe quoting
// anywhere the original syntax used it.
func symbolText(s *lisp.Symbol) string {
	text := nameText(s.Name, s.Piped)
	if s.NS != nil {
		return symbolText(s.NS) + "/" + text
	}
	return text
}

func nameText(name string, piped bool) string {
	if piped {
		return "|" + name + "|"
	}
	return name
}

func formatString(w io.Writer, _ *Printer, v lisp.Value) error {
	s := v.(string)
	var buf strings.Builder
	buf.WriteByte('"')
	for _, c := range s {
		if c == '"' || c == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteRune(c)
	}
	buf.WriteByte('"')
	_, err := io.WriteString(w, buf.String())
	return err
}

func formatInt(w io.Writer, _ *Printer, v lisp.Value) error {
	_, err := io.WriteString(w, strconv.Itoa(v.(int)))
	return err
}

func formatFloat(w io.Writer, _ *Printer, v lisp.Value) error {
	_, err := io.WriteString(w, strconv.FormatFloat(v.(float64), 'g', -1, 64))
	return err
}

func formatBool(w io.Writer, _ *Printer, v lisp.Value) error {
	_, err := io.WriteString(w, strconv.FormatBool(v.(bool)))
	return err
}

func formatList(w io.Writer, p *Printer, v lisp.Value) error {
	return p.fprintCells(w, "(", ")", v.(*lisp.List).Cells)
}

func formatVector(w io.Writer, p *Printer, v lisp.Value) error {
	return p.fprintCells(w, "[", "]", v.(*lisp.Vector).Cells)
}

func formatMap(w io.Writer, p *Printer, v lisp.Value) error {
	return p.fprintCells(w, "{", "}", v.(*lisp.Map).Cells)
}

func formatSet(w io.Writer, p *Printer, v lisp.Value) error {
	return p.fprintCells(w, "#{", "}", v.(*lisp.Set).Cells)
}

func (p *Printer) fprintCells(w io.Writer, open, close string, cells []lisp.Value) error {
	if _, err := io.WriteString(w, open); err != nil {
		return err
	}
	for i, cell := range cells {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := p.Fprint(w, cell); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, close)
	return err
}
