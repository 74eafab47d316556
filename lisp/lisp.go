// Package lisp defines the core values produced by the oxlang front end.
// Numbers and strings are represented with native Go types; the types in
// this package cover names and the containers built by the reader.
package lisp

import (
	"fmt"

	"github.com/oxlang/oxlang/parser/token"
)

// Value is any value handled by the front end.
type Value = interface{}

// Symbol is a name with an optional parent namespace, which may itself be
// namespaced, forming a chain.  Piped records whether the original syntax
// used vertical-bar quoting; it affects printing only, never identity.
type Symbol struct {
	NS    *Symbol
	Name  string
	Piped bool

	Source *token.Location
}

// NewSymbol returns an unqualified symbol.
func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

// Qualified returns a symbol named within the namespace ns.
func Qualified(ns *Symbol, name string) *Symbol {
	return &Symbol{NS: ns, Name: name}
}

// IsQualified returns true if s has an explicit namespace.
func (s *Symbol) IsQualified() bool {
	return s.NS != nil
}

// FullName returns the symbol's namespace chain and name joined with '/'.
func (s *Symbol) FullName() string {
	if s.NS == nil {
		return s.Name
	}
	return s.NS.FullName() + "/" + s.Name
}

// Equal reports whether s and o name the same thing.  Identity is the
// namespace chain plus the name; the Piped flag is ignored.
func (s *Symbol) Equal(o *Symbol) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Name != o.Name {
		return false
	}
	if s.NS == nil || o.NS == nil {
		return s.NS == o.NS
	}
	return s.NS.Equal(o.NS)
}

func (s *Symbol) String() string {
	return s.FullName()
}

// Keyword is a self-naming value.  Like Symbol it carries a namespace chain
// and a piped flag, and its identity ignores the flag.
type Keyword struct {
	NS    *Symbol
	Name  string
	Piped bool

	Source *token.Location
}

// NewKeyword returns an unqualified keyword.
func NewKeyword(name string) *Keyword {
	return &Keyword{Name: name}
}

// QualifiedKeyword returns a keyword named within the namespace ns.
func QualifiedKeyword(ns *Symbol, name string) *Keyword {
	return &Keyword{NS: ns, Name: name}
}

func (k *Keyword) IsQualified() bool {
	return k.NS != nil
}

func (k *Keyword) FullName() string {
	if k.NS == nil {
		return k.Name
	}
	return k.NS.FullName() + "/" + k.Name
}

func (k *Keyword) Equal(o *Keyword) bool {
	if k == nil || o == nil {
		return k == o
	}
	if k.Name != o.Name {
		return false
	}
	if k.NS == nil || o.NS == nil {
		return k.NS == o.NS
	}
	return k.NS.Equal(o.NS)
}

func (k *Keyword) String() string {
	return ":" + k.FullName()
}

// List is the cons expression container built by the reader.
type List struct {
	Cells  []Value
	Source *token.Location
}

// NewList returns a list holding cells.
func NewList(cells ...Value) *List {
	return &List{Cells: cells}
}

// Vector is the square-bracket container built by the reader.
type Vector struct {
	Cells  []Value
	Source *token.Location
}

func NewVector(cells ...Value) *Vector {
	return &Vector{Cells: cells}
}

// Map holds key-value pairs in source order.  Cells alternates keys and
// values and always has even length.
type Map struct {
	Cells  []Value
	Source *token.Location
}

func NewMap(cells ...Value) (*Map, error) {
	if len(cells)%2 != 0 {
		return nil, fmt.Errorf("map literal requires an even number of forms")
	}
	return &Map{Cells: cells}, nil
}

// Set is the hash-brace container built by the reader.  Element uniqueness
// is not enforced at read time.
type Set struct {
	Cells  []Value
	Source *token.Location
}

func NewSet(cells ...Value) *Set {
	return &Set{Cells: cells}
}

// Quote wraps v in a (quote v) form.
func Quote(v Value) *List {
	return NewList(NewSymbol("quote"), v)
}
