package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolEqual(t *testing.T) {
	a := NewSymbol("a")
	assert.True(t, a.Equal(NewSymbol("a")))
	assert.False(t, a.Equal(NewSymbol("b")))

	ns := NewSymbol("ns")
	qa := Qualified(ns, "a")
	assert.False(t, a.Equal(qa))
	assert.True(t, qa.Equal(Qualified(NewSymbol("ns"), "a")))
	assert.False(t, qa.Equal(Qualified(NewSymbol("other"), "a")))

	// Identity ignores the piped flag.
	piped := NewSymbol("a")
	piped.Piped = true
	assert.True(t, a.Equal(piped))
}

func TestSymbolChain(t *testing.T) {
	inner := Qualified(NewSymbol("a"), "b")
	sym := Qualified(inner, "c")
	assert.Equal(t, "a/b/c", sym.FullName())
	assert.True(t, sym.IsQualified())
	assert.False(t, NewSymbol("c").IsQualified())

	other := Qualified(Qualified(NewSymbol("a"), "b"), "c")
	assert.True(t, sym.Equal(other))
	assert.False(t, sym.Equal(Qualified(Qualified(NewSymbol("x"), "b"), "c")))
}

func TestKeywordEqual(t *testing.T) {
	k := NewKeyword("k")
	assert.True(t, k.Equal(NewKeyword("k")))
	assert.False(t, k.Equal(NewKeyword("j")))
	assert.Equal(t, ":k", k.String())

	qk := QualifiedKeyword(NewSymbol("ns"), "k")
	assert.False(t, k.Equal(qk))
	assert.Equal(t, ":ns/k", qk.String())

	piped := NewKeyword("k")
	piped.Piped = true
	assert.True(t, k.Equal(piped))
}

func TestNewMap(t *testing.T) {
	m, err := NewMap(NewKeyword("a"), 1)
	assert.NoError(t, err)
	assert.Len(t, m.Cells, 2)

	_, err = NewMap(NewKeyword("a"))
	assert.Error(t, err)
}

func TestQuote(t *testing.T) {
	q := Quote(NewSymbol("x"))
	assert.Len(t, q.Cells, 2)
	sym, ok := q.Cells[0].(*Symbol)
	assert.True(t, ok)
	assert.Equal(t, "quote", sym.Name)
}
