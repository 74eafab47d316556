package printer

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxlang/oxlang/lisp"
)

func sprint(t *testing.T, v lisp.Value) string {
	t.Helper()
	s, err := Default.Sprint(v)
	require.NoError(t, err)
	return s
}

func TestAtoms(t *testing.T) {
	assert.Equal(t, "nil", sprint(t, nil))
	assert.Equal(t, "true", sprint(t, true))
	assert.Equal(t, "42", sprint(t, 42))
	assert.Equal(t, "2.5", sprint(t, 2.5))
	assert.Equal(t, "foo", sprint(t, lisp.NewSymbol("foo")))
	assert.Equal(t, ":k", sprint(t, lisp.NewKeyword("k")))
}

func TestStringEscapes(t *testing.T) {
	assert.Equal(t, `"a\"b\\c"`, sprint(t, `a"b\c`))
	assert.Equal(t, `""`, sprint(t, ""))
}

func TestPipedSymbols(t *testing.T) {
	sym := lisp.NewSymbol("has space")
	sym.Piped = true
	assert.Equal(t, "|has space|", sprint(t, sym))

	qualified := lisp.Qualified(lisp.NewSymbol("ns"), "odd name")
	qualified.Piped = true
	assert.Equal(t, "ns/|odd name|", sprint(t, qualified))

	kw := lisp.NewKeyword("k w")
	kw.Piped = true
	assert.Equal(t, ":|k w|", sprint(t, kw))
}

func TestContainers(t *testing.T) {
	list := lisp.NewList(lisp.NewSymbol("f"), 1, "s")
	assert.Equal(t, `(f 1 "s")`, sprint(t, list))
	assert.Equal(t, "()", sprint(t, lisp.NewList()))

	vec := lisp.NewVector(1, 2)
	assert.Equal(t, "[1 2]", sprint(t, vec))

	m, err := lisp.NewMap(lisp.NewKeyword("a"), 1)
	require.NoError(t, err)
	assert.Equal(t, "{:a 1}", sprint(t, m))

	set := lisp.NewSet(lisp.NewSymbol("x"))
	assert.Equal(t, "#{x}", sprint(t, set))

	nested := lisp.NewList(lisp.NewSymbol("f"), lisp.NewVector(lisp.NewList()))
	assert.Equal(t, "(f [()])", sprint(t, nested))
}

type temperature float64

func TestExtend(t *testing.T) {
	p := Default.Extend(temperature(0), func(w io.Writer, _ *Printer, v lisp.Value) error {
		_, err := fmt.Fprintf(w, "%.1fC", float64(v.(temperature)))
		return err
	})
	s, err := p.Sprint(temperature(21.5))
	require.NoError(t, err)
	assert.Equal(t, "21.5C", s)

	// The shared default table is unaffected.
	s, err = Default.Sprint(temperature(21.5))
	require.NoError(t, err)
	assert.Equal(t, "21.5", s)
}

func TestFallback(t *testing.T) {
	type opaque struct{ X int }
	s, err := Default.Sprint(opaque{X: 1})
	require.NoError(t, err)
	assert.Equal(t, "{1}", s)
}
