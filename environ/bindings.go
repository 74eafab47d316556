package environ

import (
	"github.com/oxlang/oxlang/lisp"
)

type bindingPair struct {
	sym   *lisp.Symbol
	value lisp.Value
}

// Bindings is an insertion-ordered set of symbol bindings used to populate a
// local or dynamic frame.  A Bindings must not be modified after it has been
// pushed onto an environment; the frame holds it by reference.
type Bindings struct {
	pairs []bindingPair
	index map[string]int
}

// NewBindings creates and initializes a new set of bindings with initial
// capacity to hold n values.
func NewBindings(n int) *Bindings {
	return &Bindings{
		pairs: make([]bindingPair, 0, n),
		index: make(map[string]int, n),
	}
}

// Len returns the number of symbols bound.
func (b *Bindings) Len() int {
	return len(b.pairs)
}

// Put binds sym to v.  If sym was previously bound its entry is updated,
// otherwise a new binding is appended.
func (b *Bindings) Put(sym *lisp.Symbol, v lisp.Value) {
	key := sym.FullName()
	if i, ok := b.index[key]; ok {
		b.pairs[i].value = v
		return
	}
	b.index[key] = len(b.pairs)
	b.pairs = append(b.pairs, bindingPair{sym, v})
}

// Get returns the value bound to sym.
func (b *Bindings) Get(sym *lisp.Symbol) (lisp.Value, bool) {
	return b.get(sym.FullName())
}

func (b *Bindings) get(key string) (lisp.Value, bool) {
	i, ok := b.index[key]
	if !ok {
		return nil, false
	}
	return b.pairs[i].value, true
}

// Symbols returns the bound symbols in insertion order.
func (b *Bindings) Symbols() []*lisp.Symbol {
	syms := make([]*lisp.Symbol, 0, len(b.pairs))
	for i := range b.pairs {
		syms = append(syms, b.pairs[i].sym)
	}
	return syms
}
