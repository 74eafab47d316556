// Package environ implements the persistent, namespace-aware symbol table
// for the oxlang front end.  An Environ is an immutable value; every
// operation that changes bindings returns a new Environ sharing structure
// with its predecessor, so old values remain valid and independently usable.
package environ

import (
	"fmt"

	"github.com/oxlang/oxlang/lisp"
)

// DefaultNamespace is the namespace bound to a freshly constructed Environ.
const DefaultNamespace = "user"

// Metadata carries binding attributes supplied at intern time.
type Metadata struct {
	// Dynamic permits the binding to be rebound with PushDynamics.
	Dynamic bool
}

// UnresolvedError is returned by GetValue when a symbol cannot be resolved
// under the current scope chain.
type UnresolvedError struct {
	Symbol *lisp.Symbol
}

func (err *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved symbol: %s", err.Symbol.FullName())
}

// NotDynamicError is returned by PushDynamics when a symbol was never
// interned with the dynamic flag.
type NotDynamicError struct {
	Symbol *lisp.Symbol
}

func (err *NotDynamicError) Error() string {
	return fmt.Sprintf("symbol not declared dynamic: %s", err.Symbol.FullName())
}

// globalEntry is one interned binding in the persistent global table.  The
// table is an association list; Intern prepends and lookup takes the newest
// matching entry, so re-interning shadows the prior entry without mutation.
type globalEntry struct {
	ns      string
	name    string
	value   lisp.Value
	dynamic bool
	next    *globalEntry
}

// frame is one layer in a persistent stack of binding frames.
type frame struct {
	bindings *Bindings
	next     *frame
}

func (f *frame) get(key string) (lisp.Value, bool) {
	for ; f != nil; f = f.next {
		if v, ok := f.bindings.get(key); ok {
			return v, true
		}
	}
	return nil, false
}

// Environ is a persistent symbol-resolution environment: a current
// namespace, a namespace-indexed table of interned globals, a stack of
// lexical local frames, and a stack of dynamic rebinding frames.
type Environ struct {
	ns       *lisp.Symbol
	globals  *globalEntry
	locals   *frame
	dynamics *frame
}

// New returns an empty environment in the default namespace.
func New() *Environ {
	return &Environ{ns: lisp.NewSymbol(DefaultNamespace)}
}

// Namespace returns the environment's current namespace.
func (env *Environ) Namespace() *lisp.Symbol {
	return env.ns
}

// InNamespace returns an environment identical to env but with the current
// namespace set to ns.  Existing bindings in all namespaces are retained.
func (env *Environ) InNamespace(ns *lisp.Symbol) *Environ {
	cp := *env
	cp.ns = ns
	return &cp
}

// Intern binds sym to v.  An unqualified symbol is bound in the current
// namespace; a qualified symbol is bound in the namespace it names.
func (env *Environ) Intern(sym *lisp.Symbol, v lisp.Value) *Environ {
	return env.InternMeta(sym, v, Metadata{})
}

// InternMeta binds sym to v with the given metadata.  Re-interning an
// existing symbol shadows its prior value and dynamic flag.  Local and
// dynamic frames already in scope are unaffected.
func (env *Environ) InternMeta(sym *lisp.Symbol, v lisp.Value, meta Metadata) *Environ {
	cp := *env
	cp.globals = &globalEntry{
		ns:      env.targetNS(sym),
		name:    sym.Name,
		value:   v,
		dynamic: meta.Dynamic,
		next:    env.globals,
	}
	return &cp
}

// RefKind classifies where a symbol reference resolved.
type RefKind int

const (
	RefLocal RefKind = iota
	RefDynamic
	RefGlobal
)

func (k RefKind) String() string {
	switch k {
	case RefLocal:
		return "local"
	case RefDynamic:
		return "dynamic"
	case RefGlobal:
		return "global"
	default:
		return "invalid"
	}
}

// Ref references a resolved binding.
type Ref struct {
	Kind  RefKind
	Value lisp.Value
}

// Resolve reports whether sym is resolvable under the current scope chain.
// Resolution order: local frames innermost-first for unqualified symbols,
// then dynamic frames innermost-first for the fully-qualified form, then the
// newest interned global.  Qualification always bypasses the local frames.
func (env *Environ) Resolve(sym *lisp.Symbol) (*Ref, bool) {
	if !sym.IsQualified() {
		if v, ok := env.locals.get(sym.Name); ok {
			return &Ref{Kind: RefLocal, Value: v}, true
		}
	}
	ns := env.targetNS(sym)
	if v, ok := env.dynamics.get(ns + "/" + sym.Name); ok {
		return &Ref{Kind: RefDynamic, Value: v}, true
	}
	if e := env.lookupGlobal(ns, sym.Name); e != nil {
		return &Ref{Kind: RefGlobal, Value: e.value}, true
	}
	return nil, false
}

// GetValue fetches the value sym resolves to, or an *UnresolvedError.
func (env *Environ) GetValue(sym *lisp.Symbol) (lisp.Value, error) {
	ref, ok := env.Resolve(sym)
	if !ok {
		return nil, &UnresolvedError{Symbol: sym}
	}
	return ref.Value, nil
}

// PushLocals pushes one lexical frame holding the given bindings.  The frame
// shadows same-named globals for unqualified lookups only.  Qualified
// symbols cannot be bound locally.
func (env *Environ) PushLocals(bindings *Bindings) (*Environ, error) {
	for _, sym := range bindings.Symbols() {
		if sym.IsQualified() {
			return nil, fmt.Errorf("local binding for qualified symbol: %s", sym.FullName())
		}
	}
	cp := *env
	cp.locals = &frame{bindings: bindings, next: env.locals}
	return &cp, nil
}

// PushDynamics pushes one dynamic rebinding frame.  Every bound symbol must
// have been interned with the dynamic flag; otherwise PushDynamics fails
// with a *NotDynamicError and env is unchanged.  Unqualified symbols are
// qualified against the current namespace before binding, so the frame
// affects lookups of the same global regardless of qualification at the
// reference site.
func (env *Environ) PushDynamics(bindings *Bindings) (*Environ, error) {
	qualified := NewBindings(bindings.Len())
	for _, sym := range bindings.Symbols() {
		ns := env.targetNS(sym)
		e := env.lookupGlobal(ns, sym.Name)
		if e == nil || !e.dynamic {
			return nil, &NotDynamicError{Symbol: sym}
		}
		v, _ := bindings.Get(sym)
		qsym := sym
		if !sym.IsQualified() {
			qsym = lisp.Qualified(env.ns, sym.Name)
		}
		qualified.Put(qsym, v)
	}
	cp := *env
	cp.dynamics = &frame{bindings: qualified, next: env.dynamics}
	return &cp, nil
}

// Dynamic reports whether sym's global intern declared it dynamic,
// irrespective of any currently pushed frames.
func (env *Environ) Dynamic(sym *lisp.Symbol) bool {
	e := env.lookupGlobal(env.targetNS(sym), sym.Name)
	return e != nil && e.dynamic
}

// lookupGlobal returns the newest interned entry for ns/name.
func (env *Environ) lookupGlobal(ns, name string) *globalEntry {
	for e := env.globals; e != nil; e = e.next {
		if e.name == name && e.ns == ns {
			return e
		}
	}
	return nil
}

// targetNS returns the namespace a reference to sym addresses: the explicit
// namespace when sym is qualified, else the current namespace.
func (env *Environ) targetNS(sym *lisp.Symbol) string {
	if sym.IsQualified() {
		return sym.NS.FullName()
	}
	return env.ns.FullName()
}
