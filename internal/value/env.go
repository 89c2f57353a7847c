package value

import "github.com/pleiad/castcic/internal/ident"

// Environment is a finite, persistent mapping from identifier to tagged
// value: a child-of-parent binding chain keyed by nominal Ident rather
// than string. Lookup must use Ident.Equal, never string comparison, or
// alpha-renaming during substitution silently breaks (see internal/subst).
//
// Add never mutates an existing Environment — it returns a new one that
// shadows the receiver. This is shadowing by extension: two closures can
// share a parent Environment safely because neither can see the other's
// extension.
type Environment struct {
	key    ident.Ident
	val    Value
	parent *Environment
}

// Empty is the environment with no bindings.
var Empty *Environment

// Add returns an environment that binds k to v, shadowing any existing
// binding for k in e.
func (e *Environment) Add(k ident.Ident, v Value) *Environment {
	return &Environment{key: k, val: v, parent: e}
}

// Lookup returns the value bound to k, following shadowing (closest
// binding wins), or ok=false if k is unbound.
func (e *Environment) Lookup(k ident.Ident) (Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.key.Equal(k) {
			return cur.val, true
		}
	}
	return nil, false
}

// Remove returns an environment with every binding of k removed. Because
// the representation is a chain, this is an O(depth) rebuild of every
// retained frame, not a true splice — semantically
// indistinguishable to callers, since Lookup only ever sees the result.
func (e *Environment) Remove(k ident.Ident) *Environment {
	if e == nil {
		return nil
	}
	rest := e.parent.Remove(k)
	if e.key.Equal(k) {
		return rest
	}
	return rest.Add(e.key, e.val)
}

// Binding is one entry of an Environment's association-list view.
type Binding struct {
	Key ident.Ident
	Val Value
}

// Bindings returns the environment as an association list, outermost
// (oldest, most shadowed) binding first — the inverse of FromBindings.
func (e *Environment) Bindings() []Binding {
	if e == nil {
		return nil
	}
	return append(e.parent.Bindings(), Binding{Key: e.key, Val: e.val})
}

// FromBindings rebuilds an Environment from an association list, in the
// order given (first entry becomes the outermost, i.e. most shadowed).
func FromBindings(bindings []Binding) *Environment {
	var e *Environment
	for _, b := range bindings {
		e = e.Add(b.Key, b.Val)
	}
	return e
}
