// Package ident provides the opaque identifier type shared by the term
// AST, the tagged-value AST, and the CEK machine's environments and
// continuations.
//
// An identifier minted by Fresh is equal only to itself: its equality is
// nominal, never by comparing the display string. Identifiers built by New
// carry no uniqueness tag, so two of them with the same name compare
// equal. Nominal equality of fresh names is what makes capture-avoiding substitution (see
// internal/subst) work — alpha-renaming a bound variable means handing
// out a new Ident with a fresh counter value, and nothing else can ever
// collide with it for the lifetime of the process.
package ident

import (
	"sort"
	"sync/atomic"

	"golang.org/x/text/unicode/norm"
)

// counter is the process-wide fresh-identifier source. It is never reset
// during a reduction; concurrent reductions may safely share it because
// increments are atomic.
var counter uint64

// Ident is an opaque identifier: a display name plus a uniqueness tag.
// The zero value has an empty name and is not equal to Default.
type Ident struct {
	name string
	tag  uint64
}

// Default is the sentinel identifier used where a binder has no
// meaningful name (e.g. a placeholder before a fresh name is minted).
var Default = Ident{name: "_", tag: 0}

// New creates an identifier from a string with tag 0. Two calls to New
// with the same string produce Idents that compare equal: use this only
// for identifiers whose identity is the source name itself (there are
// none in a well-formed CastCIC term — every binder goes through Fresh
// during substitution), or for tests that want a stable, reproducible
// name.
func New(name string) Ident {
	return Ident{name: normalize(name), tag: 0}
}

// Fresh mints a globally unique identifier whose display name is based on
// base (or "x" if base is empty). The counter guarantees the result is
// distinct from every other identifier ever minted by this process,
// regardless of how many reductions run concurrently.
func Fresh(base string) Ident {
	if base == "" {
		base = "x"
	}
	n := atomic.AddUint64(&counter, 1)
	return Ident{name: normalize(base), tag: n}
}

// normalize applies the same boundary normalization the lexer applies to
// source bytes: strip a leading BOM (identifiers built from captured
// source text can carry one) and fold to NFC so that visually identical
// names never print as different strings across fresh-name generation.
func normalize(s string) string {
	if len(s) >= 3 && s[0] == 0xEF && s[1] == 0xBB && s[2] == 0xBF {
		s = s[3:] // UTF-8 byte order mark
	}
	b := []byte(s)
	if !norm.NFC.IsNormal(b) {
		b = norm.NFC.Bytes(b)
	}
	return string(b)
}

// Name returns the display name. Two distinct identifiers may share a
// display name — only Equal decides identity.
func (i Ident) Name() string { return i.name }

// Equal reports nominal equality: same tag and same name. Fresh
// identifiers therefore match only themselves; tag-0 identifiers from New
// match by name.
func (i Ident) Equal(o Ident) bool {
	return i.tag == o.tag && i.name == o.name
}

// Less gives Ident a total order (by tag, then name), so identifiers can
// be used as sorted map keys wherever deterministic output matters (e.g.
// printing an Environment).
func (i Ident) Less(o Ident) bool {
	if i.tag != o.tag {
		return i.tag < o.tag
	}
	return i.name < o.name
}

// String renders the identifier for diagnostics. Fresh identifiers with a
// nonzero tag get a numeric suffix so shadowed/renamed copies stay
// visually distinguishable in CEK traces.
func (i Ident) String() string {
	if i.tag == 0 {
		return i.name
	}
	return i.name + "$" + itoa(i.tag)
}

func itoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// SortIdents sorts a slice of identifiers in place using Less.
func SortIdents(ids []Ident) {
	sort.Slice(ids, func(a, b int) bool { return ids[a].Less(ids[b]) })
}
