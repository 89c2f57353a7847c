package typeutil

import (
	"github.com/pleiad/castcic/internal/ident"
	"github.com/pleiad/castcic/internal/value"
)

// HeadKind names the head constructor family of a canonical type value.
type HeadKind int

const (
	// KProd is the head of any VProd.
	KProd HeadKind = iota
	// KUniverse is the head of any Universe(k), carrying its level.
	KUniverse
)

// Head is a head constructor: HProd carries no data, HUniverse(k) carries
// the level it was extracted from (needed to build the right germ).
type Head struct {
	Kind  HeadKind
	Level int // meaningful only when Kind == KUniverse
}

// ProdHead is the head constructor of every product type.
func ProdHead() Head { return Head{Kind: KProd} }

// UniverseHead is the head constructor of Universe(k).
func UniverseHead(k int) Head { return Head{Kind: KUniverse, Level: k} }

// HeadOf extracts the head constructor of a canonical type value. Returns
// ok=false for anything that is not a type (see IsType).
func HeadOf(v value.Value) (Head, bool) {
	switch n := v.(type) {
	case *value.VProd:
		return ProdHead(), true
	case *value.Universe:
		return UniverseHead(n.Level), true
	default:
		return Head{}, false
	}
}

// SameKind reports whether two heads belong to the same constructor
// family, ignoring the universe level. The Head-Err rule compares whole
// heads instead, so two universes of different levels count as distinct
// heads there.
func SameKind(a, b Head) bool {
	return a.Kind == b.Kind
}

// Germ returns the least-precise type at level i with head constructor h:
//
//	Germ(i, HProd)        = Prod{_ : ?_{CastUniverseLevel(i)}, ?_{CastUniverseLevel(i)}}
//	Germ(i, HUniverse(k)) = Universe(k)        if k < i
//	Germ(i, HUniverse(k)) = Err(Universe(i))   otherwise
func (l Levels) Germ(i int, h Head) value.Value {
	switch h.Kind {
	case KProd:
		k := l.CastUniverseLevel(i)
		unk := &value.VUnknown{V: &value.Universe{Level: k}}
		return &value.VProd{FunInfo: value.FunInfo{ID: ident.Default, Dom: unk, Body: unk}}
	case KUniverse:
		if h.Level < i {
			return &value.Universe{Level: h.Level}
		}
		return &value.VErr{V: &value.Universe{Level: i}}
	}
	panic("typeutil.Germ: unknown head kind")
}

// IsGerm reports whether t is exactly Germ(i, h) for some head h.
func (l Levels) IsGerm(i int, t value.Value) bool {
	if l.isProdGermAtLevel(i, t) {
		return true
	}
	if u, ok := t.(*value.Universe); ok && u.Level < i {
		return true
	}
	if e, ok := t.(*value.VErr); ok {
		if u, ok := e.V.(*value.Universe); ok && u.Level == i {
			return true
		}
	}
	return false
}

// IsGermForGTELevel reports whether t is Germ(j, HProd) for some level
// j >= i — the test the Prod-Germ rule needs, since a cast's
// declared ?_i is not necessarily the level the germ was built at.
func (l Levels) IsGermForGTELevel(i int, t value.Value) bool {
	vp, ok := t.(*value.VProd)
	if !ok {
		return false
	}
	dom, ok := vp.Dom.(*value.VUnknown)
	if !ok {
		return false
	}
	k, ok := dom.V.(*value.Universe)
	if !ok {
		return false
	}
	switch l.Variant {
	case N:
		j := k.Level - 1
		return j >= i && l.isProdGermAtLevel(j, t)
	case S:
		// CastUniverseLevel is the constant 0: once the domain is ?_0,
		// t is a germ at every level, including every level >= i.
		return k.Level == 0 && l.isProdGermAtLevel(i, t)
	default: // G
		j := k.Level
		return j >= i && l.isProdGermAtLevel(j, t)
	}
}

func (l Levels) isProdGermAtLevel(level int, t value.Value) bool {
	vp, ok := t.(*value.VProd)
	if !ok {
		return false
	}
	want := l.Germ(level, ProdHead()).(*value.VProd)
	return sameUnknownUniverse(vp.Dom, want.Dom) && sameUnknownUniverse(vp.Body, want.Body)
}

func sameUnknownUniverse(a, b value.Value) bool {
	ua, ok := a.(*value.VUnknown)
	if !ok {
		return false
	}
	ub, ok := b.(*value.VUnknown)
	if !ok {
		return false
	}
	la, ok := ua.V.(*value.Universe)
	if !ok {
		return false
	}
	lb, ok := ub.V.(*value.Universe)
	if !ok {
		return false
	}
	return la.Level == lb.Level
}
