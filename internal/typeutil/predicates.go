package typeutil

import (
	"github.com/pleiad/castcic/internal/term"
	"github.com/pleiad/castcic/internal/value"
)

// IsType reports whether v is a canonical type: a product value or a
// universe. Nothing else classifies as a type in CastCIC.
func IsType(v value.Value) bool {
	switch v.(type) {
	case *value.VProd, *value.Universe:
		return true
	default:
		return false
	}
}

// IsValue reports whether v is in normal form: nothing in the machine
// would rewrite it further. Universe, VLambda, VProd, VCast are always
// values. VUnknown/VErr are values UNLESS their payload is a VProd, in
// which case Prod-Unk/Prod-Err still have to eta-expand them into a
// lambda before they are truly stuck.
func IsValue(v value.Value) bool {
	switch n := v.(type) {
	case *value.Universe, *value.VLambda, *value.VCast, *value.VProd:
		return true
	case *value.VUnknown:
		_, isProd := n.V.(*value.VProd)
		return !isProd
	case *value.VErr:
		_, isProd := n.V.(*value.VProd)
		return !isProd
	default:
		return false
	}
}

// IsNeutral reports whether t is an application stuck on an unresolved
// variable head (x, (x y), ((x y) z), ...).
func IsNeutral(t value.Value) bool {
	switch n := t.(type) {
	case *value.Var:
		return true
	case *value.App:
		return IsNeutral(n.Fun)
	default:
		return false
	}
}

// IsCanonical mirrors IsValue over source terms, for callers inspecting
// a term before it ever enters the machine.
func IsCanonical(t term.Term) bool {
	switch n := t.(type) {
	case *term.Universe, *term.Lambda, *term.Prod:
		return true
	case *term.Unknown:
		_, isProd := n.T.(*term.Prod)
		return !isProd
	case *term.Err:
		_, isProd := n.T.(*term.Prod)
		return !isProd
	default:
		return false
	}
}
