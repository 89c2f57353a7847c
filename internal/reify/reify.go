// Package reify turns machine-internal tagged values and continuations
// back into plain source terms, so a single step of reduction can be
// reported to a human (or a test) as a term rather than as an opaque
// closure graph.
package reify

import (
	"github.com/pleiad/castcic/internal/machine"
	"github.com/pleiad/castcic/internal/term"
	"github.com/pleiad/castcic/internal/value"
)

// OfVterm strips every V* tag from v, discarding captured environments:
// VLambda/VProd become the open Lambda/Prod term they wrap, and
// VUnknown/VErr/VCast become their untagged Unknown/Err/Cast
// counterparts.
func OfVterm(v value.Value) term.Term {
	switch n := v.(type) {
	case *value.Var:
		return &term.Var{ID: n.ID}
	case *value.Universe:
		return &term.Universe{Level: n.Level}
	case *value.Const:
		return &term.Const{ID: n.ID}
	case *value.App:
		return &term.App{Fun: OfVterm(n.Fun), Arg: OfVterm(n.Arg)}
	case *value.Lambda:
		return &term.Lambda{FunInfo: term.FunInfo{ID: n.ID, Dom: OfVterm(n.Dom), Body: OfVterm(n.Body)}}
	case *value.Prod:
		return &term.Prod{FunInfo: term.FunInfo{ID: n.ID, Dom: OfVterm(n.Dom), Body: OfVterm(n.Body)}}
	case *value.VLambda:
		return &term.Lambda{FunInfo: term.FunInfo{ID: n.ID, Dom: OfVterm(n.Dom), Body: OfVterm(n.Body)}}
	case *value.VProd:
		return &term.Prod{FunInfo: term.FunInfo{ID: n.ID, Dom: OfVterm(n.Dom), Body: OfVterm(n.Body)}}
	case *value.Unknown:
		return &term.Unknown{T: OfVterm(n.T)}
	case *value.VUnknown:
		return &term.Unknown{T: OfVterm(n.V)}
	case *value.Err:
		return &term.Err{T: OfVterm(n.T)}
	case *value.VErr:
		return &term.Err{T: OfVterm(n.V)}
	case *value.Cast:
		return &term.Cast{Source: OfVterm(n.Source), Target: OfVterm(n.Target), Term: OfVterm(n.Term)}
	case *value.VCast:
		return &term.Cast{Source: OfVterm(n.Source), Target: OfVterm(n.Target), Term: OfVterm(n.Term)}
	default:
		panic("reify.OfVterm: unhandled value shape")
	}
}

// FillHole reconstructs a full source term from a focused control value
// and the continuation around it: each frame of k is applied, innermost
// first, as the surface constructor it represents, with its held
// sub-terms reified the same way.
func FillHole(c value.Value, k machine.Kont) term.Term {
	hole := OfVterm(c)
	for {
		switch n := k.(type) {
		case machine.KHole:
			return hole
		case machine.KAppL:
			hole = &term.App{Fun: hole, Arg: OfVterm(n.Arg)}
			k = n.K
		case machine.KAppR:
			hole = &term.App{Fun: &term.Lambda{FunInfo: term.FunInfo{ID: n.FI.ID, Dom: OfVterm(n.FI.Dom), Body: OfVterm(n.FI.Body)}}, Arg: hole}
			k = n.K
		case machine.KLambda:
			hole = &term.Lambda{FunInfo: term.FunInfo{ID: n.ID, Dom: hole, Body: OfVterm(n.Body)}}
			k = n.K
		case machine.KProd:
			hole = &term.Prod{FunInfo: term.FunInfo{ID: n.ID, Dom: hole, Body: OfVterm(n.Body)}}
			k = n.K
		case machine.KUnknown:
			hole = &term.Unknown{T: hole}
			k = n.K
		case machine.KErr:
			hole = &term.Err{T: hole}
			k = n.K
		case machine.KCastTarget:
			hole = &term.Cast{Source: OfVterm(n.Source), Target: hole, Term: OfVterm(n.Term)}
			k = n.K
		case machine.KCastSource:
			hole = &term.Cast{Source: hole, Target: OfVterm(n.Target), Term: OfVterm(n.Term)}
			k = n.K
		case machine.KCastTerm:
			hole = &term.Cast{Source: OfVterm(n.Source), Target: OfVterm(n.Target), Term: hole}
			k = n.K
		default:
			panic("reify.FillHole: unhandled continuation shape")
		}
	}
}
