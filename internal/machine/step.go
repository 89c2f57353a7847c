package machine

import (
	"fmt"

	cerrors "github.com/pleiad/castcic/internal/errors"
	"github.com/pleiad/castcic/internal/ident"
	"github.com/pleiad/castcic/internal/subst"
	"github.com/pleiad/castcic/internal/typeutil"
	"github.com/pleiad/castcic/internal/value"
)

// Machine bundles the two pieces of configuration the single-step
// relation needs beyond the state itself: which GCIC variant governs
// universe-level arithmetic, and how to resolve a Const reference. Both
// are read-only for the lifetime of a reduction.
type Machine struct {
	Levels   typeutil.Levels
	Resolver ConstResolver
}

// Step performs exactly one CEK transition. It never panics on
// ill-formed input that the rules don't recognize: that case returns a
// MCH001 stuck error. A terminal state (value, KHole) steps to itself,
// per the value-stability invariant.
func (m Machine) Step(s State) (State, error) {
	c, e, k := s.Control, s.Env, s.K

	// Terminal: nothing left to do.
	if _, hole := k.(KHole); hole && typeutil.IsValue(c) {
		return s, nil
	}

	// 1. Delta.
	if v, ok := c.(*value.Var); ok {
		bound, found := e.Lookup(v.ID)
		if !found {
			return State{}, cerrors.Wrap(cerrors.New(cerrors.MCH002,
				"free identifier in Delta rule: "+v.ID.String(),
				map[string]any{"identifier": v.ID.String()}))
		}
		return State{Control: bound, Env: e, K: k}, nil
	}

	// Const resolution. A global declaration is resolved externally
	// rather than through a redex rule, but it behaves exactly like
	// Delta against a different table, so it shares Delta's priority
	// and its free-identifier error code.
	if cn, ok := c.(*value.Const); ok {
		if m.Resolver == nil {
			return State{}, cerrors.Wrap(cerrors.New(cerrors.MCH002,
				"unresolved const with no resolver configured: "+cn.ID.String(),
				map[string]any{"identifier": cn.ID.String()}))
		}
		bound, found := m.Resolver.Resolve(cn.ID)
		if !found {
			return State{}, cerrors.Wrap(cerrors.New(cerrors.MCH002,
				"unresolved global declaration: "+cn.ID.String(),
				map[string]any{"identifier": cn.ID.String()}))
		}
		return State{Control: bound, Env: e, K: k}, nil
	}

	// 2. Beta.
	if kr, ok := k.(KAppR); ok && typeutil.IsValue(c) {
		return State{Control: kr.FI.Body, Env: kr.Env.Add(kr.FI.ID, c), K: kr.K}, nil
	}

	// 3. Prod-Unk.
	if u, ok := c.(*value.VUnknown); ok {
		if vp, ok := u.V.(*value.VProd); ok {
			return State{
				Control: &value.VLambda{
					FunInfo: value.FunInfo{ID: vp.ID, Dom: vp.Dom, Body: &value.Unknown{T: vp.Body}},
					Env:     vp.Env,
				},
				Env: e, K: k,
			}, nil
		}
	}

	// 4. Prod-Err.
	if er, ok := c.(*value.VErr); ok {
		if vp, ok := er.V.(*value.VProd); ok {
			return State{
				Control: &value.VLambda{
					FunInfo: value.FunInfo{ID: vp.ID, Dom: vp.Dom, Body: &value.Err{T: vp.Body}},
					Env:     vp.Env,
				},
				Env: e, K: k,
			}, nil
		}
	}

	// 5. Down-Unk.
	if outer, ok := c.(*value.VUnknown); ok {
		if inner, ok := outer.V.(*value.VUnknown); ok {
			if _, ok := inner.V.(*value.Universe); ok {
				if kt, ok := k.(KCastTerm); ok {
					if srcU, ok := kt.Source.(*value.VUnknown); ok {
						if _, ok := srcU.V.(*value.Universe); ok {
							return State{Control: &value.VUnknown{V: kt.Target}, Env: e, K: kt.K}, nil
						}
					}
				}
			}
		}
	}

	// 6. Down-Err, symmetric with Err.
	if outer, ok := c.(*value.VErr); ok {
		if inner, ok := outer.V.(*value.VErr); ok {
			if _, ok := inner.V.(*value.Universe); ok {
				if kt, ok := k.(KCastTerm); ok {
					if srcE, ok := kt.Source.(*value.VErr); ok {
						if _, ok := srcE.V.(*value.Universe); ok {
							return State{Control: &value.VErr{V: kt.Target}, Env: e, K: kt.K}, nil
						}
					}
				}
			}
		}
	}

	if kt, ok := k.(KCastTerm); ok && typeutil.IsValue(c) {
		// 7. Prod-Prod.
		if f, ok := c.(*value.VLambda); ok {
			if srcP, ok := kt.Source.(*value.VProd); ok {
				if tgtP, ok := kt.Target.(*value.VProd); ok {
					return State{Control: m.expandProdProd(f, srcP, tgtP), Env: e, K: kt.K}, nil
				}
			}
		}

		// 8. Univ-Univ.
		if srcU, ok := kt.Source.(*value.Universe); ok {
			if tgtU, ok := kt.Target.(*value.Universe); ok && srcU.Level == tgtU.Level {
				return State{Control: c, Env: e, K: kt.K}, nil
			}
		}

		// 9. Head-Err. A VErr(Universe) germ is not itself a type head
		// (IsType only recognizes VProd/Universe), so this never
		// shadows rule 10 below.
		srcHead, srcIsType := typeutil.HeadOf(kt.Source)
		tgtHead, tgtIsType := typeutil.HeadOf(kt.Target)
		if srcIsType && tgtIsType && srcHead != tgtHead {
			return State{Control: &value.VErr{V: kt.Target}, Env: e, K: kt.K}, nil
		}

		// 10. Dom-Err / Codom-Err.
		if isErrUniverse(kt.Source) || isErrUniverse(kt.Target) {
			return State{Control: &value.VErr{V: kt.Target}, Env: e, K: kt.K}, nil
		}

		// Target = ?_i is the only shape rules 11-14 and the canonical
		// injection congruence rule care about.
		if tgtU, ok := kt.Target.(*value.VUnknown); ok {
			if tgtLevel, ok := universeLevel(tgtU.V); ok {
				// 11. Prod-Germ, guarded by 14. Size-Err (Prod): an
				// oversized germ also satisfies IsGermForGTELevel, so the
				// size check comes first.
				if srcP, ok := kt.Source.(*value.VProd); ok {
					if m.sizeErrProd(srcP, tgtLevel) {
						return State{Control: &value.VErr{V: kt.Target}, Env: e, K: kt.K}, nil
					}
					if !m.Levels.IsGermForGTELevel(tgtLevel, srcP) {
						middle := m.Levels.Germ(tgtLevel, typeutil.ProdHead())
						return State{
							Control: c, Env: e,
							K: KCastTerm{Source: kt.Source, Target: middle, Env: kt.Env,
								K: KCastTerm{Source: middle, Target: kt.Target, Env: kt.Env, K: kt.K}},
						}, nil
					}
				}

				// 12. Up-Down.
				if vc, ok := c.(*value.VCast); ok {
					if vcTgtU, ok := vc.Target.(*value.VUnknown); ok {
						if vcLevel, ok := universeLevel(vcTgtU.V); ok && vcLevel == tgtLevel {
							if m.Levels.IsGerm(tgtLevel, vc.Source) {
								return State{
									Control: &value.Cast{Source: vc.Source, Target: kt.Target, Term: vc.Term},
									Env:     e, K: kt.K,
								}, nil
							}
						}
					}
				}

				// 13. Size-Err (Universe).
				if srcUn, ok := kt.Source.(*value.Universe); ok && srcUn.Level >= tgtLevel {
					return State{Control: &value.VErr{V: kt.Target}, Env: e, K: kt.K}, nil
				}

				// Canonical injection into ?_i.
				if m.Levels.IsGerm(tgtLevel, kt.Source) {
					return State{
						Control: &value.VCast{Source: kt.Source, Target: kt.Target, Term: c},
						Env:     e, K: kt.K,
					}, nil
				}
			}
		}
	}

	// Congruence rules.
	if kl, ok := k.(KLambda); ok && typeutil.IsValue(c) {
		return State{
			Control: &value.VLambda{FunInfo: value.FunInfo{ID: kl.ID, Dom: c, Body: kl.Body}, Env: e},
			Env:     e, K: kl.K,
		}, nil
	}
	if kp, ok := k.(KProd); ok && typeutil.IsValue(c) {
		return State{
			Control: &value.VProd{FunInfo: value.FunInfo{ID: kp.ID, Dom: c, Body: kp.Body}, Env: e},
			Env:     e, K: kp.K,
		}, nil
	}
	if kal, ok := k.(KAppL); ok {
		if f, ok := c.(*value.VLambda); ok {
			return State{Control: kal.Arg, Env: e, K: KAppR{FI: f.FunInfo, Env: f.Env, K: kal.K}}, nil
		}
	}
	if ku, ok := k.(KUnknown); ok && typeutil.IsValue(c) {
		return State{Control: &value.VUnknown{V: c}, Env: e, K: ku.K}, nil
	}
	if ke, ok := k.(KErr); ok && typeutil.IsValue(c) {
		return State{Control: &value.VErr{V: c}, Env: e, K: ke.K}, nil
	}
	if kct, ok := k.(KCastTarget); ok && typeutil.IsValue(c) {
		return State{Control: kct.Source, Env: e, K: KCastSource{Target: c, Term: kct.Term, Env: e, K: kct.K}}, nil
	}
	if kcs, ok := k.(KCastSource); ok && typeutil.IsValue(c) {
		return State{Control: kcs.Term, Env: e, K: KCastTerm{Source: c, Target: kcs.Target, Env: e, K: kcs.K}}, nil
	}

	// Descent rules.
	switch n := c.(type) {
	case *value.App:
		return State{Control: n.Fun, Env: e, K: KAppL{Arg: n.Arg, Env: e, K: k}}, nil
	case *value.Lambda:
		return State{Control: n.Dom, Env: e, K: KLambda{ID: n.ID, Body: n.Body, Env: e, K: k}}, nil
	case *value.Prod:
		return State{Control: n.Dom, Env: e, K: KProd{ID: n.ID, Body: n.Body, Env: e, K: k}}, nil
	case *value.Unknown:
		return State{Control: n.T, Env: e, K: KUnknown{Env: e, K: k}}, nil
	case *value.Err:
		return State{Control: n.T, Env: e, K: KErr{Env: e, K: k}}, nil
	case *value.Cast:
		return State{Control: n.Target, Env: e, K: KCastTarget{Source: n.Source, Term: n.Term, Env: e, K: k}}, nil
	}

	return State{}, cerrors.Wrap(cerrors.New(cerrors.MCH001,
		fmt.Sprintf("stuck: control %s does not match continuation %T", c.String(), k),
		map[string]any{"control": c.String(), "continuation": fmt.Sprintf("%T", k)}))
}

// expandProdProd casts a lambda value between two product types: the
// Prod-Prod rule.
func (m Machine) expandProdProd(f *value.VLambda, src, tgt *value.VProd) value.Value {
	y := ident.Fresh(f.ID.Name())
	yVar := &value.Var{ID: y}

	innerArgCast := &value.Cast{Source: tgt.Dom, Target: f.Dom, Term: yVar}
	bodyPrime := subst.Subst(f.Env.Add(f.ID, innerArgCast), f.Body)

	srcCodomCast := &value.Cast{Source: tgt.Dom, Target: src.Dom, Term: yVar}
	srcCodomPrime := subst.Subst(src.Env.Add(src.ID, srcCodomCast), src.Body)

	tgtCodomPrime := subst.Subst(tgt.Env.Add(tgt.ID, yVar), tgt.Body)

	body := &value.Cast{Source: srcCodomPrime, Target: tgtCodomPrime, Term: bodyPrime}

	return &value.VLambda{
		FunInfo: value.FunInfo{ID: y, Dom: tgt.Dom, Body: body},
		Env:     f.Env,
	}
}

// sizeErrProd implements Size-Err (Prod): a VProd whose domain is ?_▢k
// with k > CastUniverseLevel(i) is too large to land in ?_i, so the cast
// fails. This covers a germ built at a level above i; only the domain is
// inspected, so any other product with such a domain fails the same way.
// Reports false when the domain is not ?_▢k or k is small enough, leaving
// the cast to Prod-Germ or canonical injection.
func (m Machine) sizeErrProd(src *value.VProd, i int) bool {
	k, ok := domUnknownLevel(src)
	if !ok {
		return false
	}
	return k > m.Levels.CastUniverseLevel(i)
}

func domUnknownLevel(vp *value.VProd) (int, bool) {
	u, ok := vp.Dom.(*value.VUnknown)
	if !ok {
		return 0, false
	}
	return universeLevel(u.V)
}

func universeLevel(v value.Value) (int, bool) {
	u, ok := v.(*value.Universe)
	if !ok {
		return 0, false
	}
	return u.Level, true
}

func isErrUniverse(v value.Value) bool {
	e, ok := v.(*value.VErr)
	if !ok {
		return false
	}
	_, ok = e.V.(*value.Universe)
	return ok
}
