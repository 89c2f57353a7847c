// Package subst implements capture-avoiding substitution over the
// tagged-value AST: subst(env, v) replaces every free occurrence of each
// identifier in dom(env) by its bound value.
package subst

import (
	"github.com/pleiad/castcic/internal/ident"
	"github.com/pleiad/castcic/internal/value"
)

// Subst produces v with every free occurrence of each identifier bound in
// env replaced by env's binding for it. Binders (Lambda, Prod, VLambda,
// VProd) are alpha-renamed to a fresh identifier before recursing, so the
// result never captures a variable that was free in one of env's values.
//
// VLambda and VProd lose their closure tag in the result (becoming plain
// Lambda/Prod): their captured environment's bindings may themselves be
// unreduced, so it is folded into the substitution being pushed through
// rather than carried along opaquely. The machine re-tags them the next
// time it reduces their (now substituted) domain to a value.
func Subst(env *value.Environment, v value.Value) value.Value {
	switch n := v.(type) {
	case *value.Var:
		if bound, ok := env.Lookup(n.ID); ok {
			return bound
		}
		return n

	case *value.Universe:
		return n

	case *value.Const:
		return n

	case *value.App:
		return &value.App{Fun: Subst(env, n.Fun), Arg: Subst(env, n.Arg)}

	case *value.Unknown:
		return &value.Unknown{T: Subst(env, n.T)}

	case *value.Err:
		return &value.Err{T: Subst(env, n.T)}

	case *value.Cast:
		return &value.Cast{
			Source: Subst(env, n.Source),
			Target: Subst(env, n.Target),
			Term:   Subst(env, n.Term),
		}

	case *value.VUnknown:
		return &value.VUnknown{V: Subst(env, n.V)}

	case *value.VErr:
		return &value.VErr{V: Subst(env, n.V)}

	case *value.VCast:
		return &value.VCast{
			Source: Subst(env, n.Source),
			Target: Subst(env, n.Target),
			Term:   Subst(env, n.Term),
		}

	case *value.Lambda:
		return &value.Lambda{FunInfo: substBinder(env, n.FunInfo, nil)}

	case *value.Prod:
		return &value.Prod{FunInfo: substBinder(env, n.FunInfo, nil)}

	case *value.VLambda:
		return &value.Lambda{FunInfo: substBinder(env, n.FunInfo, n.Env)}

	case *value.VProd:
		return &value.Prod{FunInfo: substBinder(env, n.FunInfo, n.Env)}

	default:
		panic("subst.Subst: unhandled value shape")
	}
}

// substBinder alpha-renames fi.ID to a fresh identifier y, then
// substitutes fi.Dom and fi.Body under an environment built from
// closureEnv (the binder's own captured bindings, outermost and so
// shadowed by everything after them) overlaid with env (the substitution being pushed through) and finally the
// old-id-to-y renaming.
func substBinder(env *value.Environment, fi value.FunInfo, closureEnv *value.Environment) value.FunInfo {
	y := ident.Fresh(fi.ID.Name())

	merged := closureEnv
	for _, b := range env.Bindings() {
		merged = merged.Add(b.Key, b.Val)
	}
	merged = merged.Add(fi.ID, &value.Var{ID: y})

	return value.FunInfo{
		ID:   y,
		Dom:  Subst(merged, fi.Dom),
		Body: Subst(merged, fi.Body),
	}
}
