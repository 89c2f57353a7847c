package value

import "github.com/pleiad/castcic/internal/term"

// FromTerm lifts a source term into the tagged-value AST. Every source
// shape maps onto its untagged value counterpart; Lambda and Prod start
// life untagged and only become VLambda/VProd once the machine reduces
// their domain to a value.
func FromTerm(t term.Term) Value {
	switch n := t.(type) {
	case *term.Var:
		return &Var{ID: n.ID}
	case *term.Universe:
		return &Universe{Level: n.Level}
	case *term.App:
		return &App{Fun: FromTerm(n.Fun), Arg: FromTerm(n.Arg)}
	case *term.Lambda:
		return &Lambda{FunInfo{ID: n.ID, Dom: FromTerm(n.Dom), Body: FromTerm(n.Body)}}
	case *term.Prod:
		return &Prod{FunInfo{ID: n.ID, Dom: FromTerm(n.Dom), Body: FromTerm(n.Body)}}
	case *term.Unknown:
		return &Unknown{T: FromTerm(n.T)}
	case *term.Err:
		return &Err{T: FromTerm(n.T)}
	case *term.Cast:
		return &Cast{Source: FromTerm(n.Source), Target: FromTerm(n.Target), Term: FromTerm(n.Term)}
	case *term.Const:
		return &Const{ID: n.ID}
	default:
		panic("value.FromTerm: unhandled term shape")
	}
}
