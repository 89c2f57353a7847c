// Package value defines the tagged-value AST: the machine-internal
// superset of term.Term in which Lambda and Prod can be "tagged" with
// the environment they close over. Tagging happens the moment a
// function's domain finishes reducing (the Abs-Lambda / Abs-Prod
// congruence rules in internal/machine); everything else travels as the
// same shape it had in source form until it becomes a value.
//
// Value and Environment are mutually recursive (a closure holds an
// Environment, an Environment's bindings are Values) and so, as the
// design notes call out, live in one package to keep that cycle direct
// rather than routed through an interface boundary.
package value

import (
	"strconv"

	"github.com/pleiad/castcic/internal/ident"
)

// Value is the base interface for every tagged-value shape.
type Value interface {
	String() string
	valueNode()
}

// FunInfo bundles the bound identifier, domain, and body of a Lambda,
// Prod, VLambda, or VProd.
type FunInfo struct {
	ID   ident.Ident
	Dom  Value
	Body Value
}

// Var is an unresolved variable occurrence. Resolved by the Delta rule.
type Var struct{ ID ident.Ident }

func (*Var) valueNode()       {}
func (v *Var) String() string { return v.ID.String() }

// Universe is the universe at level I. A value in its own right.
type Universe struct{ Level int }

func (*Universe) valueNode()       {}
func (u *Universe) String() string { return "▢" + strconv.Itoa(u.Level) }

// App is function application, present during traversal before it
// reduces via Beta.
type App struct {
	Fun Value
	Arg Value
}

func (*App) valueNode()       {}
func (a *App) String() string { return "(" + a.Fun.String() + " " + a.Arg.String() + ")" }

// Lambda is an as-yet-untagged function abstraction: its domain has not
// finished reducing, or it has just been substituted and must be
// re-tagged once re-reduced (see the capture-avoidance note on VLambda
// below).
type Lambda struct{ FunInfo }

func (*Lambda) valueNode() {}
func (l *Lambda) String() string {
	return "fun " + l.ID.String() + " : " + l.Dom.String() + ". " + l.Body.String()
}

// Prod is an as-yet-untagged dependent product type.
type Prod struct{ FunInfo }

func (*Prod) valueNode() {}
func (p *Prod) String() string {
	return "Π " + p.ID.String() + " : " + p.Dom.String() + ". " + p.Body.String()
}

// Unknown is the raw (untagged) unknown-at-T term, present before its
// annotation T finishes reducing to a value.
type Unknown struct{ T Value }

func (*Unknown) valueNode()       {}
func (u *Unknown) String() string { return "?_" + u.T.String() }

// Err is the raw (untagged) error-at-T term.
type Err struct{ T Value }

func (*Err) valueNode()       {}
func (e *Err) String() string { return "err_" + e.T.String() }

// Cast is a cast expression before its three components (target, source,
// term — evaluated in that order) finish reducing.
type Cast struct {
	Source Value
	Target Value
	Term   Value
}

func (*Cast) valueNode() {}
func (c *Cast) String() string {
	return "⟨" + c.Target.String() + " ⇐ " + c.Source.String() + "⟩ " + c.Term.String()
}

// Const is an unresolved reference to a global declaration.
type Const struct{ ID ident.Ident }

func (*Const) valueNode()       {}
func (c *Const) String() string { return c.ID.String() }

// VLambda is a function value: a Lambda whose domain has reduced to a
// value, tagged with the environment captured at that point.
//
// VLambda (and VProd) are untagged back to plain Lambda/Prod during
// substitution, because the closed-over Env may itself contain
// not-yet-reduced terms that substitution must still visit; they
// re-acquire closure status the next time the machine reduces them.
type VLambda struct {
	FunInfo
	Env *Environment
}

func (*VLambda) valueNode()       {}
func (v *VLambda) String() string { return (&Lambda{v.FunInfo}).String() }

// VProd is a product-type value, tagged with its captured environment.
type VProd struct {
	FunInfo
	Env *Environment
}

func (*VProd) valueNode()       {}
func (v *VProd) String() string { return (&Prod{v.FunInfo}).String() }

// VUnknown is the canonical unknown value at type V.
type VUnknown struct{ V Value }

func (*VUnknown) valueNode()       {}
func (u *VUnknown) String() string { return "?_" + u.V.String() }

// VErr is the canonical error value at type V.
type VErr struct{ V Value }

func (*VErr) valueNode()       {}
func (e *VErr) String() string { return "err_" + e.V.String() }

// VCast is a canonical cast value: the result of injecting a term into
// ?, kept around so Up-Down can later cancel a round trip through it.
type VCast struct {
	Source Value
	Target Value
	Term   Value
}

func (*VCast) valueNode() {}
func (c *VCast) String() string {
	return "⟨" + c.Target.String() + " ⇐ " + c.Source.String() + "⟩ " + c.Term.String()
}
