// Package term defines the source-form term grammar of CastCIC: the
// gradual Cast Calculus of Inductive Constructions. These are the terms
// an elaboration pass upstream hands to the reduction core, and the
// terms the reifier hands back.
//
// There is deliberately no source-location tracking here (see the
// project's non-goals) — a Term carries only what the reduction rules
// need to inspect.
package term

import (
	"strconv"

	"github.com/pleiad/castcic/internal/ident"
)

// Term is the base interface for every CastCIC source-term shape.
type Term interface {
	String() string
	termNode()
}

// Var is a variable occurrence.
type Var struct {
	ID ident.Ident
}

func (*Var) termNode()     {}
func (v *Var) String() string { return v.ID.String() }

// Universe is the universe at level I.
type Universe struct {
	Level int
}

func (*Universe) termNode() {}
func (u *Universe) String() string { return "▢" + strconv.Itoa(u.Level) }

// App is function application.
type App struct {
	Fun Term
	Arg Term
}

func (*App) termNode() {}
func (a *App) String() string { return "(" + a.Fun.String() + " " + a.Arg.String() + ")" }

// FunInfo bundles the identifier, domain, and body shared by Lambda and
// Prod (and by their tagged-value counterparts in package value).
type FunInfo struct {
	ID   ident.Ident
	Dom  Term
	Body Term
}

// Lambda is a function abstraction with an explicit domain annotation.
type Lambda struct {
	FunInfo
}

func (*Lambda) termNode() {}
func (l *Lambda) String() string {
	return "fun " + l.ID.String() + " : " + l.Dom.String() + ". " + l.Body.String()
}

// Prod is a dependent product type.
type Prod struct {
	FunInfo
}

func (*Prod) termNode() {}
func (p *Prod) String() string {
	return "Π " + p.ID.String() + " : " + p.Dom.String() + ". " + p.Body.String()
}

// Unknown is the canonical unknown inhabitant of type T.
type Unknown struct {
	T Term
}

func (*Unknown) termNode() {}
func (u *Unknown) String() string { return "?_" + u.T.String() }

// Err is the error inhabitant of type T.
type Err struct {
	T Term
}

func (*Err) termNode() {}
func (e *Err) String() string { return "err_" + e.T.String() }

// Cast is an explicit cast of Term : Source to Target.
type Cast struct {
	Source Term
	Target Term
	Term   Term
}

func (*Cast) termNode() {}
func (c *Cast) String() string {
	return "⟨" + c.Target.String() + " ⇐ " + c.Source.String() + "⟩ " + c.Term.String()
}

// Const is a reference to a global declaration, resolved externally by
// elaboration. The core treats the backing table read-only (see
// internal/machine.ConstResolver).
type Const struct {
	ID ident.Ident
}

func (*Const) termNode() {}
func (c *Const) String() string { return c.ID.String() }

