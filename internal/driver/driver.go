// Package driver wires the CEK machine to the term AST: it lifts a
// source term into machine state, drives the single-step relation to a
// normal form under a fuel budget, and reifies the result (or an
// in-flight intermediate state) back into a term the caller can read.
//
// It is kept separate from internal/machine so that internal/reify can
// import internal/machine (to reify a machine.Kont) without a cycle:
// machine knows nothing about terms or reification, driver knows about
// both.
package driver

import (
	cerrors "github.com/pleiad/castcic/internal/errors"
	"github.com/pleiad/castcic/internal/machine"
	"github.com/pleiad/castcic/internal/reify"
	"github.com/pleiad/castcic/internal/term"
	"github.com/pleiad/castcic/internal/typeutil"
	"github.com/pleiad/castcic/internal/value"
)

// DefaultFuel is the step budget reduce_in uses when the caller doesn't
// specify one.
const DefaultFuel = 10000

// initialState lifts t into machine state under env.
func initialState(env *value.Environment, t term.Term) machine.State {
	return machine.State{Control: value.FromTerm(t), Env: env, K: machine.KHole{}}
}

// isTerminal reports whether s needs no further stepping.
func isTerminal(s machine.State) bool {
	return machine.IsTerminal(s, typeutil.IsValue)
}

// ReduceFueled iterates m.Step up to n times, stopping as soon as the
// state is terminal. Fuel = 0 on an already-terminal state succeeds
// immediately; fuel = 0 on a non-terminal state fails with MCH003.
func ReduceFueled(m machine.Machine, n int, s machine.State) (machine.State, error) {
	if isTerminal(s) {
		return s, nil
	}
	for i := 0; i < n; i++ {
		next, err := m.Step(s)
		if err != nil {
			return machine.State{}, err
		}
		s = next
		if isTerminal(s) {
			return s, nil
		}
	}
	return machine.State{}, cerrors.Wrap(cerrors.New(cerrors.MCH003,
		"fuel exhausted before reaching a value",
		map[string]any{"fuel": n, "control": reify.OfVterm(s.Control).String()}))
}

// ReduceIn reduces t under env with the default fuel budget and reifies
// the resulting value back into a source term.
func ReduceIn(m machine.Machine, env *value.Environment, t term.Term) (term.Term, error) {
	final, err := ReduceFueled(m, DefaultFuel, initialState(env, t))
	if err != nil {
		return nil, err
	}
	return reify.OfVterm(final.Control), nil
}

// Reduce is ReduceIn with an empty initial environment.
func Reduce(m machine.Machine, t term.Term) (term.Term, error) {
	return ReduceIn(m, value.Empty, t)
}

// Step performs exactly one CEK transition and reifies the resulting
// plugged context — the control re-embedded in its continuation — back
// into a term, so a caller (the REPL, a test) can inspect an in-flight
// reduction without seeing raw tagged values or continuation frames.
func Step(m machine.Machine, env *value.Environment, t term.Term) (term.Term, error) {
	s := initialState(env, t)
	next, err := m.Step(s)
	if err != nil {
		return nil, err
	}
	return reify.FillHole(next.Control, next.K), nil
}
