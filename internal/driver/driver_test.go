package driver

import (
	"testing"

	"github.com/pleiad/castcic/internal/ident"
	"github.com/pleiad/castcic/internal/machine"
	"github.com/pleiad/castcic/internal/term"
	"github.com/pleiad/castcic/internal/typeutil"
	"github.com/pleiad/castcic/internal/value"
)

func gMachine() machine.Machine {
	return machine.Machine{Levels: typeutil.Levels{Variant: typeutil.G}}
}

func universe(l int) term.Term { return &term.Universe{Level: l} }

// Scenario 1: App(Lambda{x, ▢0, Var x}, ▢0) -> ▢0.
func TestScenarioBetaReducesIdentity(t *testing.T) {
	x := ident.New("x")
	lam := &term.Lambda{FunInfo: term.FunInfo{ID: x, Dom: universe(0), Body: &term.Var{ID: x}}}
	input := &term.App{Fun: lam, Arg: universe(0)}

	got, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	u, ok := got.(*term.Universe)
	if !ok || u.Level != 0 {
		t.Errorf("got %v, want Universe(0)", got)
	}
}

// Scenario 2: Cast{▢0 <= ▢0} ▢0 -> ▢0 (Univ-Univ).
func TestScenarioUnivUnivIsIdentity(t *testing.T) {
	input := &term.Cast{Source: universe(0), Target: universe(0), Term: universe(0)}
	got, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if u, ok := got.(*term.Universe); !ok || u.Level != 0 {
		t.Errorf("got %v, want Universe(0)", got)
	}
}

// Scenario 3: casting a lambda whose product type IS the germ at level 1
// into ?_1 stays a cast value (canonical injection), it does not unwrap.
func TestScenarioCanonicalInjectionStaysACast(t *testing.T) {
	x := ident.New("x")
	levels := typeutil.Levels{Variant: typeutil.G}
	germ := levels.Germ(1, typeutil.ProdHead())

	lam := &value.VLambda{
		FunInfo: value.FunInfo{ID: x, Dom: &value.Universe{Level: 0}, Body: &value.Var{ID: x}},
		Env:     value.Empty,
	}
	s := machine.State{
		Control: lam,
		Env:     value.Empty,
		K: machine.KCastTerm{
			Source: germ,
			Target: &value.VUnknown{V: &value.Universe{Level: 1}},
			K:      machine.KHole{},
		},
	}
	final, err := ReduceFueled(machine.Machine{Levels: levels}, DefaultFuel, s)
	if err != nil {
		t.Fatalf("ReduceFueled: %v", err)
	}
	if _, ok := final.Control.(*value.VCast); !ok {
		t.Errorf("expected a VCast to survive, got %T", final.Control)
	}
}

// Scenario 4: App(Unknown(Prod{x,▢0,▢0}), ▢0) -> ?_▢0 (Prod-Unk then Beta).
func TestScenarioProdUnkThenBeta(t *testing.T) {
	x := ident.New("x")
	prod := &term.Prod{FunInfo: term.FunInfo{ID: x, Dom: universe(0), Body: universe(0)}}
	input := &term.App{Fun: &term.Unknown{T: prod}, Arg: universe(0)}

	got, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	u, ok := got.(*term.Unknown)
	if !ok {
		t.Fatalf("got %T, want *term.Unknown", got)
	}
	if lvl, ok := u.T.(*term.Universe); !ok || lvl.Level != 0 {
		t.Errorf("got ?_%v, want ?_Universe(0)", u.T)
	}
}

// Scenario 5: App(Err(Prod{x,▢0,▢0}), ▢0) -> err_▢0 (Prod-Err then Beta).
func TestScenarioProdErrThenBeta(t *testing.T) {
	x := ident.New("x")
	prod := &term.Prod{FunInfo: term.FunInfo{ID: x, Dom: universe(0), Body: universe(0)}}
	input := &term.App{Fun: &term.Err{T: prod}, Arg: universe(0)}

	got, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	e, ok := got.(*term.Err)
	if !ok {
		t.Fatalf("got %T, want *term.Err", got)
	}
	if lvl, ok := e.T.(*term.Universe); !ok || lvl.Level != 0 {
		t.Errorf("got err_%v, want err_Universe(0)", e.T)
	}
}

// Scenario 6: Cast{source=▢1, target=?_▢0, term=▢0} -> err_{?_▢0} (Size-Err, 1>=0).
func TestScenarioSizeErrUniverse(t *testing.T) {
	input := &term.Cast{Source: universe(1), Target: &term.Unknown{T: universe(0)}, Term: universe(0)}
	got, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	e, ok := got.(*term.Err)
	if !ok {
		t.Fatalf("got %T, want *term.Err", got)
	}
	if _, ok := e.T.(*term.Unknown); !ok {
		t.Errorf("got err_%v, want err_{?_▢0}", e.T)
	}
}

// Shadowing: App(Lambda{x,▢0, Lambda{x,▢0, Var x}}, t) ⇒* Lambda{x,▢0, Var x}.
func TestShadowingInnerBinderWins(t *testing.T) {
	x := ident.New("x")
	inner := &term.Lambda{FunInfo: term.FunInfo{ID: x, Dom: universe(0), Body: &term.Var{ID: x}}}
	outer := &term.Lambda{FunInfo: term.FunInfo{ID: x, Dom: universe(0), Body: inner}}
	input := &term.App{Fun: outer, Arg: universe(5)}

	got, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	lam, ok := got.(*term.Lambda)
	if !ok {
		t.Fatalf("got %T, want *term.Lambda", got)
	}
	body, ok := lam.Body.(*term.Var)
	if !ok || !body.ID.Equal(lam.ID) {
		t.Errorf("body should reference the inner binder, got %v", lam.Body)
	}
}

// Fuel = 0 on a value succeeds; fuel = 0 on a non-value fails.
func TestFuelZeroBoundary(t *testing.T) {
	m := gMachine()

	valueState := machine.State{Control: &value.Universe{Level: 0}, Env: value.Empty, K: machine.KHole{}}
	if _, err := ReduceFueled(m, 0, valueState); err != nil {
		t.Errorf("fuel=0 on a value should succeed, got %v", err)
	}

	x := ident.New("x")
	lam := &term.Lambda{FunInfo: term.FunInfo{ID: x, Dom: universe(0), Body: &term.Var{ID: x}}}
	nonValueState := initialState(value.Empty, &term.App{Fun: lam, Arg: universe(0)})
	if _, err := ReduceFueled(m, 0, nonValueState); err == nil {
		t.Errorf("fuel=0 on a non-value should fail")
	}
}

// Determinism: two independent reductions of the same term are α-equal,
// even though fresh-name minting makes their raw identifiers differ.
func TestDeterminismUpToAlpha(t *testing.T) {
	x := ident.New("x")
	lam := &term.Lambda{FunInfo: term.FunInfo{ID: x, Dom: universe(0), Body: &term.Var{ID: x}}}
	input := &term.App{Fun: lam, Arg: universe(7)}

	r1, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	r2, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if r1.String() != r2.String() {
		t.Errorf("two reductions of a ground term should print identically, got %q vs %q", r1, r2)
	}
}

// Cast cancellation: casting a value through two equal universes is the
// identity, at an arbitrary (non-zero) level, not just level 0.
func TestCastCancellationInvariant(t *testing.T) {
	input := &term.Cast{Source: universe(4), Target: universe(4), Term: universe(7)}
	got, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if u, ok := got.(*term.Universe); !ok || u.Level != 7 {
		t.Errorf("got %v, want Universe(7)", got)
	}
}

// Error absorption: casting anything whose source type is itself an error
// (err_U) collapses to an error at the target type, regardless of the term.
func TestErrorAbsorptionInvariant(t *testing.T) {
	input := &term.Cast{
		Source: &term.Err{T: universe(0)},
		Target: universe(5),
		Term:   universe(2),
	}
	got, err := Reduce(gMachine(), input)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	e, ok := got.(*term.Err)
	if !ok {
		t.Fatalf("got %T, want *term.Err", got)
	}
	if u, ok := e.T.(*term.Universe); !ok || u.Level != 5 {
		t.Errorf("got err_%v, want err_Universe(5)", e.T)
	}
}

// Capture avoidance through Prod-Prod: expanding a cast between two
// dependent products must not let the fresh argument variable capture an
// identically-named free identifier already present in the body.
func TestProdProdExpansionAvoidsCapture(t *testing.T) {
	x := ident.New("x")
	y := ident.New("y")

	// source: (x : ▢0) -> ▢0, target: (y : ▢0) -> ▢0 — same shape, so the
	// cast is a value-preserving eta-expansion around a fresh binder that
	// must not collide with any identifier already free in f's body.
	srcProd := &value.VProd{
		FunInfo: value.FunInfo{ID: x, Dom: &value.Universe{Level: 0}, Body: &value.Universe{Level: 0}},
		Env:     value.Empty,
	}
	tgtProd := &value.VProd{
		FunInfo: value.FunInfo{ID: y, Dom: &value.Universe{Level: 0}, Body: &value.Universe{Level: 0}},
		Env:     value.Empty,
	}
	f := &value.VLambda{
		FunInfo: value.FunInfo{ID: x, Dom: &value.Universe{Level: 0}, Body: &value.Var{ID: x}},
		Env:     value.Empty,
	}
	s := machine.State{
		Control: f,
		Env:     value.Empty,
		K: machine.KCastTerm{
			Source: srcProd,
			Target: tgtProd,
			K:      machine.KHole{},
		},
	}
	final, err := ReduceFueled(gMachine(), DefaultFuel, s)
	if err != nil {
		t.Fatalf("ReduceFueled: %v", err)
	}
	result, ok := final.Control.(*value.VLambda)
	if !ok {
		t.Fatalf("expected the expansion to settle into a lambda value, got %T", final.Control)
	}
	if result.ID.Equal(x) || result.ID.Equal(y) {
		t.Errorf("the expansion's fresh binder should not reuse an existing identifier, got %v", result.ID)
	}
}

// Value stability: reducing an already-terminal state returns it unchanged.
func TestValueStability(t *testing.T) {
	s := machine.State{Control: &value.Universe{Level: 9}, Env: value.Empty, K: machine.KHole{}}
	next, err := gMachine().Step(s)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if next.Control.String() != s.Control.String() {
		t.Errorf("stepping a terminal state should be a no-op, got %v", next.Control)
	}
	if _, hole := next.K.(machine.KHole); !hole {
		t.Errorf("terminal continuation should remain KHole")
	}
}
