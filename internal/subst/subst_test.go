package subst

import (
	"testing"

	"github.com/pleiad/castcic/internal/ident"
	"github.com/pleiad/castcic/internal/value"
)

func TestSubstReplacesFreeVariable(t *testing.T) {
	x := ident.New("x")
	env := value.Empty.Add(x, &value.Universe{Level: 7})
	result := Subst(env, &value.Var{ID: x})
	u, ok := result.(*value.Universe)
	if !ok || u.Level != 7 {
		t.Fatalf("expected Universe(7), got %v", result)
	}
}

func TestSubstLeavesUnboundVariableAlone(t *testing.T) {
	x, y := ident.New("x"), ident.New("y")
	env := value.Empty.Add(x, &value.Universe{Level: 7})
	result := Subst(env, &value.Var{ID: y})
	v, ok := result.(*value.Var)
	if !ok || !v.ID.Equal(y) {
		t.Fatalf("unbound variable should be returned unchanged, got %v", result)
	}
}

func TestSubstAvoidsCapture(t *testing.T) {
	x, y := ident.New("x"), ident.New("y")
	// subst [x := y] (fun y : ▢0. x)  --  must NOT become (fun y : ▢0. y)
	env := value.Empty.Add(x, &value.Var{ID: y})
	lam := &value.Lambda{FunInfo: value.FunInfo{ID: y, Dom: &value.Universe{Level: 0}, Body: &value.Var{ID: x}}}

	result := Subst(env, lam)
	out, ok := result.(*value.Lambda)
	if !ok {
		t.Fatalf("expected a Lambda, got %v", result)
	}
	if out.ID.Equal(y) {
		t.Fatalf("binder should have been alpha-renamed away from the captured name")
	}
	body, ok := out.Body.(*value.Var)
	if !ok || !body.ID.Equal(y) {
		t.Fatalf("body should reference the original free y, got %v", out.Body)
	}
	if out.ID.Equal(body.ID) {
		t.Fatalf("renamed binder must not equal the substituted-in free variable: capture occurred")
	}
}

func TestSubstUntagsVLambdaAndFoldsClosure(t *testing.T) {
	z := ident.New("z")
	x := ident.New("x")
	closure := value.Empty.Add(z, &value.Universe{Level: 9})
	vl := &value.VLambda{
		FunInfo: value.FunInfo{ID: x, Dom: &value.Var{ID: z}, Body: &value.Var{ID: x}},
		Env:     closure,
	}

	result := Subst(value.Empty, vl)
	lam, ok := result.(*value.Lambda)
	if !ok {
		t.Fatalf("VLambda must untag to a plain Lambda under substitution, got %T", result)
	}
	dom, ok := lam.Dom.(*value.Universe)
	if !ok || dom.Level != 9 {
		t.Fatalf("domain should resolve through the captured closure to Universe(9), got %v", lam.Dom)
	}
	body, ok := lam.Body.(*value.Var)
	if !ok || !body.ID.Equal(lam.ID) {
		t.Fatalf("body should reference the freshly renamed binder, got %v", lam.Body)
	}
}

func TestSubstIdenticalBindingsAreAlphaEqual(t *testing.T) {
	x := ident.New("x")
	env := value.Empty.Add(x, &value.Universe{Level: 1})
	term := &value.Lambda{FunInfo: value.FunInfo{ID: ident.New("y"), Dom: &value.Var{ID: x}, Body: &value.Var{ID: ident.New("y")}}}

	r1 := Subst(env, term)
	r2 := Subst(env, term)
	// Alpha-equality: both results have freshly-renamed, necessarily
	// distinct binder identities, but identical structure otherwise.
	l1, l2 := r1.(*value.Lambda), r2.(*value.Lambda)
	if l1.ID.Equal(l2.ID) {
		t.Fatalf("two independent substitutions should mint distinct fresh names")
	}
	if l1.Dom.String() != l2.Dom.String() {
		t.Fatalf("domains should be structurally identical: %v vs %v", l1.Dom, l2.Dom)
	}
}
