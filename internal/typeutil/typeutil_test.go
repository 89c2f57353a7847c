package typeutil

import (
	"testing"

	"github.com/pleiad/castcic/internal/ident"
	"github.com/pleiad/castcic/internal/value"
)

func TestProductUniverseLevel(t *testing.T) {
	l := Levels{Variant: G}
	if got := l.ProductUniverseLevel(2, 5); got != 5 {
		t.Errorf("ProductUniverseLevel(2,5) = %d, want 5", got)
	}
	if got := l.ProductUniverseLevel(5, 2); got != 5 {
		t.Errorf("ProductUniverseLevel(5,2) = %d, want 5", got)
	}
}

func TestCastUniverseLevelPerVariant(t *testing.T) {
	if got := (Levels{Variant: G}).CastUniverseLevel(3); got != 3 {
		t.Errorf("G: CastUniverseLevel(3) = %d, want 3", got)
	}
	if got := (Levels{Variant: N}).CastUniverseLevel(3); got != 4 {
		t.Errorf("N: CastUniverseLevel(3) = %d, want 4", got)
	}
	if got := (Levels{Variant: S}).CastUniverseLevel(3); got != 0 {
		t.Errorf("S: CastUniverseLevel(3) = %d, want 0", got)
	}
}

func TestGermUniverseHead(t *testing.T) {
	l := Levels{Variant: G}
	g := l.Germ(5, UniverseHead(2))
	if u, ok := g.(*value.Universe); !ok || u.Level != 2 {
		t.Errorf("Germ(5, Universe(2)) = %v, want Universe(2)", g)
	}
	g2 := l.Germ(2, UniverseHead(5))
	ve, ok := g2.(*value.VErr)
	if !ok {
		t.Fatalf("Germ(2, Universe(5)) should be an error, got %v", g2)
	}
	if u, ok := ve.V.(*value.Universe); !ok || u.Level != 2 {
		t.Errorf("error payload should be Universe(2), got %v", ve.V)
	}
}

func TestGermProdHeadAndIsGerm(t *testing.T) {
	l := Levels{Variant: G}
	g := l.Germ(1, ProdHead())
	if !l.IsGerm(1, g) {
		t.Errorf("germ should recognize itself as a germ at its own level")
	}
	if !l.IsGermForGTELevel(1, g) {
		t.Errorf("germ at level 1 should count for IsGermForGTELevel(1, .)")
	}
	if !l.IsGermForGTELevel(0, g) {
		t.Errorf("germ at level 1 should count for IsGermForGTELevel(0, .) too")
	}
	if l.IsGermForGTELevel(2, g) {
		t.Errorf("germ at level 1 should not satisfy IsGermForGTELevel(2, .)")
	}
}

func TestIsTypeIsValue(t *testing.T) {
	prod := &value.VProd{FunInfo: value.FunInfo{ID: ident.New("x"), Dom: &value.Universe{Level: 0}, Body: &value.Universe{Level: 0}}}
	if !IsType(prod) {
		t.Errorf("VProd should be a type")
	}
	if !IsValue(prod) {
		t.Errorf("VProd should be a value")
	}

	unkOfProd := &value.VUnknown{V: prod}
	if IsValue(unkOfProd) {
		t.Errorf("VUnknown(VProd) must NOT be a value — it still eta-expands")
	}
	unkOfUniv := &value.VUnknown{V: &value.Universe{Level: 0}}
	if !IsValue(unkOfUniv) {
		t.Errorf("VUnknown(Universe) should be a value")
	}

	errOfProd := &value.VErr{V: prod}
	if IsValue(errOfProd) {
		t.Errorf("VErr(VProd) must NOT be a value")
	}
}

func TestIsNeutral(t *testing.T) {
	x := ident.New("x")
	v := &value.Var{ID: x}
	if !IsNeutral(v) {
		t.Errorf("bare variable should be neutral")
	}
	app := &value.App{Fun: v, Arg: &value.Universe{Level: 0}}
	if !IsNeutral(app) {
		t.Errorf("application of a variable should be neutral")
	}
	nonNeutral := &value.App{Fun: &value.Universe{Level: 0}, Arg: &value.Universe{Level: 0}}
	if IsNeutral(nonNeutral) {
		t.Errorf("application with a non-variable head should not be neutral")
	}
}

func TestHeadsSameKind(t *testing.T) {
	if !SameKind(ProdHead(), ProdHead()) {
		t.Errorf("two prod heads should share a kind")
	}
	if SameKind(ProdHead(), UniverseHead(0)) {
		t.Errorf("prod and universe heads should not share a kind")
	}
	if !SameKind(UniverseHead(0), UniverseHead(9)) {
		t.Errorf("universe heads of different levels should still share a kind")
	}
}
