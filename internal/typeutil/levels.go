// Package typeutil collects the machine's "type-level" reasoning: head
// constructor extraction, germ construction, universe-level arithmetic,
// and the value/canonical-form predicates the CEK rules test before
// firing. None of it touches the (Control, Environment, Kontinuation)
// state directly — internal/machine calls into here, never the other way.
package typeutil

// Variant selects one of the three GCIC universe-arithmetic presentations.
// The choice only changes CastUniverseLevel — the
// product-universe rule is shared by all three, matching ordinary
// predicative Π-formation.
type Variant int

const (
	// G is the "global germ" variant: the germ of ?->? at ?_i lives at
	// the same level i, so casting into ?_i never needs headroom above i.
	G Variant = iota
	// N is the "next level" variant: the germ's internal ?_ domain/body
	// sit one level above the ? being cast into, giving every ?_i a
	// strictly larger germ to route casts through.
	N
	// S is the "shared" variant: every level's ?->? germ bottoms out at
	// level 0, so all product germs across all levels are the same term.
	S
)

// Levels bundles a Variant with the two derived universe-level functions.
type Levels struct {
	Variant Variant
}

// ProductUniverseLevel returns the universe level of Prod{dom: i, body: j}.
// Identical across all three variants: ordinary predicative Π-formation.
func (l Levels) ProductUniverseLevel(i, j int) int {
	if i > j {
		return i
	}
	return j
}

// CastUniverseLevel returns the level assigned to the germ of ?->? used
// when casting into ?_i, per the selected Variant.
func (l Levels) CastUniverseLevel(i int) int {
	switch l.Variant {
	case N:
		return i + 1
	case S:
		return 0
	default: // G
		return i
	}
}
