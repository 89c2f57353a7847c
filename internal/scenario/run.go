package scenario

import (
	"fmt"

	"github.com/pleiad/castcic/internal/driver"
	"github.com/pleiad/castcic/internal/machine"
	"github.com/pleiad/castcic/internal/reify"
	"github.com/pleiad/castcic/internal/value"
)

// Result is the outcome of running a scenario: the reduced term's
// printed form and whether it matched the scenario's Expected string.
type Result struct {
	Got     string
	Matched bool
}

// Run reduces the scenario's term under its declared variant and fuel,
// and reports whether the result prints exactly as Expected.
func (s *Scenario) Run() (Result, error) {
	t, err := s.Term()
	if err != nil {
		return Result{}, err
	}
	m := machine.Machine{Levels: s.Levels()}
	initial := machine.State{Control: value.FromTerm(t), Env: value.Empty, K: machine.KHole{}}
	final, err := driver.ReduceFueled(m, s.Fuel, initial)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	got := reify.OfVterm(final.Control).String()
	return Result{Got: got, Matched: got == s.Expected}, nil
}
