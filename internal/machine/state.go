package machine

import (
	"github.com/pleiad/castcic/internal/ident"
	"github.com/pleiad/castcic/internal/value"
)

// State is the machine's (Control, Environment, Kontinuation) triple.
type State struct {
	Control value.Value
	Env     *value.Environment
	K       Kont
}

// IsTerminal reports whether s is a final state: its control is a value
// and its continuation is exhausted.
func IsTerminal(s State, isValue func(value.Value) bool) bool {
	if _, hole := s.K.(KHole); !hole {
		return false
	}
	return isValue(s.Control)
}

// ConstResolver resolves a global declaration referenced by Const. The
// core never mutates the table behind it: the declarations environment
// is process-wide and read-only from the reduction core's point of view.
type ConstResolver interface {
	Resolve(id ident.Ident) (value.Value, bool)
}
