package term

import (
	"testing"

	"github.com/pleiad/castcic/internal/ident"
)

func TestStringRenderings(t *testing.T) {
	x := ident.New("x")
	tests := []struct {
		name     string
		term     Term
		expected string
	}{
		{"universe", &Universe{Level: 3}, "▢3"},
		{"var", &Var{ID: x}, "x"},
		{"lambda", &Lambda{FunInfo{ID: x, Dom: &Universe{Level: 0}, Body: &Var{ID: x}}}, "fun x : ▢0. x"},
		{"prod", &Prod{FunInfo{ID: x, Dom: &Universe{Level: 0}, Body: &Universe{Level: 0}}}, "Π x : ▢0. ▢0"},
		{"unknown", &Unknown{T: &Universe{Level: 0}}, "?_▢0"},
		{"err", &Err{T: &Universe{Level: 0}}, "err_▢0"},
		{"app", &App{Fun: &Var{ID: x}, Arg: &Universe{Level: 0}}, "(x ▢0)"},
		{
			"cast",
			&Cast{Source: &Universe{Level: 0}, Target: &Universe{Level: 1}, Term: &Var{ID: x}},
			"⟨▢1 ⇐ ▢0⟩ x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
