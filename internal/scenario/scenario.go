// Package scenario loads golden reduction scenarios from YAML: a named
// input term, the GCIC variant and fuel to reduce it under, and the
// term's expected printed form after reduction. The same fixtures back
// both the test suite and the castcic replay subcommand.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pleiad/castcic/internal/ident"
	"github.com/pleiad/castcic/internal/term"
	"github.com/pleiad/castcic/internal/typeutil"
)

// Scenario is a single golden end-to-end reduction case.
type Scenario struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Variant     string `yaml:"variant"`
	Fuel        int    `yaml:"fuel"`
	Input       Node   `yaml:"input"`
	Expected    string `yaml:"expected"`
}

// Load reads and validates a single scenario from path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("scenario: %s missing required field: id", path)
	}
	if s.Expected == "" {
		return nil, fmt.Errorf("scenario: %s missing required field: expected", path)
	}
	if s.Variant == "" {
		s.Variant = "G"
	}
	if s.Fuel == 0 {
		s.Fuel = 10000
	}
	return &s, nil
}

// Levels resolves the scenario's declared GCIC variant into a
// typeutil.Levels, defaulting to G on an unrecognized tag.
func (s *Scenario) Levels() typeutil.Levels {
	switch s.Variant {
	case "N":
		return typeutil.Levels{Variant: typeutil.N}
	case "S":
		return typeutil.Levels{Variant: typeutil.S}
	default:
		return typeutil.Levels{Variant: typeutil.G}
	}
}

// Term builds the term.Term the scenario's input describes.
func (s *Scenario) Term() (term.Term, error) {
	return s.Input.build()
}

// Node is a YAML-friendly encoding of a term.Term: exactly one of its
// fields is set, naming the surface constructor. This mirrors the
// tagged-union shape of term.Term itself rather than inventing a second
// parser — Load only ever needs to round-trip the handful of shapes the
// golden scenarios actually use.
type Node struct {
	Var     string  `yaml:"var,omitempty"`
	Univ    *int    `yaml:"universe,omitempty"`
	Const   string  `yaml:"const,omitempty"`
	App     *AppN   `yaml:"app,omitempty"`
	Lambda  *BindN  `yaml:"lambda,omitempty"`
	Prod    *BindN  `yaml:"prod,omitempty"`
	Unknown *Node   `yaml:"unknown,omitempty"`
	Err     *Node   `yaml:"err,omitempty"`
	Cast    *CastN  `yaml:"cast,omitempty"`
}

type AppN struct {
	Fun Node `yaml:"fun"`
	Arg Node `yaml:"arg"`
}

type BindN struct {
	ID   string `yaml:"id"`
	Dom  Node   `yaml:"dom"`
	Body Node   `yaml:"body"`
}

type CastN struct {
	Source Node `yaml:"source"`
	Target Node `yaml:"target"`
	Term   Node `yaml:"term"`
}

func (n Node) build() (term.Term, error) {
	switch {
	case n.Var != "":
		return &term.Var{ID: ident.New(n.Var)}, nil
	case n.Univ != nil:
		return &term.Universe{Level: *n.Univ}, nil
	case n.Const != "":
		return &term.Const{ID: ident.New(n.Const)}, nil
	case n.App != nil:
		fun, err := n.App.Fun.build()
		if err != nil {
			return nil, err
		}
		arg, err := n.App.Arg.build()
		if err != nil {
			return nil, err
		}
		return &term.App{Fun: fun, Arg: arg}, nil
	case n.Lambda != nil:
		return n.Lambda.buildBinder(func(fi term.FunInfo) term.Term { return &term.Lambda{FunInfo: fi} })
	case n.Prod != nil:
		return n.Prod.buildBinder(func(fi term.FunInfo) term.Term { return &term.Prod{FunInfo: fi} })
	case n.Unknown != nil:
		t, err := n.Unknown.build()
		if err != nil {
			return nil, err
		}
		return &term.Unknown{T: t}, nil
	case n.Err != nil:
		t, err := n.Err.build()
		if err != nil {
			return nil, err
		}
		return &term.Err{T: t}, nil
	case n.Cast != nil:
		src, err := n.Cast.Source.build()
		if err != nil {
			return nil, err
		}
		tgt, err := n.Cast.Target.build()
		if err != nil {
			return nil, err
		}
		tm, err := n.Cast.Term.build()
		if err != nil {
			return nil, err
		}
		return &term.Cast{Source: src, Target: tgt, Term: tm}, nil
	default:
		return nil, fmt.Errorf("scenario: empty term node")
	}
}

func (b *BindN) buildBinder(wrap func(term.FunInfo) term.Term) (term.Term, error) {
	dom, err := b.Dom.build()
	if err != nil {
		return nil, err
	}
	body, err := b.Body.build()
	if err != nil {
		return nil, err
	}
	return wrap(term.FunInfo{ID: ident.New(b.ID), Dom: dom, Body: body}), nil
}
