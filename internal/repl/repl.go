// Package repl is an interactive CEK stepper: it holds one machine.State
// at a time, advances it one machine.Step per command, and prints the
// plugged intermediate term — the reifier's fill_hole — after every
// transition. There is no surface parser (see spec non-goals), so a
// session starts by loading one of the scenario package's golden terms.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/pleiad/castcic/internal/machine"
	"github.com/pleiad/castcic/internal/reify"
	"github.com/pleiad/castcic/internal/scenario"
	"github.com/pleiad/castcic/internal/typeutil"
	"github.com/pleiad/castcic/internal/value"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// REPL is a single interactive stepping session.
type REPL struct {
	machine machine.Machine
	fuel    int
	state   *machine.State
	history []string
}

// New creates a REPL under the G variant with the default fuel budget.
func New() *REPL {
	return &REPL{
		machine: machine.Machine{Levels: typeutil.Levels{Variant: typeutil.G}},
		fuel:    10000,
	}
}

// Configure sets the REPL's starting variant and fuel budget before the
// session begins; callers (such as the CLI's --variant/--fuel flags)
// use this instead of going through HandleCommand.
func (r *REPL) Configure(variant typeutil.Variant, fuel int) {
	r.machine.Levels.Variant = variant
	if fuel >= 0 {
		r.fuel = fuel
	}
}

func (r *REPL) getPrompt() string {
	if r.state == nil {
		return "castcic> "
	}
	if _, hole := r.state.K.(machine.KHole); hole && typeutil.IsValue(r.state.Control) {
		return "castcic[done]> "
	}
	return "castcic[stepping]> "
}

// Start begins the read-eval-print loop, reading commands from a liner
// session on the process's terminal and writing output to out. It
// returns once the user quits or the liner session reaches EOF; in is
// not read.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".castcic_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(out, cyan("castcic"), dim("— CEK stepper"))
	fmt.Fprintln(out, dim("Type :help for commands, :quit to exit"))
	fmt.Fprintln(out)

	line.SetCompleter(func(l string) (c []string) {
		if strings.HasPrefix(l, ":") {
			for _, cmd := range []string{":help", ":quit", ":load", ":step", ":run", ":reset", ":variant", ":fuel"} {
				if strings.HasPrefix(cmd, l) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	for {
		input, err := line.Prompt(r.getPrompt())
		if err == io.EOF {
			fmt.Fprintln(out, green("goodbye"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		r.history = append(r.history, input)
		if input == ":quit" || input == ":q" {
			fmt.Fprintln(out, green("goodbye"))
			break
		}
		r.HandleCommand(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// HandleCommand dispatches a single REPL command line.
func (r *REPL) HandleCommand(cmd string, out io.Writer) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}
	switch parts[0] {
	case ":help", ":h":
		r.printHelp(out)
	case ":load", ":l":
		if len(parts) < 2 {
			fmt.Fprintln(out, "usage: :load <scenario.yaml>")
			return
		}
		r.load(parts[1], out)
	case ":step", ":s":
		r.step(out)
	case ":run", ":r":
		r.run(out)
	case ":reset":
		r.state = nil
		fmt.Fprintln(out, dim("state cleared"))
	case ":variant":
		if len(parts) < 2 {
			fmt.Fprintln(out, "usage: :variant {G,N,S}")
			return
		}
		r.setVariant(parts[1], out)
	case ":fuel":
		if len(parts) < 2 {
			fmt.Fprintf(out, "fuel: %d\n", r.fuel)
			return
		}
		var n int
		if _, err := fmt.Sscanf(parts[1], "%d", &n); err != nil || n < 0 {
			fmt.Fprintln(out, red("fuel must be a non-negative integer"))
			return
		}
		r.fuel = n
	default:
		fmt.Fprintf(out, "%s: unknown command %q (try :help)\n", red("error"), parts[0])
	}
}

func (r *REPL) load(path string, out io.Writer) {
	s, err := scenario.Load(path)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	t, err := s.Term()
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	r.machine.Levels = s.Levels()
	r.fuel = s.Fuel
	st := machine.State{Control: value.FromTerm(t), Env: value.Empty, K: machine.KHole{}}
	r.state = &st
	fmt.Fprintf(out, "loaded %s: %s\n", s.ID, reify.FillHole(st.Control, st.K))
}

func (r *REPL) step(out io.Writer) {
	if r.state == nil {
		fmt.Fprintln(out, yellow("nothing loaded — try :load <scenario.yaml>"))
		return
	}
	if _, hole := r.state.K.(machine.KHole); hole && typeutil.IsValue(r.state.Control) {
		fmt.Fprintln(out, dim("already at a value"))
		return
	}
	next, err := r.machine.Step(*r.state)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("stuck"), err)
		return
	}
	r.state = &next
	fmt.Fprintln(out, reify.FillHole(next.Control, next.K))
}

func (r *REPL) run(out io.Writer) {
	if r.state == nil {
		fmt.Fprintln(out, yellow("nothing loaded — try :load <scenario.yaml>"))
		return
	}
	budget := r.fuel
	s := *r.state
	for i := 0; i < budget; i++ {
		if _, hole := s.K.(machine.KHole); hole && typeutil.IsValue(s.Control) {
			break
		}
		next, err := r.machine.Step(s)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("stuck"), err)
			r.state = &s
			return
		}
		s = next
	}
	r.state = &s
	fmt.Fprintln(out, green(reify.FillHole(s.Control, s.K).String()))
}

func (r *REPL) setVariant(name string, out io.Writer) {
	switch strings.ToUpper(name) {
	case "G":
		r.machine.Levels.Variant = typeutil.G
	case "N":
		r.machine.Levels.Variant = typeutil.N
	case "S":
		r.machine.Levels.Variant = typeutil.S
	default:
		fmt.Fprintf(out, "%s: unknown variant %q (want G, N, or S)\n", red("error"), name)
		return
	}
	fmt.Fprintf(out, "variant set to %s\n", strings.ToUpper(name))
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, `commands:
  :load <path>     load a term from a scenario YAML fixture
  :step            perform exactly one CEK transition
  :run             step to a value or until fuel runs out
  :variant {G,N,S} switch the GCIC universe-arithmetic variant
  :fuel <n>        set the step budget used by :run
  :reset           clear the loaded state
  :quit            exit`)
}
