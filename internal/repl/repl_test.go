package repl

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadThenStep(t *testing.T) {
	r := New()
	var buf bytes.Buffer

	r.HandleCommand(":load ../scenario/testdata/beta_identity.yaml", &buf)
	if !strings.Contains(buf.String(), "loaded beta-identity") {
		t.Fatalf("expected a load confirmation, got %q", buf.String())
	}
	if r.state == nil {
		t.Fatalf("load should populate state")
	}

	buf.Reset()
	r.HandleCommand(":step", &buf)
	if buf.Len() == 0 {
		t.Errorf("expected :step to print the new intermediate term")
	}
}

func TestRunReachesAValue(t *testing.T) {
	r := New()
	var buf bytes.Buffer
	r.HandleCommand(":load ../scenario/testdata/beta_identity.yaml", &buf)
	buf.Reset()
	r.HandleCommand(":run", &buf)
	if !strings.Contains(buf.String(), "▢0") {
		t.Errorf("expected :run to reach ▢0, got %q", buf.String())
	}
}

func TestStepWithoutLoadWarns(t *testing.T) {
	r := New()
	var buf bytes.Buffer
	r.HandleCommand(":step", &buf)
	if !strings.Contains(buf.String(), "nothing loaded") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

func TestVariantAndFuelCommands(t *testing.T) {
	r := New()
	var buf bytes.Buffer

	r.HandleCommand(":variant N", &buf)
	if r.machine.Levels.Variant != 1 { // typeutil.N
		t.Errorf("expected variant N to be set")
	}

	buf.Reset()
	r.HandleCommand(":variant bogus", &buf)
	if !strings.Contains(buf.String(), "unknown variant") {
		t.Errorf("expected an error for a bogus variant, got %q", buf.String())
	}

	buf.Reset()
	r.HandleCommand(":fuel 5", &buf)
	if r.fuel != 5 {
		t.Errorf("expected fuel to be set to 5, got %d", r.fuel)
	}

	buf.Reset()
	r.HandleCommand(":fuel -1", &buf)
	if r.fuel != 5 {
		t.Errorf("a negative fuel value should be rejected, got %d", r.fuel)
	}
}

func TestUnknownCommandReportsError(t *testing.T) {
	r := New()
	var buf bytes.Buffer
	r.HandleCommand(":bogus", &buf)
	if !strings.Contains(buf.String(), "unknown command") {
		t.Errorf("expected an unknown-command error, got %q", buf.String())
	}
}
