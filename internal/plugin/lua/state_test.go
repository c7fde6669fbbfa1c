package lua

import (
	"errors"
	"testing"
	"time"

	glua "github.com/yuin/gopher-lua"
)

func TestStateDoString(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`x = 1 + 1`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	ret, err := state.Call("tostring", glua.LNumber(3))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if ret.String() != "3" {
		t.Errorf("Call(tostring) = %q, want %q", ret.String(), "3")
	}
}

func TestStateRestrictedGlobals(t *testing.T) {
	state := NewState()
	defer state.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "require", "io", "os", "debug"} {
		if err := state.DoString(`assert(` + name + ` == nil)`); err != nil {
			t.Errorf("%s should be unavailable: %v", name, err)
		}
	}
	if err := state.DoString(`assert(string.format("%d", 4) == "4")`); err != nil {
		t.Errorf("string library should be available: %v", err)
	}
}

func TestStatePrintRedirect(t *testing.T) {
	var lines []string
	state := NewState(WithPrint(func(s string) { lines = append(lines, s) }))
	defer state.Close()

	if err := state.DoString(`print("a", 1, true)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if len(lines) != 1 || lines[0] != "a\t1\ttrue" {
		t.Errorf("printed = %q", lines)
	}
}

func TestStateTimeout(t *testing.T) {
	state := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer state.Close()

	err := state.DoString(`while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Fatalf("DoString(loop) error = %v, want ErrExecutionTimeout", err)
	}

	// The state stays usable after a timeout.
	if err := state.DoString(`y = 2`); err != nil {
		t.Errorf("DoString() after timeout error = %v", err)
	}
}

func TestStateCallNotFunction(t *testing.T) {
	state := NewState()
	defer state.Close()

	if _, err := state.Call("missing"); err == nil {
		t.Error("Call(missing) should fail")
	}
	if state.HasFunction("missing") {
		t.Error("HasFunction(missing) = true")
	}
}

func TestStateClose(t *testing.T) {
	state := NewState()
	state.Close()
	state.Close()

	if !state.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if err := state.DoString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString() after Close = %v, want ErrStateClosed", err)
	}
	if _, err := state.Call("print"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Call() after Close = %v, want ErrStateClosed", err)
	}
}
