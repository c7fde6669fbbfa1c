package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// SelectSlotHook is the global function name called for every slot.
const SelectSlotHook = "on_select_slot"

// SlotEvent describes a finalized selection passed to the hook.
type SlotEvent struct {
	Start, End  int
	Action      string
	First, Last string
}

// Hooks is a loaded hook script.
type Hooks struct {
	path  string
	state *State
}

// LoadHooks runs the script at path in a new state.
func LoadHooks(path string, opts ...StateOption) (*Hooks, error) {
	state := NewState(opts...)
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("load hook script %s: %w", path, err)
	}
	return &Hooks{path: path, state: state}, nil
}

// Path returns the script path.
func (h *Hooks) Path() string {
	return h.path
}

// HasSelectSlot reports whether the script defines on_select_slot.
func (h *Hooks) HasSelectSlot() bool {
	return h.state.HasFunction(SelectSlotHook)
}

// SelectSlot calls on_select_slot. It returns ("", nil) when the hook is
// not defined or returns nil.
func (h *Hooks) SelectSlot(ev SlotEvent) (string, error) {
	if !h.HasSelectSlot() {
		return "", nil
	}

	tbl := h.state.NewTable(map[string]lua.LValue{
		"start":  lua.LNumber(ev.Start),
		"end":    lua.LNumber(ev.End),
		"action": lua.LString(ev.Action),
		"first":  lua.LString(ev.First),
		"last":   lua.LString(ev.Last),
	})

	ret, err := h.state.Call(SelectSlotHook, tbl)
	if err != nil {
		return "", fmt.Errorf("%s: %w", SelectSlotHook, err)
	}

	switch v := ret.(type) {
	case lua.LString:
		return string(v), nil
	case *lua.LNilType:
		return "", nil
	default:
		return "", fmt.Errorf("%s: %w (got %s)", SelectSlotHook, ErrBadResult, ret.Type())
	}
}

// Close releases the script's state.
func (h *Hooks) Close() {
	h.state.Close()
}
