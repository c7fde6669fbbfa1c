package selection

import (
	"fmt"
	"strings"
)

// Mode controls whether and how the row reacts to the pointer.
type Mode uint8

const (
	// ModeDisabled registers no pointer handlers.
	ModeDisabled Mode = iota
	// ModeEnabled selects on every press inside the row.
	ModeEnabled
	// ModeIgnoreExcluded refuses presses that land on excluded sub-elements.
	ModeIgnoreExcluded
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeEnabled:
		return "enabled"
	case ModeIgnoreExcluded:
		return "ignore-excluded"
	default:
		return "disabled"
	}
}

// ParseMode parses a configuration name. Matching is case-insensitive and
// accepts "true"/"false" as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "false", "off":
		return ModeDisabled, nil
	case "enabled", "true", "on":
		return ModeEnabled, nil
	case "ignore-excluded", "ignore_excluded", "ignoreexcluded":
		return ModeIgnoreExcluded, nil
	default:
		return ModeDisabled, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Action says how a slot was selected.
type Action string

const (
	// ActionClick is a single-cell selection from a click.
	ActionClick Action = "click"
	// ActionSelect is a range selection from a drag.
	ActionSelect Action = "select"
)
