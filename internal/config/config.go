package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/daygrid/internal/selection"
)

// DateLayout is the format of dates in configuration.
const DateLayout = "2006-01-02"

// Config is the complete daygrid configuration.
type Config struct {
	Row       RowConfig       `toml:"row" yaml:"row"`
	Selection SelectionConfig `toml:"selection" yaml:"selection"`
	Log       LogConfig       `toml:"log" yaml:"log"`
	Hooks     HooksConfig     `toml:"hooks" yaml:"hooks"`
}

// RowConfig describes the row of day cells.
type RowConfig struct {
	// Days is the number of cells.
	Days int `toml:"days" yaml:"days"`
	// RTL lays the row out right to left.
	RTL bool `toml:"rtl" yaml:"rtl"`
	// CellWidth is the width of one cell in terminal columns.
	CellWidth int `toml:"cell_width" yaml:"cell_width"`
	// Height is the height of the row in terminal lines.
	Height int `toml:"height" yaml:"height"`
	// StartDate is the first day shown (YYYY-MM-DD). Empty means the
	// Monday of the current week.
	StartDate string `toml:"start_date" yaml:"start_date"`
	// Busy lists days that already hold an item (YYYY-MM-DD).
	Busy []string `toml:"busy" yaml:"busy"`
}

// SelectionConfig configures the selection engine.
type SelectionConfig struct {
	// Mode is "disabled", "enabled" or "ignore-excluded".
	Mode string `toml:"mode" yaml:"mode"`
	// ClickTolerance is how far the pointer may move before a press
	// becomes a drag.
	ClickTolerance float64 `toml:"click_tolerance" yaml:"click_tolerance"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File is the log destination. Empty discards log output.
	File string `toml:"file" yaml:"file"`
}

// HooksConfig configures scripting hooks.
type HooksConfig struct {
	// Script is a Lua file defining on_select_slot.
	Script string `toml:"script" yaml:"script"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Row: RowConfig{
			Days:      7,
			CellWidth: 12,
			Height:    4,
		},
		Selection: SelectionConfig{
			Mode: selection.ModeEnabled.String(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Row.Days <= 0 {
		errs = append(errs, &ValidationError{Setting: "row.days", Message: fmt.Sprintf("must be positive, got %d", c.Row.Days)})
	}
	if c.Row.CellWidth <= 0 {
		errs = append(errs, &ValidationError{Setting: "row.cell_width", Message: fmt.Sprintf("must be positive, got %d", c.Row.CellWidth)})
	}
	if c.Row.Height < 2 {
		errs = append(errs, &ValidationError{Setting: "row.height", Message: fmt.Sprintf("must be at least 2, got %d", c.Row.Height)})
	}
	if c.Selection.ClickTolerance < 0 {
		errs = append(errs, &ValidationError{Setting: "selection.click_tolerance", Message: "must not be negative"})
	}
	if _, err := c.Mode(); err != nil {
		errs = append(errs, &ValidationError{Setting: "selection.mode", Message: err.Error()})
	}
	if c.Row.StartDate != "" {
		if _, err := time.Parse(DateLayout, c.Row.StartDate); err != nil {
			errs = append(errs, &ValidationError{Setting: "row.start_date", Message: err.Error()})
		}
	}
	for _, d := range c.Row.Busy {
		if _, err := time.Parse(DateLayout, d); err != nil {
			errs = append(errs, &ValidationError{Setting: "row.busy", Message: err.Error()})
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Setting: "log.level", Message: fmt.Sprintf("%q is not one of debug, info, warn, error", c.Log.Level)})
	}
	return errors.Join(errs...)
}

// Mode parses the selection mode.
func (c *Config) Mode() (selection.Mode, error) {
	return selection.ParseMode(c.Selection.Mode)
}

// Start returns the first day of the row. An empty StartDate resolves to
// the Monday of the week containing now.
func (c *Config) Start(now time.Time) (time.Time, error) {
	if c.Row.StartDate != "" {
		return time.ParseInLocation(DateLayout, c.Row.StartDate, now.Location())
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset), nil
}

// BusyDays returns Busy as a set keyed by DateLayout strings.
func (c *Config) BusyDays() map[string]bool {
	set := make(map[string]bool, len(c.Row.Busy))
	for _, d := range c.Row.Busy {
		set[d] = true
	}
	return set
}

// EngineConfig returns the selection engine configuration.
func (c *Config) EngineConfig() (selection.Config, error) {
	mode, err := c.Mode()
	if err != nil {
		return selection.Config{}, err
	}
	return selection.Config{
		RowLength:      c.Row.Days,
		RTL:            c.Row.RTL,
		Mode:           mode,
		ClickTolerance: c.Selection.ClickTolerance,
	}, nil
}
