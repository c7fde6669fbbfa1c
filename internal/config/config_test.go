package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/daygrid/internal/selection"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Row.Days != 7 {
		t.Errorf("Row.Days = %d, want 7", cfg.Row.Days)
	}
	mode, err := cfg.Mode()
	if err != nil || mode != selection.ModeEnabled {
		t.Errorf("Mode() = %s, %v; want enabled", mode, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		setting string
	}{
		{"zero days", func(c *Config) { c.Row.Days = 0 }, "row.days"},
		{"negative width", func(c *Config) { c.Row.CellWidth = -1 }, "row.cell_width"},
		{"short row", func(c *Config) { c.Row.Height = 1 }, "row.height"},
		{"bad mode", func(c *Config) { c.Selection.Mode = "maybe" }, "selection.mode"},
		{"bad start", func(c *Config) { c.Row.StartDate = "monday" }, "row.start_date"},
		{"bad busy", func(c *Config) { c.Row.Busy = []string{"2024-13-01"} }, "row.busy"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"negative tolerance", func(c *Config) { c.Selection.ClickTolerance = -1 }, "selection.click_tolerance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Setting != tt.setting {
				t.Errorf("Validate() = %v, want setting %s", err, tt.setting)
			}
		})
	}
}

func TestStart(t *testing.T) {
	now := time.Date(2024, time.May, 16, 15, 4, 0, 0, time.UTC) // Thursday

	cfg := Default()
	got, err := cfg.Start(now)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if want := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Start() = %v, want Monday %v", got, want)
	}

	sunday := time.Date(2024, time.May, 19, 9, 0, 0, 0, time.UTC)
	got, _ = cfg.Start(sunday)
	if want := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Start(sunday) = %v, want %v", got, want)
	}

	cfg.Row.StartDate = "2024-02-28"
	got, err = cfg.Start(now)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if got.Format(DateLayout) != "2024-02-28" {
		t.Errorf("Start() = %v, want 2024-02-28", got)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := Default()
	cfg.Row.Days = 5
	cfg.Row.RTL = true
	cfg.Selection.Mode = "ignore-excluded"
	cfg.Selection.ClickTolerance = 1.5

	got, err := cfg.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig() error = %v", err)
	}
	want := selection.Config{RowLength: 5, RTL: true, Mode: selection.ModeIgnoreExcluded, ClickTolerance: 1.5}
	if got != want {
		t.Errorf("EngineConfig() = %+v, want %+v", got, want)
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "daygrid.toml", `
[row]
days = 5
rtl = true
start_date = "2024-05-13"
busy = ["2024-05-14"]

[selection]
mode = "ignore-excluded"

[log]
level = "debug"
`)

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Row.Days != 5 || !cfg.Row.RTL || cfg.Row.StartDate != "2024-05-13" {
		t.Errorf("Row = %+v", cfg.Row)
	}
	if cfg.Row.CellWidth != 12 {
		t.Errorf("CellWidth = %d, want default 12 kept", cfg.Row.CellWidth)
	}
	if !cfg.BusyDays()["2024-05-14"] {
		t.Errorf("BusyDays() = %v, want 2024-05-14", cfg.BusyDays())
	}
	if cfg.Selection.Mode != "ignore-excluded" || cfg.Log.Level != "debug" {
		t.Errorf("Selection/Log = %+v/%+v", cfg.Selection, cfg.Log)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "daygrid.yaml", `
row:
  days: 3
  cell_width: 8
selection:
  mode: disabled
hooks:
  script: hooks.lua
`)

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Row.Days != 3 || cfg.Row.CellWidth != 8 {
		t.Errorf("Row = %+v", cfg.Row)
	}
	if cfg.Row.Height != 4 {
		t.Errorf("Height = %d, want default 4 kept", cfg.Row.Height)
	}
	if cfg.Selection.Mode != "disabled" || cfg.Hooks.Script != "hooks.lua" {
		t.Errorf("Selection/Hooks = %+v/%+v", cfg.Selection, cfg.Hooks)
	}
}

func TestLoadFile_EmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yml", "")
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile(empty) error = %v", err)
	}
	if cfg.Row.Days != 7 {
		t.Errorf("Row.Days = %d, want 7", cfg.Row.Days)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	if err := cfg.LoadFile(filepath.Join(dir, "missing.toml")); err != nil {
		t.Errorf("LoadFile(missing) = %v, want nil", err)
	}

	bad := writeFile(t, dir, "bad.toml", "[row\ndays = ")
	var perr *ParseError
	if err := cfg.LoadFile(bad); !errors.As(err, &perr) {
		t.Errorf("LoadFile(bad) = %v, want *ParseError", err)
	}

	unknown := writeFile(t, dir, "unknown.toml", "[row]\nweeks = 2\n")
	if err := cfg.LoadFile(unknown); !errors.As(err, &perr) {
		t.Errorf("LoadFile(unknown key) = %v, want *ParseError", err)
	}

	ini := writeFile(t, dir, "daygrid.ini", "days=3")
	if err := cfg.LoadFile(ini); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile(ini) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"DAYGRID_DAYS":           "10",
		"DAYGRID_RTL":            "true",
		"DAYGRID_SELECTION_MODE": "ignore-excluded",
		"DAYGRID_LOG_LEVEL":      "warn",
		"DAYGRID_BUSY":           "2024-05-14, ,2024-05-16",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Row.Days != 10 || !cfg.Row.RTL {
		t.Errorf("Row = %+v", cfg.Row)
	}
	if cfg.Selection.Mode != "ignore-excluded" || cfg.Log.Level != "warn" {
		t.Errorf("Selection/Log = %+v/%+v", cfg.Selection, cfg.Log)
	}
	if len(cfg.Row.Busy) != 2 || cfg.Row.Busy[1] != "2024-05-16" {
		t.Errorf("Busy = %v", cfg.Row.Busy)
	}

	env = map[string]string{"DAYGRID_DAYS": "seven"}
	if err := Default().ApplyEnv(lookup); err == nil {
		t.Error("ApplyEnv(DAYS=seven) succeeded, want error")
	}
	env = map[string]string{"DAYGRID_RTL": "sideways"}
	if err := Default().ApplyEnv(lookup); err == nil {
		t.Error("ApplyEnv(RTL=sideways) succeeded, want error")
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "daygrid.toml", "[row]\ndays = 0\n")
	if _, err := Load(path); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Load(days=0) = %v, want ErrValidationFailed", err)
	}

	t.Setenv("DAYGRID_DAYS", "4")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with env override error = %v", err)
	}
	if cfg.Row.Days != 4 {
		t.Errorf("Row.Days = %d, want 4 from env", cfg.Row.Days)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "daygrid.toml", "[row]\ndays = 7\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *Config, 4)
	err := Watch(ctx, path, 20*time.Millisecond, func(cfg *Config, err error) {
		if err == nil {
			reloads <- cfg
		}
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	// Unrelated files in the directory are ignored.
	writeFile(t, dir, "other.toml", "x = 1\n")
	writeFile(t, dir, "daygrid.toml", "[row]\ndays = 3\n")

	select {
	case cfg := <-reloads:
		if cfg.Row.Days != 3 {
			t.Errorf("reloaded Row.Days = %d, want 3", cfg.Row.Days)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing the config file")
	}
}
