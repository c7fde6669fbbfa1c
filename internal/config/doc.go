// Package config provides the configuration system for daygrid.
//
// Configuration is resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd/daygrid)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← DAYGRID_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← TOML or YAML, chosen by extension
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.Load("daygrid.toml")
//	if err != nil {
//	    return err
//	}
//	mode, _ := cfg.Mode()
//
// # Live Reload
//
// Watch re-loads the file whenever it changes and hands the result (or the
// load error) to a callback. The engine configuration is fixed per
// controller, so the app rebuilds its controller on every reload.
package config
