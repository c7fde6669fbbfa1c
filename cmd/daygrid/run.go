package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/daygrid/internal/app"
	"github.com/dshills/daygrid/internal/config"
	"github.com/dshills/daygrid/internal/renderer/backend"
)

// overrides returns a function applying the flags the user set.
func overrides(cCtx *cli.Context) func(*config.Config) error {
	return func(cfg *config.Config) error {
		if cCtx.IsSet("days") {
			cfg.Row.Days = cCtx.Int("days")
		}
		if cCtx.IsSet("rtl") {
			cfg.Row.RTL = cCtx.Bool("rtl")
		}
		if cCtx.IsSet("mode") {
			cfg.Selection.Mode = cCtx.String("mode")
		}
		if cCtx.IsSet("start") {
			cfg.Row.StartDate = cCtx.String("start")
		}
		if cCtx.IsSet("log-level") {
			cfg.Log.Level = cCtx.String("log-level")
		}
		if cCtx.IsSet("log-file") {
			cfg.Log.File = cCtx.String("log-file")
		}
		if cCtx.IsSet("script") {
			cfg.Hooks.Script = cCtx.String("script")
		}
		return cfg.Validate()
	}
}

// loadConfig loads defaults, file and environment, then applies flags.
func loadConfig(cCtx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(cCtx.String("config"))
	if err != nil {
		return nil, err
	}
	if err := overrides(cCtx)(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkAction(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	var out []byte
	switch cCtx.String("format") {
	case "toml":
		out, err = toml.Marshal(cfg)
	case "yaml":
		out, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("invalid format %s.  Must be one of toml, yaml", cCtx.String("format"))
	}
	if err != nil {
		return err
	}
	_, err = cCtx.App.Writer.Write(out)
	return err
}

func runAction(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logOut, err := app.OpenLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Log.Level),
		Output: logOut,
		Prefix: "daygrid",
	})
	app.SetLogger(logger)

	application, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: cCtx.String("config"),
		Watch:      cCtx.Bool("watch"),
		Overrides:  overrides(cCtx),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer application.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(term); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting with %d days, mode %s", cfg.Row.Days, cfg.Selection.Mode)
	return application.Run(ctx)
}
