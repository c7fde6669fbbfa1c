// Package main is the entry point for daygrid, a terminal day-row picker.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print version",
	}
	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Fprintf(cCtx.App.Writer, "daygrid %s (%s)\n", cCtx.App.Version, commit)
	}

	return &cli.App{
		Name:      "daygrid",
		Usage:     "Select days in a terminal row by clicking or dragging",
		UsageText: "daygrid [options]",
		Version:   version,
		Flags:     configFlags(),
		Action:    runAction,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Validate the configuration and print the effective settings",
				UsageText: "daygrid check [options]",
				Flags: append(configFlags(), &cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "toml",
					Usage:   "Output format. Allowed values are: toml, yaml",
				}),
				Action: checkAction,
			},
		},
	}
}

// configFlags are the settings accepted by both run and check.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a TOML or YAML configuration file",
			EnvVars: []string{"DAYGRID_CONFIG"},
		},
		&cli.IntFlag{
			Name:  "days",
			Usage: "Number of days in the row",
		},
		&cli.BoolFlag{
			Name:  "rtl",
			Usage: "Lay the row out right to left",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "Selection mode: disabled, enabled or ignore-excluded",
		},
		&cli.StringFlag{
			Name:  "start",
			Usage: "First day shown (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Write logs to this file",
		},
		&cli.StringFlag{
			Name:  "script",
			Usage: "Lua hook script defining on_select_slot",
		},
		&cli.BoolFlag{
			Name:  "watch",
			Value: true,
			Usage: "Reload the configuration file when it changes",
		},
	}
}
