// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the mugshot command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mugshot/cmd/mugshot/cli"
	"github.com/bureau-foundation/mugshot/lib/version"
)

// globalOptions are the flags accepted before the subcommand name.
type globalOptions struct {
	configPath string
	verbose    bool
}

// Root builds and returns the complete mugshot command tree.
func Root() *cli.Command {
	options := &globalOptions{}

	return &cli.Command{
		Name: "mugshot",
		Description: `Mugshot: keep your name, contact details and photo in sync.

Reads your profile from the desktop account service, the system account
database and your office suite, and writes changes back to every place
that keeps a copy.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("mugshot", pflag.ContinueOnError)
			flagSet.StringVar(&options.configPath, "config", "", "configuration file (default $MUGSHOT_CONFIG, then $XDG_CONFIG_HOME/mugshot/config.yaml)")
			flagSet.BoolVarP(&options.verbose, "verbose", "v", false, "log debugging output")
			return flagSet
		},
		Logger: func() *slog.Logger {
			level := slog.LevelWarn
			if options.verbose {
				level = slog.LevelDebug
			}
			return cli.NewCommandLogger(level)
		},
		Subcommands: []*cli.Command{
			showCommand(options),
			applyCommand(options),
			editCommand(options),
			photoCommand(options),
			preferencesCommand(options),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if len(args) > 0 {
						return cli.Validation("unexpected argument: %s", args[0])
					}
					fmt.Fprintf(os.Stdout, "mugshot %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show your profile and where it was read from",
				Command:     "mugshot show",
			},
			{
				Description: "Edit your profile interactively",
				Command:     "mugshot edit",
			},
			{
				Description: "Change your office phone without prompts for optional stores",
				Command:     "mugshot apply --office-phone 555-2000 --yes",
			},
			{
				Description: "Use a new profile photo",
				Command:     "mugshot photo set ~/Pictures/me.png",
			},
		},
	}
}
