// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mugshot/cmd/mugshot/cli"
)

func photoCommand(global *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "photo",
		Summary: "Set or remove the profile photo",
		Description: `Change the profile photo. The photo is copied to the local photo file
and pushed to the desktop account and, if you agree, the chat client's
buddy icon.`,
		Subcommands: []*cli.Command{
			photoSetCommand(global),
			photoRemoveCommand(global),
		},
	}
}

func photoSetCommand(global *globalOptions) *cli.Command {
	var options commitOptions

	return &cli.Command{
		Name:    "set",
		Summary: "Use an image file as the profile photo",
		Usage:   "mugshot photo set <path> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("set", pflag.ContinueOnError)
			options.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one photo path").
					WithHint("Usage: mugshot photo set <path>")
			}
			path := args[0]
			return runPhoto(ctx, global, logger, profileEdits{Photo: &path}, &options)
		},
	}
}

func photoRemoveCommand(global *globalOptions) *cli.Command {
	var options commitOptions

	return &cli.Command{
		Name:    "remove",
		Summary: "Remove the profile photo",
		Usage:   "mugshot photo remove [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("remove", pflag.ContinueOnError)
			options.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runPhoto(ctx, global, logger, profileEdits{RemovePhoto: true}, &options)
		},
	}
}

func runPhoto(ctx context.Context, global *globalOptions, logger *slog.Logger, edits profileEdits, options *commitOptions) error {
	s, err := openSession(ctx, global, logger)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.applyEdits(ctx, edits, options, os.Stdout)
}
