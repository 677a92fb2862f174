// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/mugshot/cmd/mugshot/cli"
	"github.com/bureau-foundation/mugshot/cmd/mugshot/ui"
)

func editCommand(global *globalOptions) *cli.Command {
	var options commitOptions

	return &cli.Command{
		Name:    "edit",
		Summary: "Edit the profile in an interactive form",
		Description: `Open a form prefilled with the reconciled profile. Submitting the form
(ctrl+s, or enter on the last field) writes the changes everywhere, as
'mugshot apply' does. Escape leaves without writing anything.`,
		Usage: "mugshot edit [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("edit", pflag.ContinueOnError)
			options.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return cli.Validation("edit needs an interactive terminal").
					WithHint("Use 'mugshot apply' to change fields from a script.")
			}

			s, err := openSession(ctx, global, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			loaded := s.load(ctx)
			record, submitted, err := ui.RunForm(ctx, loaded.snapshot.Record, os.Stdin, os.Stderr)
			if err != nil {
				return cli.Internal("%w", err)
			}
			if !submitted {
				logger.Debug("edit cancelled")
				return nil
			}

			return s.apply(ctx, applyRequest{
				loaded:    loaded,
				record:    record,
				image:     loaded.image,
				prompter:  options.prompter(),
				confirmer: options.confirmer(),
				output:    options.JSONOutput,
			}, os.Stdout)
		},
	}
}
