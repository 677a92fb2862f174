// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/bureau-foundation/mugshot/cmd/mugshot/cli"
	"github.com/bureau-foundation/mugshot/lib/codec"
)

func preferencesCommand(global *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "preferences",
		Summary: "Print the saved preferences file",
		Description: `Print the saved preferences file (initials, email and fax overrides)
in CBOR diagnostic notation.`,
		Usage: "mugshot preferences",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			return printPreferences(cfg.Paths.LocalPrefs, os.Stdout)
		},
	}
}

// printPreferences writes the diagnostic notation of the preferences
// file at path to w.
func printPreferences(path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "No saved preferences at %s.\n", path)
		return nil
	}
	if err != nil {
		return cli.Internal("reading preferences: %w", err)
	}
	notation, err := codec.Diagnose(data)
	if err != nil {
		return cli.Validation("%s is not valid CBOR: %w", path, err)
	}
	fmt.Fprintln(w, notation)
	return nil
}
