// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mugshot/cmd/mugshot/cli"
	"github.com/bureau-foundation/mugshot/cmd/mugshot/ui"
	"github.com/bureau-foundation/mugshot/lib/identity"
)

// showJSON is the --json form of the loaded profile.
type showJSON struct {
	Profile     identity.Record   `json:"profile"`
	Photo       string            `json:"photo,omitempty"`
	PhotoDigest string            `json:"photo_digest,omitempty"`
	Sources     []ui.SourceStatus `json:"sources"`
}

func showCommand(global *globalOptions) *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "show",
		Summary: "Show the reconciled profile",
		Description: `Read every identity source, reconcile them into one profile and print
it, followed by which sources could be read.`,
		Usage: "mugshot show [--json]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.BoolVar(&output.OutputJSON, "json", false, "print the profile as JSON")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			s, err := openSession(ctx, global, logger)
			if err != nil {
				return err
			}
			defer s.Close()
			return s.show(ctx, output, os.Stdout)
		},
	}
}

// show prints the reconciled profile to w.
func (s *session) show(ctx context.Context, output cli.JSONOutput, w io.Writer) error {
	loaded := s.load(ctx)
	statuses := sourceStatuses(loaded.snapshot)

	result := showJSON{
		Profile: loaded.snapshot.Record,
		Photo:   loaded.image.Committed,
		Sources: statuses,
	}
	if result.Photo != "" {
		digest, err := s.photo.Digest()
		if err != nil {
			s.logger.Warn("hashing profile photo", "path", result.Photo, "error", err)
		} else {
			result.PhotoDigest = digest.String()
		}
	}

	if done, err := output.EmitJSON(w, result); done {
		return err
	}
	ui.NewPrinter(w).Profile(result.Profile, result.Photo, statuses)
	return nil
}
