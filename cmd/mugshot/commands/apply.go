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
	"github.com/bureau-foundation/mugshot/lib/commit"
	"github.com/bureau-foundation/mugshot/lib/identity"
	"github.com/bureau-foundation/mugshot/lib/privileged"
)

// commitOptions are the flags shared by every command that commits.
type commitOptions struct {
	cli.JSONOutput
	yes          bool
	passwordFile string
}

func (o *commitOptions) register(flagSet *pflag.FlagSet) {
	flagSet.BoolVarP(&o.yes, "yes", "y", false, "answer yes to every optional update question")
	flagSet.StringVar(&o.passwordFile, "password-file", "", "read the administrative password from `path` instead of the terminal")
	flagSet.BoolVar(&o.OutputJSON, "json", false, "print the commit report as JSON")
}

// prompter returns the password source selected by the flags.
func (o *commitOptions) prompter() privileged.Prompter {
	if o.passwordFile != "" {
		return &ui.FilePrompter{Path: o.passwordFile}
	}
	return &ui.TerminalPrompter{Output: os.Stderr}
}

// confirmer returns the yes/no source selected by the flags.
func (o *commitOptions) confirmer() commit.Confirmer {
	if o.yes {
		return ui.AutoConfirmer{}
	}
	return &ui.LineConfirmer{Input: os.Stdin, Output: os.Stderr}
}

// applyRequest is one commit as the command layer sees it.
type applyRequest struct {
	loaded    profile
	record    identity.Record
	image     identity.ImageState
	prompter  privileged.Prompter
	confirmer commit.Confirmer
	output    cli.JSONOutput
}

// reportJSON is the --json form of a commit report.
type reportJSON struct {
	Changed      bool          `json:"changed"`
	Dirty        []string      `json:"dirty"`
	Success      bool          `json:"success"`
	Refusal      string        `json:"refusal,omitempty"`
	RefusalError string        `json:"refusal_error,omitempty"`
	Outcomes     []outcomeJSON `json:"outcomes"`
}

type outcomeJSON struct {
	Kind   commit.Kind   `json:"kind"`
	Status commit.Status `json:"status"`
	Reason commit.Reason `json:"reason,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// apply commits request.record and request.image against the loaded
// baseline and prints the report to w. A refusal returns an exit code
// of [cli.ExitFailure]; any failed step returns [cli.ExitPartial].
func (s *session) apply(ctx context.Context, request applyRequest, w io.Writer) error {
	baseline := request.loaded.snapshot.Record
	dirty := identity.DetectChanges(baseline, request.record, request.image, request.loaded.sinks)
	s.logger.Debug("detected changes", "dirty", dirty.Names(), "image", request.image.Request)

	if dirty.Empty() {
		if done, err := request.output.EmitJSON(w, reportJSON{Success: true}); done {
			return err
		}
		ui.NewPrinter(w).NoChanges()
		return nil
	}

	if err := s.config.EnsurePaths(); err != nil {
		return cli.Internal("%w", err)
	}
	orchestrator, err := s.orchestrator(request.prompter, request.confirmer)
	if err != nil {
		return err
	}
	report := orchestrator.Commit(ctx, commit.Request{
		Baseline: baseline,
		Record:   request.record,
		Dirty:    dirty,
		Image:    request.image,
	})

	if done, err := request.output.EmitJSON(w, newReportJSON(dirty, report)); done {
		if err != nil {
			return err
		}
	} else {
		ui.NewPrinter(w).Report(report)
	}

	switch {
	case report.Refusal != "":
		return &cli.ExitError{Code: cli.ExitFailure}
	case !report.Success:
		return &cli.ExitError{Code: cli.ExitPartial}
	}
	return nil
}

func newReportJSON(dirty identity.DirtySet, report commit.Report) reportJSON {
	result := reportJSON{
		Changed:  true,
		Dirty:    dirty.Names(),
		Success:  report.Success,
		Refusal:  string(report.Refusal),
		Outcomes: make([]outcomeJSON, 0, len(report.Outcomes)),
	}
	if report.RefusalErr != nil {
		result.RefusalError = report.RefusalErr.Error()
	}
	for _, outcome := range report.Outcomes {
		entry := outcomeJSON{Kind: outcome.Kind, Status: outcome.Status, Reason: outcome.Reason}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}
		result.Outcomes = append(result.Outcomes, entry)
	}
	return result
}

// imageRequest turns the photo edits into an image state against the
// committed photo.
func (s *session) imageRequest(edits profileEdits, committed identity.ImageState) (identity.ImageState, error) {
	image := committed
	switch {
	case edits.Photo != nil:
		staged, err := s.stagePhoto(*edits.Photo)
		if err != nil {
			return identity.ImageState{}, err
		}
		image.Request = identity.ImageReplace
		image.Pending = staged
	case edits.RemovePhoto:
		image.Request = identity.ImageRemove
	}
	return image, nil
}

func applyCommand(global *globalOptions) *cli.Command {
	var (
		flags       profileEdits
		options     commitOptions
		from        string
		photoPath   string
		removePhoto bool
	)

	return &cli.Command{
		Name:    "apply",
		Summary: "Change profile fields and write them everywhere",
		Description: `Change one or more profile fields and write the result to every store
that keeps a copy: the system account database, the desktop account
service, the office suite profile and the saved preferences.

Changing the name or a phone number asks for the administrative
password once. If the password is not given, nothing is written.
Failures of individual stores are reported but do not stop the others.

Fields can come from flags, from a profile document (--from), or both;
flags win. An empty value clears a field.`,
		Usage: "mugshot apply [flags]",
		Examples: []cli.Example{
			{
				Description: "Change the office phone number",
				Command:     "mugshot apply --office-phone 555-2000",
			},
			{
				Description: "Apply a profile document without optional questions",
				Command:     "mugshot apply --from ~/profile.jsonc --yes",
			},
			{
				Description: "Clear the fax number",
				Command:     "mugshot apply --fax ''",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
			flagSet.Var(optionalString{&flags.FirstName}, "first-name", "first name")
			flagSet.Var(optionalString{&flags.LastName}, "last-name", "last name")
			flagSet.Var(optionalString{&flags.Initials}, "initials", "initials")
			flagSet.Var(optionalString{&flags.Email}, "email", "email address")
			flagSet.Var(optionalString{&flags.Fax}, "fax", "fax number")
			flagSet.Var(optionalString{&flags.HomePhone}, "home-phone", "home phone number")
			flagSet.Var(optionalString{&flags.OfficePhone}, "office-phone", "office phone number")
			flagSet.StringVar(&from, "from", "", "read fields from a JSON profile document (comments allowed)")
			flagSet.StringVar(&photoPath, "photo", "", "use the image at `path` as the profile photo")
			flagSet.BoolVar(&removePhoto, "remove-photo", false, "remove the profile photo")
			options.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			edits := profileEdits{}
			if from != "" {
				document, err := readProfileDocument(from)
				if err != nil {
					return cli.Validation("%w", err)
				}
				edits = document
			}
			if photoPath != "" {
				flags.Photo = &photoPath
			}
			flags.RemovePhoto = removePhoto
			edits = edits.overlay(flags)

			if edits.Photo != nil && edits.RemovePhoto {
				return cli.Validation("a new photo and photo removal cannot be requested together")
			}
			if edits.empty() {
				return cli.Validation("nothing to change").
					WithHint("Pass at least one field flag, --photo, --remove-photo or --from.")
			}

			s, err := openSession(ctx, global, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.applyEdits(ctx, edits, &options, os.Stdout)
		},
	}
}

// applyEdits loads the profile, applies edits and commits the result.
func (s *session) applyEdits(ctx context.Context, edits profileEdits, options *commitOptions, w io.Writer) error {
	loaded := s.load(ctx)
	image, err := s.imageRequest(edits, loaded.image)
	if err != nil {
		return err
	}
	return s.apply(ctx, applyRequest{
		loaded:    loaded,
		record:    edits.applyTo(loaded.snapshot.Record),
		image:     image,
		prompter:  options.prompter(),
		confirmer: options.confirmer(),
		output:    options.JSONOutput,
	}, w)
}
