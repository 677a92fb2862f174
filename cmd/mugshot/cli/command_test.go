// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "mugshot",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "show",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "show"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"show"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "show" {
		t.Errorf("dispatched to %q, want %q", called, "show")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "mugshot",
		Subcommands: []*Command{
			{
				Name: "photo",
				Subcommands: []*Command{
					{
						Name: "set",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							called = "photo set"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"photo", "set", "face.png"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "photo set" {
		t.Errorf("dispatched to %q, want %q", called, "photo set")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "face.png" {
		t.Errorf("args = %v, want [face.png]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var email string
	var target string

	command := &Command{
		Name: "apply",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
			flagSet.StringVar(&email, "email", "", "email address")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"extra", "--email", "jane@example.org"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if email != "jane@example.org" {
		t.Errorf("email = %q, want %q", email, "jane@example.org")
	}
	if target != "extra" {
		t.Errorf("target = %q, want %q", target, "extra")
	}
}

func TestCommand_Execute_GlobalFlags(t *testing.T) {
	var verbose bool
	var level slog.Level
	var ranWith []string

	root := &Command{
		Name: "mugshot",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("mugshot", pflag.ContinueOnError)
			flagSet.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
			return flagSet
		},
		Logger: func() *slog.Logger {
			if verbose {
				level = slog.LevelDebug
			}
			return slog.New(slog.DiscardHandler)
		},
		Subcommands: []*Command{
			{
				Name: "apply",
				Flags: func() *pflag.FlagSet {
					flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
					flagSet.Bool("yes", false, "")
					return flagSet
				},
				Run: func(_ context.Context, args []string, logger *slog.Logger) error {
					if logger == nil {
						t.Error("Run received a nil logger")
					}
					ranWith = args
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"-v", "apply", "--yes", "rest"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !verbose {
		t.Error("global -v was not parsed")
	}
	if level != slog.LevelDebug {
		t.Error("logger factory ran before global flags were parsed")
	}
	if len(ranWith) != 1 || ranWith[0] != "rest" {
		t.Errorf("args = %v, want [rest]", ranWith)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "apply",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
			flagSet.Bool("remove-photo", false, "remove the photo")
			flagSet.String("email", "", "email address")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--remove-phtoo"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --remove-photo") {
		t.Errorf("error = %q, want suggestion for '--remove-photo'", errStr)
	}
	if !strings.Contains(errStr, "remove-phtoo") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}

	var toolErr *ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != CategoryValidation {
		t.Errorf("error = %#v, want a validation ToolError", err)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "apply",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
			flagSet.Bool("yes", false, "")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_HelpAfterFlags(t *testing.T) {
	ran := false
	command := &Command{
		Name: "apply",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
			flagSet.Bool("yes", false, "")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			ran = true
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--yes", "--help"}); err != nil {
		t.Errorf("Execute() error: %v", err)
	}
	if ran {
		t.Error("Run called although help was requested")
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "mugshot",
		Subcommands: []*Command{
			{Name: "show"},
			{Name: "apply"},
			{Name: "version"},
		},
	}

	err := root.Execute(context.Background(), []string{"aply"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"apply\"") {
		t.Errorf("error = %q, want suggestion for 'apply'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "mugshot",
		Subcommands: []*Command{
			{Name: "show"},
			{Name: "apply"},
		},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "mugshot",
				Summary: "Profile editor",
				Subcommands: []*Command{
					{Name: "show", Summary: "Print the reconciled profile"},
				},
			}

			err := root.Execute(context.Background(), []string{helpArg})
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "mugshot",
		Subcommands: []*Command{
			{Name: "show", Summary: "Print the reconciled profile"},
		},
	}

	err := root.Execute(context.Background(), []string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "mugshot",
		Description: "Keep your name, contact details and photo in sync.",
		Subcommands: []*Command{
			{Name: "show", Summary: "Print the reconciled profile"},
			{Name: "apply", Summary: "Write profile changes"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Change your office phone",
				Command:     "mugshot apply --office-phone 555-2000",
			},
			{
				Description: "Set a new photo",
				Command:     "mugshot photo set ~/Pictures/me.png",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Keep your name, contact details and photo in sync.",
		"Usage:",
		"mugshot <command> [flags]",
		"Commands:",
		"show",
		"Print the reconciled profile",
		"apply",
		"Write profile changes",
		"Examples:",
		"mugshot apply --office-phone 555-2000",
		"mugshot photo set",
		"Run 'mugshot <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "apply",
		Summary: "Write profile changes",
		Usage:   "mugshot apply [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
			flagSet.String("password-file", "", "read the password from a file")
			flagSet.Bool("yes", false, "answer yes to every question")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"mugshot apply [flags]",
		"Flags:",
		"password-file",
		"yes",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "mugshot"}
	photo := &Command{Name: "photo", parent: root}
	set := &Command{Name: "set", parent: photo}

	if got := root.fullName(); got != "mugshot" {
		t.Errorf("root.fullName() = %q, want %q", got, "mugshot")
	}
	if got := photo.fullName(); got != "mugshot photo" {
		t.Errorf("photo.fullName() = %q, want %q", got, "mugshot photo")
	}
	if got := set.fullName(); got != "mugshot photo set" {
		t.Errorf("set.fullName() = %q, want %q", got, "mugshot photo set")
	}
}
