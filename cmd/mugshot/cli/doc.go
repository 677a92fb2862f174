// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the mugshot CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/mugshot/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// Flags defined on a command that also has subcommands are global:
// they are parsed before dispatch, so "mugshot -v apply" works. The
// logger passed to Run comes from the nearest [Command.Logger] up the
// tree and is built after all flags are parsed.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Commands return categorised [ToolError] values for bad input and
// [ExitError] when they have already reported a failure themselves.
package cli
