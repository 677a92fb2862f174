// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui holds the terminal collaborators of the mugshot CLI: the
// password prompter and yes/no confirmer the commit orchestrator calls
// back into, the bubbletea edit form, and the lipgloss printer for
// profiles and commit reports.
//
// Nothing here knows how stores are written. Commands hand a
// [TerminalPrompter] or [FilePrompter] to privileged.Challenger and a
// confirmer to commit.Orchestrator, then pass the resulting report to
// [Printer.Report].
package ui
