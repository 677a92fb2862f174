// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/mugshot/lib/commit"
	"github.com/bureau-foundation/mugshot/lib/identity"
)

// kindLabels are the user-facing names of commit steps.
var kindLabels = map[commit.Kind]string{
	commit.KindName:                 "Account full name",
	commit.KindPhone:                "Account phone numbers",
	commit.KindDesktopIdentity:      "Desktop account",
	commit.KindOfficeSuite:          "Office suite profile",
	commit.KindImageLocal:           "Profile photo",
	commit.KindImageDesktopIdentity: "Desktop account photo",
	commit.KindImageChat:            "Chat buddy icon",
	commit.KindLocalPreferences:     "Saved preferences",
}

// refusalMessages explain an apply that wrote nothing.
var refusalMessages = map[commit.Reason]string{
	commit.ReasonCredentialCancelled: "No changes were made: the password prompt was cancelled.",
	commit.ReasonCredentialRefused:   "No changes were made: the password was not accepted.",
	commit.ReasonToolMissing:         "No changes were made: a required system tool is not installed.",
	commit.ReasonCredentialError:     "No changes were made: the password could not be read.",
}

// sourceLabels name identity sources in the profile listing.
var sourceLabels = map[identity.SourceKind]string{
	identity.SourceOfficeSuite:     "office suite",
	identity.SourceDesktopIdentity: "desktop account",
	identity.SourceRealName:        "system real name",
	identity.SourcePasswd:          "passwd entry",
	identity.SourceLocalOverride:   "saved preferences",
}

// SourceStatus is one line of the source listing.
type SourceStatus struct {
	Kind      identity.SourceKind `json:"kind"`
	Available bool                `json:"available"`
}

// Printer renders profiles and commit reports with colors suited to
// its writer's terminal.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	theme    Theme
}

// NewPrinter creates a Printer for out. The color profile is detected
// from out and the environment (NO_COLOR, CLICOLOR_FORCE).
func NewPrinter(out io.Writer) *Printer {
	return NewPrinterWithProfile(out, termenv.NewOutput(out).EnvColorProfile())
}

// NewPrinterWithProfile creates a Printer with a fixed color profile.
// termenv.Ascii produces plain text.
func NewPrinterWithProfile(out io.Writer, profile termenv.Profile) *Printer {
	renderer := lipgloss.NewRenderer(out, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return &Printer{out: out, renderer: renderer, theme: DefaultTheme}
}

// Profile prints the reconciled record, the photo location, and which
// sources could be read.
func (printer *Printer) Profile(record identity.Record, photo string, sources []SourceStatus) {
	headerStyle := printer.renderer.NewStyle().Bold(true).Foreground(printer.theme.HeaderForeground)
	labelStyle := printer.renderer.NewStyle().Width(14).Foreground(printer.theme.LabelForeground)
	valueStyle := printer.renderer.NewStyle().Foreground(printer.theme.NormalText)
	faintStyle := printer.renderer.NewStyle().Foreground(printer.theme.FaintText)

	fmt.Fprintln(printer.out, headerStyle.Render("Profile"))
	rows := []struct{ label, value string }{
		{"Name", record.FullName()},
		{"Initials", record.Initials},
		{"Email", record.Email},
		{"Home phone", record.HomePhone},
		{"Office phone", record.OfficePhone},
		{"Fax", record.Fax},
		{"Photo", photo},
	}
	for _, row := range rows {
		value := valueStyle.Render(row.value)
		if row.value == "" {
			value = faintStyle.Render("(not set)")
		}
		fmt.Fprintf(printer.out, "  %s%s\n", labelStyle.Render(row.label), value)
	}

	if len(sources) == 0 {
		return
	}
	fmt.Fprintln(printer.out)
	fmt.Fprintln(printer.out, headerStyle.Render("Sources"))
	for _, status := range sources {
		mark := printer.renderer.NewStyle().Foreground(printer.theme.Success).Render("✓")
		state := "read"
		if !status.Available {
			mark = faintStyle.Render("-")
			state = "unavailable"
		}
		fmt.Fprintf(printer.out, "  %s %s%s\n", mark, labelStyle.Width(20).Render(sourceLabel(status.Kind)), faintStyle.Render(state))
	}
}

// NoChanges reports that the form matched the stored profile.
func (printer *Printer) NoChanges() {
	fmt.Fprintln(printer.out, printer.renderer.NewStyle().Foreground(printer.theme.FaintText).Render("No changes to apply."))
}

// Report prints the result of one commit: a summary line, then one line
// per attempted step.
func (printer *Printer) Report(report commit.Report) {
	headerStyle := printer.renderer.NewStyle().Bold(true)
	faintStyle := printer.renderer.NewStyle().Foreground(printer.theme.FaintText)

	if report.Refusal != "" {
		message, ok := refusalMessages[report.Refusal]
		if !ok {
			message = "No changes were made."
		}
		fmt.Fprintln(printer.out, headerStyle.Foreground(printer.theme.Failure).Render(message))
		if report.RefusalErr != nil && report.Refusal == commit.ReasonToolMissing {
			fmt.Fprintln(printer.out, faintStyle.Render("  "+report.RefusalErr.Error()))
		}
		return
	}

	if report.Success {
		fmt.Fprintln(printer.out, headerStyle.Foreground(printer.theme.Success).Render("Profile updated."))
	} else {
		fmt.Fprintln(printer.out, headerStyle.Foreground(printer.theme.Failure).Render("Some changes could not be saved."))
	}

	labelStyle := printer.renderer.NewStyle().Width(24)
	for _, outcome := range report.Outcomes {
		var mark, detail string
		switch outcome.Status {
		case commit.StatusSuccess:
			mark = printer.renderer.NewStyle().Foreground(printer.theme.Success).Render("✓")
		case commit.StatusSkipped:
			mark = printer.renderer.NewStyle().Foreground(printer.theme.Skipped).Render("-")
			detail = "skipped"
			if outcome.Reason == commit.ReasonDeclined {
				detail = "skipped at your request"
			}
		default:
			mark = printer.renderer.NewStyle().Foreground(printer.theme.Failure).Render("✗")
			detail = "failed"
			if outcome.Err != nil {
				detail = firstLine(outcome.Err.Error())
			}
		}
		line := fmt.Sprintf("  %s %s", mark, labelStyle.Render(kindLabel(outcome.Kind)))
		if detail != "" {
			line += faintStyle.Render(detail)
		}
		fmt.Fprintln(printer.out, strings.TrimRight(line, " "))
	}
}

func kindLabel(kind commit.Kind) string {
	if label, ok := kindLabels[kind]; ok {
		return label
	}
	return string(kind)
}

func sourceLabel(kind identity.SourceKind) string {
	if label, ok := sourceLabels[kind]; ok {
		return label
	}
	return string(kind)
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}
