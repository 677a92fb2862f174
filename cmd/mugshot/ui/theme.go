// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of mugshot's terminal output. All colors use
// lipgloss ANSI 256-color codes; the printer downsamples them to the
// terminal's profile.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Headings and field labels.
	HeaderForeground lipgloss.Color
	LabelForeground  lipgloss.Color

	// Outcome colors.
	Success lipgloss.Color
	Failure lipgloss.Color
	Skipped lipgloss.Color

	// Form chrome.
	FocusForeground lipgloss.Color
	BorderColor     lipgloss.Color
	HelpText        lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	LabelForeground:  lipgloss.Color("75"), // blue

	Success: lipgloss.Color("114"), // green
	Failure: lipgloss.Color("196"), // red
	Skipped: lipgloss.Color("220"), // amber

	FocusForeground: lipgloss.Color("212"),
	BorderColor:     lipgloss.Color("240"),
	HelpText:        lipgloss.Color("241"),
}
