// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/mugshot/lib/identity"
)

// formField binds one text input to one record field.
type formField struct {
	label string
	field func(record *identity.Record) *string
}

var formFields = []formField{
	{"First name", func(record *identity.Record) *string { return &record.FirstName }},
	{"Last name", func(record *identity.Record) *string { return &record.LastName }},
	{"Initials", func(record *identity.Record) *string { return &record.Initials }},
	{"Email", func(record *identity.Record) *string { return &record.Email }},
	{"Home phone", func(record *identity.Record) *string { return &record.HomePhone }},
	{"Office phone", func(record *identity.Record) *string { return &record.OfficePhone }},
	{"Fax", func(record *identity.Record) *string { return &record.Fax }},
}

// Form is the bubbletea model of the profile edit form: one text input
// per record field, prefilled with the reconciled profile.
type Form struct {
	inputs    []textinput.Model
	focus     int
	submitted bool
	cancelled bool

	keys  KeyMap
	theme Theme
}

// NewForm creates a form prefilled with record. The first field has
// focus.
func NewForm(record identity.Record, theme Theme) Form {
	form := Form{
		inputs: make([]textinput.Model, len(formFields)),
		keys:   DefaultKeyMap,
		theme:  theme,
	}
	for index, field := range formFields {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 256
		input.Placeholder = "not set"
		input.SetValue(*field.field(&record))
		form.inputs[index] = input
	}
	form.inputs[0].Focus()
	return form
}

// Record returns the form values.
func (form Form) Record() identity.Record {
	var record identity.Record
	for index, field := range formFields {
		*field.field(&record) = form.inputs[index].Value()
	}
	return record
}

// Submitted reports whether the user applied the form.
func (form Form) Submitted() bool { return form.submitted }

// Cancelled reports whether the user dismissed the form.
func (form Form) Cancelled() bool { return form.cancelled }

func (form Form) Init() tea.Cmd {
	return textinput.Blink
}

func (form Form) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if keyMessage, ok := message.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMessage, form.keys.Cancel):
			form.cancelled = true
			return form, tea.Quit
		case key.Matches(keyMessage, form.keys.Submit):
			form.submitted = true
			return form, tea.Quit
		case key.Matches(keyMessage, form.keys.Enter):
			if form.focus == len(form.inputs)-1 {
				form.submitted = true
				return form, tea.Quit
			}
			return form, form.moveFocus(1)
		case key.Matches(keyMessage, form.keys.Next):
			return form, form.moveFocus(1)
		case key.Matches(keyMessage, form.keys.Previous):
			return form, form.moveFocus(-1)
		}
	}

	var command tea.Cmd
	form.inputs[form.focus], command = form.inputs[form.focus].Update(message)
	return form, command
}

// moveFocus moves focus by delta, wrapping at either end.
func (form *Form) moveFocus(delta int) tea.Cmd {
	form.inputs[form.focus].Blur()
	form.focus = (form.focus + delta + len(form.inputs)) % len(form.inputs)
	return form.inputs[form.focus].Focus()
}

func (form Form) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(form.theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Width(14).Foreground(form.theme.LabelForeground)
	focusStyle := labelStyle.Foreground(form.theme.FocusForeground).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(form.theme.HelpText)

	var builder strings.Builder
	builder.WriteString(headerStyle.Render("About me"))
	builder.WriteString("\n\n")
	for index, field := range formFields {
		style := labelStyle
		marker := "  "
		if index == form.focus {
			style = focusStyle
			marker = "> "
		}
		builder.WriteString(marker)
		builder.WriteString(style.Render(field.label))
		builder.WriteString(form.inputs[index].View())
		builder.WriteString("\n")
	}

	var help []string
	for _, binding := range form.keys.ShortHelp() {
		help = append(help, binding.Help().Key+" "+binding.Help().Desc)
	}
	builder.WriteString("\n")
	builder.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	builder.WriteString("\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(form.theme.BorderColor).
		Padding(0, 1).
		Render(builder.String())
}

// RunForm shows the edit form on input/output and blocks until the
// user applies or dismisses it. The returned bool is true when the
// form was applied.
func RunForm(ctx context.Context, record identity.Record, input io.Reader, output io.Writer) (identity.Record, bool, error) {
	program := tea.NewProgram(NewForm(record, DefaultTheme),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	)
	final, err := program.Run()
	if err != nil {
		return identity.Record{}, false, fmt.Errorf("edit form: %w", err)
	}
	form, ok := final.(Form)
	if !ok {
		return identity.Record{}, false, fmt.Errorf("edit form: unexpected model %T", final)
	}
	return form.Record(), form.Submitted(), nil
}
