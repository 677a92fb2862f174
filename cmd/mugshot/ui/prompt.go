// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/bureau-foundation/mugshot/lib/privileged"
	"github.com/bureau-foundation/mugshot/lib/secret"
)

// ErrNoTerminal is returned when a password is needed but there is no
// terminal to ask on.
var ErrNoTerminal = errors.New("no terminal for the password prompt")

// TerminalPrompter reads the password from a terminal with echo
// disabled. An empty line or end of input cancels.
type TerminalPrompter struct {
	// Terminal defaults to /dev/tty, opened for each prompt.
	Terminal *os.File

	// Output receives the prompt text. Defaults to Terminal.
	Output io.Writer
}

func (p *TerminalPrompter) PromptPassword(ctx context.Context, request privileged.PromptRequest) (*secret.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	terminal := p.Terminal
	if terminal == nil {
		opened, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoTerminal, err)
		}
		defer opened.Close()
		terminal = opened
	}
	fd := int(terminal.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s is not a terminal", ErrNoTerminal, terminal.Name())
	}

	output := p.Output
	if output == nil {
		output = terminal
	}

	if request.Retry {
		fmt.Fprintln(output, "Sorry, try again.")
	}
	fmt.Fprintf(output, "Password to %s (attempt %d of %d, empty to cancel): ",
		request.Purpose, request.Attempt, request.MaxAttempts)

	password, err := term.ReadPassword(fd)
	fmt.Fprintln(output)
	defer secret.Zero(password)
	if errors.Is(err, io.EOF) {
		return nil, privileged.ErrCancelled
	}
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	if len(password) == 0 {
		return nil, privileged.ErrCancelled
	}
	return secret.NewFromBytes(password)
}

// FilePrompter answers the first prompt with the contents of a file,
// for unattended use. A second prompt means the file's password was
// wrong, so it is refused rather than retried.
type FilePrompter struct {
	Path string
}

func (p *FilePrompter) PromptPassword(_ context.Context, request privileged.PromptRequest) (*secret.Buffer, error) {
	if request.Retry {
		return nil, fmt.Errorf("password from %s: %w", p.Path, privileged.ErrRefused)
	}
	return secret.ReadFile(p.Path)
}
