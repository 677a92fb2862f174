// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// AutoConfirmer answers yes to every question (--yes).
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(context.Context, string) (bool, error) {
	return true, nil
}

// LineConfirmer asks yes/no questions on a line-oriented stream. The
// default answer is no; end of input also answers no.
type LineConfirmer struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

func (c *LineConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.reader == nil {
		c.reader = bufio.NewReader(c.Input)
	}

	fmt.Fprintf(c.Output, "%s [y/N] ", question)
	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(c.Output)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
