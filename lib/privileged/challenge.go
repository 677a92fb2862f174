// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/bureau-foundation/mugshot/lib/secret"
)

// DefaultMaxAttempts is the retry budget for the password prompt.
const DefaultMaxAttempts = 3

// PromptRequest describes one password prompt.
type PromptRequest struct {
	// Purpose is shown to the user, e.g. "update your account details".
	Purpose string

	// Attempt counts from 1.
	Attempt     int
	MaxAttempts int

	// Retry is set after a failed verification so the prompt can say
	// "incorrect password, try again".
	Retry bool
}

// Prompter asks the user for a password. It returns [ErrCancelled]
// when the user dismisses the prompt.
type Prompter interface {
	PromptPassword(ctx context.Context, request PromptRequest) (*secret.Buffer, error)
}

// Challenger obtains and verifies the administrative password.
type Challenger struct {
	Prompter Prompter
	Runner   Runner

	// Sudo is the sudo executable.
	Sudo string

	// VerifyArgs are passed to sudo to verify a password. The command
	// must do nothing. Defaults to "-k /bin/true": -k ignores any
	// cached sudo timestamp so the password is actually checked.
	VerifyArgs []string

	// RequiredTools are checked with LookPath before prompting.
	RequiredTools []string

	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)

	Logger *slog.Logger
}

// Obtain prompts for a password until one verifies or maxAttempts
// verifications have failed. A non-positive maxAttempts means
// DefaultMaxAttempts. The returned error is [ErrCancelled],
// [ErrRefused] or wraps [ErrToolMissing] for the three outcomes the
// caller reports differently.
func (c *Challenger) Obtain(ctx context.Context, purpose string, maxAttempts int) (*Credential, error) {
	logger := c.logger()
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for _, tool := range c.RequiredTools {
		if _, err := c.lookPath(tool); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrToolMissing, tool)
		}
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, ErrCancelled
		}

		password, err := c.Prompter.PromptPassword(ctx, PromptRequest{
			Purpose:     purpose,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
			Retry:       attempt > 1,
		})
		if errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) {
			return nil, ErrCancelled
		}
		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}

		status, err := c.Runner.Run(ctx, c.Sudo, c.verifyArgs(), password)
		if errors.Is(err, ErrToolMissing) {
			password.Close()
			return nil, err
		}
		if err == nil && status.Success() {
			logger.Debug("administrative password verified", "attempt", attempt)
			return NewCredential(password), nil
		}

		password.Close()
		logger.Info("administrative password verification failed",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"status", status.String(),
		)
	}

	return nil, ErrRefused
}

func (c *Challenger) verifyArgs() []string {
	if len(c.VerifyArgs) > 0 {
		return c.VerifyArgs
	}
	return []string{"-k", "/bin/true"}
}

func (c *Challenger) lookPath(name string) (string, error) {
	if c.LookPath != nil {
		return c.LookPath(name)
	}
	return exec.LookPath(name)
}

func (c *Challenger) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
