// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Chfn changes finger information in the account database by running
// "sudo chfn <flag> <value> <user>".
type Chfn struct {
	Runner Runner

	// Sudo and Chfn are the executables, looked up in PATH when not
	// absolute.
	Sudo string
	Chfn string

	// Username is the account being edited.
	Username string

	Logger *slog.Logger
}

// SetFullName replaces the full-name GECOS subfield.
func (c *Chfn) SetFullName(ctx context.Context, credential *Credential, fullName string) error {
	return c.run(ctx, credential, "-f", fullName)
}

// SetHomePhone replaces the home-phone GECOS subfield.
func (c *Chfn) SetHomePhone(ctx context.Context, credential *Credential, phone string) error {
	return c.run(ctx, credential, "-h", phone)
}

// SetOfficePhone replaces the office-phone GECOS subfield. util-linux
// chfn spells the flag -p, shadow-utils chfn spells it -w; both are
// tried and the call succeeds if either does.
func (c *Chfn) SetOfficePhone(ctx context.Context, credential *Credential, phone string) error {
	primary := c.run(ctx, credential, "-p", phone)
	if primary == nil {
		return nil
	}
	if errors.Is(primary, ErrToolMissing) {
		return primary
	}
	c.logger().Debug("office phone flag rejected, trying alternate", "flag", "-p", "alternate", "-w")

	alternate := c.run(ctx, credential, "-w", phone)
	if alternate == nil {
		return nil
	}
	return errors.Join(primary, alternate)
}

func (c *Chfn) run(ctx context.Context, credential *Credential, flag, value string) error {
	if credential == nil || credential.password == nil {
		return fmt.Errorf("chfn %s: no credential", flag)
	}

	args := []string{c.Chfn, flag, value, c.Username}
	status, err := c.Runner.Run(ctx, c.Sudo, args, credential.password)
	if err != nil {
		return fmt.Errorf("chfn %s: %w", flag, err)
	}
	if !status.Success() {
		return fmt.Errorf("%w: chfn %s: %s", ErrCommandFailed, flag, status)
	}
	return nil
}

func (c *Chfn) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
