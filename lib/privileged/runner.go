// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/mugshot/lib/secret"
)

// ExitStatus is the outcome of one privileged command.
type ExitStatus struct {
	// Code is the process exit code, or -1 if the process was killed.
	Code int

	// TimedOut is set when the conversation did not finish in time.
	TimedOut bool

	// Rejected is set when the command asked for the password again.
	Rejected bool
}

// Success reports whether the command exited 0 on its own.
func (s ExitStatus) Success() bool {
	return s.Code == 0 && !s.TimedOut && !s.Rejected
}

func (s ExitStatus) String() string {
	switch {
	case s.TimedOut:
		return "timeout"
	case s.Rejected:
		return "password rejected"
	default:
		return fmt.Sprintf("exit status %d", s.Code)
	}
}

// Runner runs a command that may prompt for password. An error is
// returned only when the command could not be started; a command that
// ran and failed reports it through ExitStatus. Implementations wrap
// [ErrToolMissing] when the executable does not exist.
type Runner interface {
	Run(ctx context.Context, name string, args []string, password *secret.Buffer) (ExitStatus, error)
}
