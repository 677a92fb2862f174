// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import "errors"

var (
	// ErrCancelled means the user dismissed the password prompt.
	ErrCancelled = errors.New("password prompt cancelled")

	// ErrRefused means every allowed attempt failed verification.
	ErrRefused = errors.New("administrative password refused")

	// ErrToolMissing means sudo or chfn is not installed.
	ErrToolMissing = errors.New("required tool not found")

	// ErrCommandFailed means a privileged command ran but did not exit
	// with status 0.
	ErrCommandFailed = errors.New("privileged command failed")

	// ErrTimeout is returned by Transcript when the expected output
	// does not arrive in time.
	ErrTimeout = errors.New("timed out waiting for command output")

	// ErrRejected is returned by Transcript when the command asks for
	// the password again.
	ErrRejected = errors.New("password rejected by command")
)
