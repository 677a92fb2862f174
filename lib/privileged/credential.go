// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import (
	"log/slog"

	"github.com/bureau-foundation/mugshot/lib/secret"
)

// Credential is a verified administrative password, valid for one
// apply action. The zero value is not usable; obtain one from
// [Challenger.Obtain].
type Credential struct {
	password *secret.Buffer
}

// NewCredential wraps an already verified password. Ownership of
// password passes to the Credential.
func NewCredential(password *secret.Buffer) *Credential {
	return &Credential{password: password}
}

// Close releases the password. Close is idempotent and safe on nil.
func (c *Credential) Close() error {
	if c == nil || c.password == nil {
		return nil
	}
	return c.password.Close()
}

// String never reveals the password.
func (c *Credential) String() string { return "[redacted]" }

// LogValue keeps the password out of structured logs.
func (c *Credential) LogValue() slog.Value { return slog.StringValue("[redacted]") }
