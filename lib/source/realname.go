// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"os/user"
	"strings"

	"github.com/bureau-foundation/mugshot/lib/identity"
)

// unknownRealName is what desktop libraries report when the account
// has no real name.
const unknownRealName = "Unknown"

// RealName reads the operating system's real name for the user through
// the system's user database (NSS when cgo is enabled).
type RealName struct {
	Username string

	// Lookup defaults to user.Lookup.
	Lookup func(username string) (*user.User, error)
}

func (r *RealName) Kind() identity.SourceKind { return identity.SourceRealName }

func (r *RealName) Read(ctx context.Context) (identity.Record, error) {
	lookup := r.Lookup
	if lookup == nil {
		lookup = user.Lookup
	}

	account, err := lookup(r.Username)
	if err != nil {
		return identity.Record{}, err
	}

	// Some lookups return the whole GECOS field; only the first
	// subfield is the name.
	name, _, _ := strings.Cut(account.Name, ",")
	name = strings.TrimSpace(name)
	if name == "" || name == unknownRealName {
		return identity.Record{}, fmt.Errorf("real name of %s: %w", r.Username, ErrNotFound)
	}

	first, last, initials := identity.SplitName(name)
	return identity.Record{FirstName: first, LastName: last, Initials: initials}, nil
}
