// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"

	"github.com/bureau-foundation/mugshot/lib/accounts"
	"github.com/bureau-foundation/mugshot/lib/identity"
)

// DesktopAccount reads the user's desktop identity properties.
// *accounts.User implements it.
type DesktopAccount interface {
	Properties(ctx context.Context) (accounts.Properties, error)
}

// DesktopIdentity reads the real name and email from the desktop
// identity service. A nil Account means the service is unavailable.
type DesktopIdentity struct {
	Account DesktopAccount
}

func (d *DesktopIdentity) Kind() identity.SourceKind { return identity.SourceDesktopIdentity }

func (d *DesktopIdentity) Read(ctx context.Context) (identity.Record, error) {
	if d.Account == nil {
		return identity.Record{}, accounts.ErrUnavailable
	}
	properties, err := d.Account.Properties(ctx)
	if err != nil {
		return identity.Record{}, err
	}

	first, last, initials := identity.SplitName(properties.RealName)
	return identity.Record{
		FirstName: first,
		LastName:  last,
		Initials:  initials,
		Email:     properties.Email,
	}, nil
}
