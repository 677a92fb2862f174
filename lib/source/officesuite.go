// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"

	"github.com/bureau-foundation/mugshot/lib/identity"
	"github.com/bureau-foundation/mugshot/lib/officeprefs"
)

// OfficeSuite reads the user data block of the office suite profile.
// A missing file is an unavailable source.
type OfficeSuite struct {
	Path string
}

func (o *OfficeSuite) Kind() identity.SourceKind { return identity.SourceOfficeSuite }

func (o *OfficeSuite) Read(ctx context.Context) (identity.Record, error) {
	document, err := officeprefs.Load(o.Path)
	if err != nil {
		return identity.Record{}, err
	}
	return document.Record(), nil
}
