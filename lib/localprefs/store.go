// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package localprefs stores mugshot's own copy of the fields that no
// system database holds reliably: initials, email and fax. Values found
// here override whatever the other sources reported.
//
// The store is a single CBOR file, read once when the profile is loaded
// and written once at the end of an apply.
package localprefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/mugshot/lib/atomicfile"
	"github.com/bureau-foundation/mugshot/lib/codec"
	"github.com/bureau-foundation/mugshot/lib/identity"
)

// formatVersion is written into every store. Load rejects stores from
// a newer major format.
const formatVersion = 1

// Overrides are the locally stored values. Empty means "no override".
type Overrides struct {
	Initials string `cbor:"initials,omitempty"`
	Email    string `cbor:"email,omitempty"`
	Fax      string `cbor:"fax,omitempty"`
}

type storeFile struct {
	Version   int       `cbor:"version"`
	Overrides Overrides `cbor:"overrides"`
}

// Store reads and writes the override file at Path.
type Store struct {
	Path string
}

// Load reads the store. A missing file yields zero Overrides and no
// error.
func (s *Store) Load() (Overrides, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Overrides{}, nil
	}
	if err != nil {
		return Overrides{}, fmt.Errorf("reading local preferences: %w", err)
	}

	var file storeFile
	if err := codec.Unmarshal(data, &file); err != nil {
		return Overrides{}, fmt.Errorf("decoding local preferences %s: %w", s.Path, err)
	}
	if file.Version > formatVersion {
		return Overrides{}, fmt.Errorf("local preferences %s: format version %d is newer than supported version %d",
			s.Path, file.Version, formatVersion)
	}
	return file.Overrides, nil
}

// Save replaces the store with overrides, creating the parent
// directory if needed.
func (s *Store) Save(overrides Overrides) error {
	data, err := codec.Marshal(storeFile{Version: formatVersion, Overrides: overrides})
	if err != nil {
		return fmt.Errorf("encoding local preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("creating local preferences directory: %w", err)
	}
	return atomicfile.Write(s.Path, data, 0o600)
}

// Partial converts the store contents into a reconciliation input. The
// store is always available; absent values are simply empty.
func (o Overrides) Partial() identity.Partial {
	return identity.Partial{
		Source:    identity.SourceLocalOverride,
		Available: true,
		Record: identity.Record{
			Initials: o.Initials,
			Email:    o.Email,
			Fax:      o.Fax,
		}.Normalize(),
	}
}

// FromRecord extracts the overridable fields of record.
func FromRecord(record identity.Record) Overrides {
	return Overrides{
		Initials: record.Initials,
		Email:    record.Email,
		Fax:      record.Fax,
	}
}
