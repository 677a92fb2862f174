// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bureau-foundation/mugshot/lib/identity"
)

// DefaultPasswdPath is the local account database.
const DefaultPasswdPath = "/etc/passwd"

// Passwd reads the GECOS field of the user's passwd entry.
type Passwd struct {
	// Path defaults to DefaultPasswdPath.
	Path     string
	Username string
}

func (p *Passwd) Kind() identity.SourceKind { return identity.SourcePasswd }

func (p *Passwd) Read(ctx context.Context) (identity.Record, error) {
	path := p.Path
	if path == "" {
		path = DefaultPasswdPath
	}

	file, err := os.Open(path)
	if err != nil {
		return identity.Record{}, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ":")
		if len(fields) < 5 || fields[0] != p.Username {
			continue
		}
		return ParseGECOS(fields[4]), nil
	}
	if err := scanner.Err(); err != nil {
		return identity.Record{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return identity.Record{}, fmt.Errorf("%s: %w", path, ErrNotFound)
}

// ParseGECOS splits a GECOS field into its comma-separated subfields:
// full name, office, office phone, home phone. Missing subfields are
// empty; subfields after the fourth are ignored. The office (room
// number) has no place in the record.
func ParseGECOS(gecos string) identity.Record {
	subfields := strings.SplitN(gecos, ",", 5)
	for len(subfields) < 4 {
		subfields = append(subfields, "")
	}

	first, last, initials := identity.SplitName(subfields[0])
	return identity.Record{
		FirstName:   first,
		LastName:    last,
		Initials:    initials,
		OfficePhone: subfields[2],
		HomePhone:   subfields[3],
	}
}
