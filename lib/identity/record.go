// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import "strings"

// Record is the canonical user profile. An empty string means the
// field is unset.
type Record struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Initials    string `json:"initials"`
	Email       string `json:"email"`
	Fax         string `json:"fax"`
	HomePhone   string `json:"home_phone"`
	OfficePhone string `json:"office_phone"`
}

// FullName joins first and last name with a single space, omitting
// whichever part is empty.
func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Normalize returns a copy with every field trimmed and the "none"
// placeholder cleared.
func (r Record) Normalize() Record {
	return Record{
		FirstName:   normalizeField(r.FirstName),
		LastName:    normalizeField(r.LastName),
		Initials:    normalizeField(r.Initials),
		Email:       normalizeField(r.Email),
		Fax:         normalizeField(r.Fax),
		HomePhone:   normalizeField(r.HomePhone),
		OfficePhone: normalizeField(r.OfficePhone),
	}
}

// SourceKind names an identity source.
type SourceKind string

const (
	// SourceOfficeSuite is the office suite's user profile file.
	SourceOfficeSuite SourceKind = "office-suite"

	// SourceDesktopIdentity is the desktop account service.
	SourceDesktopIdentity SourceKind = "desktop-identity"

	// SourceRealName is the operating system's real-name lookup.
	SourceRealName SourceKind = "os-real-name"

	// SourcePasswd is the passwd directory entry (GECOS field).
	SourcePasswd SourceKind = "passwd"

	// SourceLocalOverride is the application's own preference store.
	SourceLocalOverride SourceKind = "local-override"
)

// Precedence is the order in which sources are consulted for the name
// block and for the per-field fallback. The office suite is not part of
// it: it provides the baseline that the scan starts from.
var Precedence = []SourceKind{
	SourceDesktopIdentity,
	SourceRealName,
	SourcePasswd,
}

// Partial is the contribution of a single source. When Available is
// false the Record is ignored entirely.
type Partial struct {
	Source    SourceKind
	Available bool
	Record
}

// Unavailable returns a Partial marking source as unreadable.
func Unavailable(source SourceKind) Partial {
	return Partial{Source: source}
}

// Normalize returns a copy with fields normalized and initials derived
// from the name when the source did not supply any.
func (p Partial) Normalize() Partial {
	p.Record = p.Record.Normalize()
	if p.Initials == "" {
		p.Initials = DeriveInitials(p.FirstName, p.LastName)
	}
	return p
}

// noneSentinel is written by chfn and some passwd tooling to mean
// "unset".
const noneSentinel = "none"

func normalizeField(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, noneSentinel) {
		return ""
	}
	return value
}
