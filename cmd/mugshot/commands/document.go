// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/mugshot/lib/identity"
)

// profileEdits are the changes requested on the command line. A nil
// field is left as loaded; a non-nil empty field clears it.
type profileEdits struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Initials    *string `json:"initials"`
	Email       *string `json:"email"`
	Fax         *string `json:"fax"`
	HomePhone   *string `json:"home_phone"`
	OfficePhone *string `json:"office_phone"`

	// Photo is the path of a new profile photo.
	Photo *string `json:"photo"`

	// RemovePhoto asks for the profile photo to be removed.
	RemovePhoto bool `json:"remove_photo"`
}

// parseProfileDocument reads a profile document: a JSON object with
// comments and trailing commas allowed, holding any of the record
// fields plus "photo" and "remove_photo". Unknown keys are rejected.
func parseProfileDocument(data []byte) (profileEdits, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.DisallowUnknownFields()

	var edits profileEdits
	if err := decoder.Decode(&edits); err != nil {
		if errors.Is(err, io.EOF) {
			return profileEdits{}, errors.New("profile document is empty")
		}
		return profileEdits{}, err
	}
	if decoder.More() {
		return profileEdits{}, errors.New("profile document has content after the top-level object")
	}
	return edits, nil
}

// readProfileDocument parses the profile document at path.
func readProfileDocument(path string) (profileEdits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profileEdits{}, err
	}
	edits, err := parseProfileDocument(data)
	if err != nil {
		return profileEdits{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return edits, nil
}

// overlay returns e with every field set in other replacing its own.
func (e profileEdits) overlay(other profileEdits) profileEdits {
	replace := func(field **string, value *string) {
		if value != nil {
			*field = value
		}
	}
	replace(&e.FirstName, other.FirstName)
	replace(&e.LastName, other.LastName)
	replace(&e.Initials, other.Initials)
	replace(&e.Email, other.Email)
	replace(&e.Fax, other.Fax)
	replace(&e.HomePhone, other.HomePhone)
	replace(&e.OfficePhone, other.OfficePhone)
	replace(&e.Photo, other.Photo)
	e.RemovePhoto = e.RemovePhoto || other.RemovePhoto
	return e
}

// empty reports whether e requests no change at all.
func (e profileEdits) empty() bool {
	return e.FirstName == nil && e.LastName == nil && e.Initials == nil &&
		e.Email == nil && e.Fax == nil && e.HomePhone == nil &&
		e.OfficePhone == nil && e.Photo == nil && !e.RemovePhoto
}

// applyTo returns record with the requested field edits applied.
func (e profileEdits) applyTo(record identity.Record) identity.Record {
	assign := func(field *string, value *string) {
		if value != nil {
			*field = *value
		}
	}
	assign(&record.FirstName, e.FirstName)
	assign(&record.LastName, e.LastName)
	assign(&record.Initials, e.Initials)
	assign(&record.Email, e.Email)
	assign(&record.Fax, e.Fax)
	assign(&record.HomePhone, e.HomePhone)
	assign(&record.OfficePhone, e.OfficePhone)
	return record
}

// optionalString is a string flag that records whether it was given,
// so that an explicit empty value can clear a field.
type optionalString struct {
	target **string
}

func (o optionalString) String() string {
	if o.target == nil || *o.target == nil {
		return ""
	}
	return **o.target
}

func (o optionalString) Set(value string) error {
	*o.target = &value
	return nil
}

func (o optionalString) Type() string { return "string" }
