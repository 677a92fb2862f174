// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"strings"
)

// ImageRequest is what the user asked for regarding the profile photo.
type ImageRequest int

const (
	// ImageUntouched means no photo was chosen in this session.
	ImageUntouched ImageRequest = iota

	// ImageReplace means a new photo was chosen; ImageState.Pending
	// holds its path.
	ImageReplace

	// ImageRemove means the user explicitly removed the photo.
	ImageRemove
)

// String returns the request name used in logs.
func (r ImageRequest) String() string {
	switch r {
	case ImageUntouched:
		return "untouched"
	case ImageReplace:
		return "replace"
	case ImageRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// ImageState tracks the pending photo against the last committed one.
type ImageState struct {
	Request ImageRequest

	// Pending is the path of the newly chosen photo. Only meaningful
	// when Request is ImageReplace.
	Pending string

	// Committed is the path of the photo last written to the local
	// cache, or empty when there is none.
	Committed string
}

// Dirty reports whether committing the image state would change
// anything.
func (s ImageState) Dirty() bool {
	switch s.Request {
	case ImageReplace:
		return s.Pending != "" && s.Pending != s.Committed
	case ImageRemove:
		return s.Committed != ""
	default:
		return false
	}
}

// SinkAvailability tells the detector which optional sinks exist.
type SinkAvailability struct {
	// DesktopIdentity is true when the desktop account service
	// answered the user lookup.
	DesktopIdentity bool

	// OfficeSuite is true when the office suite preference file
	// exists on disk.
	OfficeSuite bool
}

// DirtySet names the sink groups that need a write.
type DirtySet struct {
	// Name is set when first name, last name or initials changed.
	Name bool

	// Phone is set when the home or office phone changed.
	Phone bool

	// DesktopIdentity is set when first name, last name or email
	// changed and the desktop account service is available.
	DesktopIdentity bool

	// OfficeSuite is set when any tracked field changed and the office
	// suite preference file exists.
	OfficeSuite bool

	// LocalPreferences is set when the name block, email or fax
	// changed. These are the fields the local override layer stores.
	LocalPreferences bool

	// Image is set when the photo must be written or removed.
	Image bool
}

// Empty reports whether no sink needs a write.
func (d DirtySet) Empty() bool {
	return d == DirtySet{}
}

// RequiresCredential reports whether any privileged sink is dirty.
func (d DirtySet) RequiresCredential() bool {
	return d.Name || d.Phone
}

// Names lists the dirty groups for logging.
func (d DirtySet) Names() []string {
	var names []string
	if d.Name {
		names = append(names, "name")
	}
	if d.Phone {
		names = append(names, "phone")
	}
	if d.DesktopIdentity {
		names = append(names, "desktop-identity")
	}
	if d.OfficeSuite {
		names = append(names, "office-suite")
	}
	if d.LocalPreferences {
		names = append(names, "local-preferences")
	}
	if d.Image {
		names = append(names, "image")
	}
	return names
}

// DetectChanges compares the form values against the baseline. A field
// has changed when the trimmed values differ; comparison is exact and
// case-sensitive, with no normalization of phone number formatting.
// The function is pure, so calling it again with the same inputs
// yields the same set.
func DetectChanges(baseline, current Record, image ImageState, sinks SinkAvailability) DirtySet {
	first := changed(baseline.FirstName, current.FirstName)
	last := changed(baseline.LastName, current.LastName)
	initials := changed(baseline.Initials, current.Initials)
	email := changed(baseline.Email, current.Email)
	fax := changed(baseline.Fax, current.Fax)
	home := changed(baseline.HomePhone, current.HomePhone)
	office := changed(baseline.OfficePhone, current.OfficePhone)

	var dirty DirtySet
	dirty.Name = first || last || initials
	dirty.Phone = home || office
	dirty.DesktopIdentity = sinks.DesktopIdentity && (first || last || email)
	dirty.OfficeSuite = sinks.OfficeSuite &&
		(dirty.Name || dirty.Phone || email || fax)
	dirty.LocalPreferences = dirty.Name || email || fax
	dirty.Image = image.Dirty()
	return dirty
}

func changed(baseline, current string) bool {
	return strings.TrimSpace(baseline) != strings.TrimSpace(current)
}
