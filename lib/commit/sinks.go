// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"context"

	"github.com/bureau-foundation/mugshot/lib/chatprefs"
	"github.com/bureau-foundation/mugshot/lib/identity"
	"github.com/bureau-foundation/mugshot/lib/localprefs"
	"github.com/bureau-foundation/mugshot/lib/privileged"
)

// CredentialProvider obtains the administrative password.
// *privileged.Challenger implements it.
type CredentialProvider interface {
	Obtain(ctx context.Context, purpose string, maxAttempts int) (*privileged.Credential, error)
}

// AccountDatabase changes the system account's finger information.
// *privileged.Chfn implements it.
type AccountDatabase interface {
	SetFullName(ctx context.Context, credential *privileged.Credential, fullName string) error
	SetHomePhone(ctx context.Context, credential *privileged.Credential, phone string) error
	SetOfficePhone(ctx context.Context, credential *privileged.Credential, phone string) error
}

// DesktopIdentity is the desktop identity service's record of the
// user. *accounts.User implements it.
type DesktopIdentity interface {
	SetRealName(ctx context.Context, name string) error
	SetEmail(ctx context.Context, email string) error
	SetIconFile(ctx context.Context, path string) error
}

// OfficeSuite is the office suite profile. *officeprefs.File
// implements it.
type OfficeSuite interface {
	Update(record identity.Record) error
}

// PhotoCache is the local photo file. *photo.Cache implements it.
type PhotoCache interface {
	Replace(source string) (changed bool, err error)
	Remove() (existed bool, err error)
	Location() string
}

// BuddyIcon is the chat client's buddy icon. *chatprefs.BuddyIcon
// implements it.
type BuddyIcon interface {
	Set(ctx context.Context, iconPath string) (chatprefs.Method, error)
}

// PreferencesStore is the local override store. *localprefs.Store
// implements it.
type PreferencesStore interface {
	Save(overrides localprefs.Overrides) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Questions asked through the Confirmer.
const (
	QuestionOfficeSuite = "Update your office suite details too?"
	QuestionBuddyIcon   = "Update your chat buddy icon too?"
)
