// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/mugshot/lib/chatprefs"
	"github.com/bureau-foundation/mugshot/lib/identity"
	"github.com/bureau-foundation/mugshot/lib/localprefs"
	"github.com/bureau-foundation/mugshot/lib/privileged"
	"github.com/bureau-foundation/mugshot/lib/secret"
)

// journal records every store call in order so tests can assert both
// what was written and the sequence.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

type fakeCredentials struct {
	journal *journal
	err     error
}

func (f *fakeCredentials) Obtain(_ context.Context, _ string, maxAttempts int) (*privileged.Credential, error) {
	f.journal.add("obtain credential (%d attempts)", maxAttempts)
	if f.err != nil {
		return nil, f.err
	}
	password, err := secret.NewFromBytes([]byte("hunter2"))
	if err != nil {
		return nil, err
	}
	return privileged.NewCredential(password), nil
}

type fakeAccounts struct {
	journal   *journal
	failName  bool
	failHome  bool
	failPhone bool
}

func (f *fakeAccounts) SetFullName(_ context.Context, credential *privileged.Credential, name string) error {
	f.journal.add("chfn -f %q", name)
	if credential == nil {
		return fmt.Errorf("no credential")
	}
	if f.failName {
		return privileged.ErrCommandFailed
	}
	return nil
}

func (f *fakeAccounts) SetHomePhone(_ context.Context, _ *privileged.Credential, phone string) error {
	f.journal.add("chfn -h %q", phone)
	if f.failHome {
		return privileged.ErrCommandFailed
	}
	return nil
}

func (f *fakeAccounts) SetOfficePhone(_ context.Context, _ *privileged.Credential, phone string) error {
	f.journal.add("chfn -p %q", phone)
	if f.failPhone {
		return privileged.ErrCommandFailed
	}
	return nil
}

type fakeDesktop struct {
	journal *journal
	fail    bool
}

func (f *fakeDesktop) SetRealName(_ context.Context, name string) error {
	f.journal.add("desktop real name %q", name)
	if f.fail {
		return fmt.Errorf("permission denied")
	}
	return nil
}

func (f *fakeDesktop) SetEmail(_ context.Context, email string) error {
	f.journal.add("desktop email %q", email)
	if f.fail {
		return fmt.Errorf("permission denied")
	}
	return nil
}

func (f *fakeDesktop) SetIconFile(_ context.Context, path string) error {
	f.journal.add("desktop icon %q", path)
	if f.fail {
		return fmt.Errorf("permission denied")
	}
	return nil
}

type fakeOfficeSuite struct {
	journal *journal
	fail    bool
}

func (f *fakeOfficeSuite) Update(record identity.Record) error {
	f.journal.add("office suite %s", record.FullName())
	if f.fail {
		return fmt.Errorf("read-only file system")
	}
	return nil
}

type fakePhoto struct {
	journal   *journal
	unchanged bool
	existed   bool
	fail      bool
}

func (f *fakePhoto) Replace(source string) (bool, error) {
	f.journal.add("photo replace %q", source)
	if f.fail {
		return false, fmt.Errorf("disk full")
	}
	return !f.unchanged, nil
}

func (f *fakePhoto) Remove() (bool, error) {
	f.journal.add("photo remove")
	if f.fail {
		return false, fmt.Errorf("permission denied")
	}
	return f.existed, nil
}

func (f *fakePhoto) Location() string { return "/home/jane/.face" }

type fakeBuddyIcon struct {
	journal *journal
	fail    bool
}

func (f *fakeBuddyIcon) Set(_ context.Context, path string) (chatprefs.Method, error) {
	f.journal.add("buddy icon %q", path)
	if f.fail {
		return chatprefs.MethodLive, fmt.Errorf("no reply")
	}
	return chatprefs.MethodPrefsFile, nil
}

type fakePreferences struct {
	journal *journal
	saved   *localprefs.Overrides
	fail    bool
}

func (f *fakePreferences) Save(overrides localprefs.Overrides) error {
	f.journal.add("local preferences %+v", overrides)
	if f.fail {
		return fmt.Errorf("permission denied")
	}
	f.saved = &overrides
	return nil
}

// fakeConfirmer answers questions from a map; unknown questions are
// answered yes.
type fakeConfirmer struct {
	journal *journal
	answers map[string]bool
}

func (f *fakeConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	f.journal.add("confirm %q", question)
	if answer, ok := f.answers[question]; ok {
		return answer, nil
	}
	return true, nil
}

// fixture wires an Orchestrator to fakes sharing one journal.
type fixture struct {
	journal     *journal
	credentials *fakeCredentials
	accounts    *fakeAccounts
	desktop     *fakeDesktop
	office      *fakeOfficeSuite
	photo       *fakePhoto
	buddy       *fakeBuddyIcon
	preferences *fakePreferences
	confirmer   *fakeConfirmer
}

func newFixture() *fixture {
	j := &journal{}
	return &fixture{
		journal:     j,
		credentials: &fakeCredentials{journal: j},
		accounts:    &fakeAccounts{journal: j},
		desktop:     &fakeDesktop{journal: j},
		office:      &fakeOfficeSuite{journal: j},
		photo:       &fakePhoto{journal: j},
		buddy:       &fakeBuddyIcon{journal: j},
		preferences: &fakePreferences{journal: j},
		confirmer:   &fakeConfirmer{journal: j, answers: map[string]bool{}},
	}
}

// orchestrator builds an Orchestrator. withDesktop and withOffice
// control whether the optional stores are present.
func (f *fixture) orchestrator(withDesktop, withOffice bool) *Orchestrator {
	orchestrator := &Orchestrator{
		Credentials: f.credentials,
		Accounts:    f.accounts,
		Photo:       f.photo,
		BuddyIcon:   f.buddy,
		Preferences: f.preferences,
		Confirmer:   f.confirmer,
	}
	if withDesktop {
		orchestrator.Desktop = f.desktop
	}
	if withOffice {
		orchestrator.OfficeSuite = f.office
	}
	return orchestrator
}
