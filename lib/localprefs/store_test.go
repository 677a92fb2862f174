// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package localprefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/mugshot/lib/codec"
	"github.com/bureau-foundation/mugshot/lib/identity"
)

func TestStore_MissingFile(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "local.cbor")}

	overrides, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if overrides != (Overrides{}) {
		t.Errorf("Load = %+v, want zero", overrides)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "nested", "local.cbor")}
	want := Overrides{Initials: "JQD", Email: "jane@example.org"}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	info, err := os.Stat(store.Path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestStore_SaveDeterministic(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "local.cbor")}
	overrides := Overrides{Initials: "JD", Email: "j@example.org", Fax: "555"}

	if err := store.Save(overrides); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first, _ := os.ReadFile(store.Path)
	if err := store.Save(overrides); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, _ := os.ReadFile(store.Path)
	if string(first) != string(second) {
		t.Error("saving the same overrides changed the file")
	}
}

func TestStore_NewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.cbor")
	data, err := codec.Marshal(map[string]any{"version": 99})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := (&Store{Path: path}).Load(); err == nil {
		t.Fatal("expected error for newer format version")
	}
}

func TestStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.cbor")
	if err := os.WriteFile(path, []byte{0xff, 0x00}, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := (&Store{Path: path}).Load(); err == nil {
		t.Fatal("expected error for corrupt store")
	}
}

func TestOverrides_Partial(t *testing.T) {
	partial := Overrides{Initials: " JD ", Email: "None", Fax: "555"}.Partial()

	if partial.Source != identity.SourceLocalOverride || !partial.Available {
		t.Errorf("partial = %+v", partial)
	}
	if partial.Initials != "JD" || partial.Email != "" || partial.Fax != "555" {
		t.Errorf("partial record = %+v", partial.Record)
	}
}

func TestFromRecord(t *testing.T) {
	record := identity.Record{FirstName: "Jane", Initials: "JD", Email: "e", Fax: "f", HomePhone: "h"}
	if got := FromRecord(record); got != (Overrides{Initials: "JD", Email: "e", Fax: "f"}) {
		t.Errorf("FromRecord = %+v", got)
	}
}
