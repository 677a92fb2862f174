// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/mugshot/lib/localprefs"
	"github.com/bureau-foundation/mugshot/lib/testutil"
)

func TestRoot_Subcommands(t *testing.T) {
	root := Root()
	names := make(map[string]bool)
	for _, sub := range root.Subcommands {
		names[sub.Name] = true
	}
	for _, want := range []string{"show", "apply", "edit", "photo", "preferences", "version"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestRoot_UnknownCommandSuggests(t *testing.T) {
	err := Root().Execute(context.Background(), []string{"shwo"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"show"`) {
		t.Errorf("error = %q, want suggestion of show", err)
	}
}

func TestApplyCommand_RequiresAChange(t *testing.T) {
	err := Root().Execute(context.Background(), []string{"apply"})
	if err == nil || !strings.Contains(err.Error(), "nothing to change") {
		t.Errorf("error = %v, want nothing to change", err)
	}
}

func TestApplyCommand_PhotoConflict(t *testing.T) {
	err := Root().Execute(context.Background(), []string{"apply", "--photo", "me.png", "--remove-photo"})
	if err == nil || !strings.Contains(err.Error(), "cannot be requested together") {
		t.Errorf("error = %v, want conflict", err)
	}
}

func TestApplyCommand_BadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.jsonc")
	testutil.WriteFile(t, path, `{"nickname": "JD"}`)
	err := Root().Execute(context.Background(), []string{"apply", "--from", path})
	if err == nil || !strings.Contains(err.Error(), "nickname") {
		t.Errorf("error = %v, want unknown field", err)
	}
}

func TestPrintPreferences_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.cbor")

	var output bytes.Buffer
	if err := printPreferences(path, &output); err != nil {
		t.Fatalf("printPreferences: %v", err)
	}
	if !strings.Contains(output.String(), "No saved preferences") {
		t.Errorf("output = %q", output.String())
	}
}

func TestPrintPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.cbor")
	store := &localprefs.Store{Path: path}
	if err := store.Save(localprefs.Overrides{Initials: "JtD", Email: "jane@example.org"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var output bytes.Buffer
	if err := printPreferences(path, &output); err != nil {
		t.Fatalf("printPreferences: %v", err)
	}
	for _, want := range []string{`"email": "jane@example.org"`, `"initials": "JtD"`} {
		if !strings.Contains(output.String(), want) {
			t.Errorf("output missing %s:\n%s", want, output.String())
		}
	}
}

func TestPrintPreferences_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.cbor")
	testutil.WriteFile(t, path, "\xff\xff")
	if err := printPreferences(path, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}
