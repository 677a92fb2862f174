// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package officeprefs

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/mugshot/lib/identity"
	"github.com/bureau-foundation/mugshot/lib/testutil"
)

const itemPrefix = `<item oor:path="/org.openoffice.UserProfile/Data"><prop oor:name="`

func item(name, valueElement string) string {
	return itemPrefix + name + `" oor:op="fuse">` + valueElement + `</prop></item>`
}

// sampleDocument resembles a real profile: a header, unrelated items,
// some tracked entries and the closing tag without a final newline.
var sampleDocument = strings.Join([]string{
	`<?xml version="1.0" encoding="UTF-8"?>`,
	`<oor:items xmlns:oor="http://openoffice.org/2001/registry" xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`,
	`<item oor:path="/org.openoffice.Office.Common/Misc"><prop oor:name="FirstRun" oor:op="fuse"><value>false</value></prop></item>`,
	item("givenname", "<value>Jane</value>"),
	item("sn", "<value>Doe &amp; Sons</value>"),
	item("mail", "<value/>"),
	`<item oor:path="/org.openoffice.UserProfile/Data"><prop oor:name="city" oor:op="fuse"><value>Springfield</value></prop></item>`,
	item("telephonenumber", "<value>none</value>"),
	`</oor:items>`,
}, "\n")

func TestParse_RoundTripUnchanged(t *testing.T) {
	for _, input := range []string{
		sampleDocument,
		sampleDocument + "\n",
		strings.ReplaceAll(sampleDocument, "\n", "\r\n"),
		"",
		"not xml at all\n\n",
	} {
		if got := string(Parse([]byte(input)).Bytes()); got != input {
			t.Errorf("round trip changed the document:\ngot  %q\nwant %q", got, input)
		}
	}
}

func TestDocument_Record(t *testing.T) {
	record := Parse([]byte(sampleDocument)).Record()
	want := identity.Record{FirstName: "Jane", LastName: "Doe & Sons"}
	if record != want {
		t.Errorf("Record() = %+v, want %+v", record, want)
	}
}

func TestDocument_ValueLastOccurrenceWins(t *testing.T) {
	document := Parse([]byte(strings.Join([]string{
		item("givenname", "<value>First</value>"),
		item("givenname", "<value>Second</value>"),
	}, "\n")))

	value, found := document.Value(EntryGivenName)
	if !found || value != "Second" {
		t.Errorf("Value = %q, %v; want Second, true", value, found)
	}
	if _, found := document.Value(EntryFax); found {
		t.Error("absent entry reported as found")
	}
}

func TestDocument_ApplyUnchangedKeepsBytes(t *testing.T) {
	document := Parse([]byte(sampleDocument))
	record := identity.Record{FirstName: "Jane", LastName: "Doe & Sons"}
	if err := document.Apply(record); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	output := string(document.Bytes())
	// Lines whose value is unchanged keep their exact bytes.
	for _, unchanged := range []string{
		item("givenname", "<value>Jane</value>"),
		item("sn", "<value>Doe &amp; Sons</value>"),
		item("mail", "<value/>"),
		`<prop oor:name="city" oor:op="fuse"><value>Springfield</value>`,
		`<prop oor:name="FirstRun" oor:op="fuse"><value>false</value>`,
	} {
		if !strings.Contains(output, unchanged) {
			t.Errorf("output lost %q", unchanged)
		}
	}
	// The stored placeholder differs from the cleared value.
	if !strings.Contains(output, item("telephonenumber", "<value/>")) {
		t.Error("placeholder telephone number not cleared")
	}
}

func TestDocument_ApplyReplacesAndAppends(t *testing.T) {
	document := Parse([]byte(sampleDocument))
	record := identity.Record{
		FirstName:   "Janet",
		LastName:    "Doe",
		Initials:    "JD",
		Email:       "jane@example.org",
		HomePhone:   "555-0100",
		OfficePhone: "555-0199",
		Fax:         "<fax>",
	}
	if err := document.Apply(record); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	want := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<oor:items xmlns:oor="http://openoffice.org/2001/registry" xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`,
		`<item oor:path="/org.openoffice.Office.Common/Misc"><prop oor:name="FirstRun" oor:op="fuse"><value>false</value></prop></item>`,
		item("givenname", "<value>Janet</value>"),
		item("sn", "<value>Doe</value>"),
		item("mail", "<value>jane@example.org</value>"),
		`<item oor:path="/org.openoffice.UserProfile/Data"><prop oor:name="city" oor:op="fuse"><value>Springfield</value></prop></item>`,
		item("telephonenumber", "<value>555-0199</value>"),
		item("initials", "<value>JD</value>"),
		item("homephone", "<value>555-0100</value>"),
		item("facsimiletelephonenumber", "<value>&lt;fax&gt;</value>"),
		`</oor:items>`,
	}, "\n")
	if got := string(document.Bytes()); got != want {
		t.Errorf("Apply output:\n%s\nwant:\n%s", got, want)
	}

	// The rewritten document parses back to the applied record.
	if reparsed := Parse(document.Bytes()).Record(); reparsed != record {
		t.Errorf("reparsed = %+v, want %+v", reparsed, record)
	}
}

func TestDocument_ApplyKeepsCRLF(t *testing.T) {
	document := Parse([]byte("<oor:items>\r\n</oor:items>\r\n"))
	if err := document.Apply(identity.Record{FirstName: "Jane"}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	output := string(document.Bytes())
	if strings.Count(output, "\r\n") != 9 {
		t.Errorf("expected every line to end in CRLF:\n%q", output)
	}
	if !strings.HasPrefix(output, "<oor:items>\r\n"+item("givenname", "<value>Jane</value>")+"\r\n") {
		t.Errorf("givenname not inserted first:\n%q", output)
	}
}

func TestDocument_ApplyClosingSharesLine(t *testing.T) {
	document := Parse([]byte(`<oor:items>` + item("givenname", "<value>A</value>") + `</oor:items>`))
	if err := document.Apply(identity.Record{FirstName: "B"}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	output := string(document.Bytes())
	if !strings.HasSuffix(output, "\n</oor:items>") {
		t.Errorf("closing tag not split onto its own line:\n%s", output)
	}
	if strings.Index(output, item("sn", "<value/>")) > strings.Index(output, "</oor:items>") {
		t.Errorf("entries inserted after closing tag:\n%s", output)
	}
}

func TestDocument_ApplyMalformed(t *testing.T) {
	input := item("givenname", "<value>A</value>") + "\n"
	document := Parse([]byte(input))

	err := document.Apply(identity.Record{FirstName: "B"})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Apply = %v, want ErrMalformed", err)
	}
	if string(document.Bytes()) != input {
		t.Error("document modified despite error")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrymodifications.xcu")
	testutil.WriteFile(t, path, sampleDocument)

	document, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := document.Apply(identity.Record{FirstName: "Jane", LastName: "Roe"}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := document.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := reloaded.Record().LastName; got != "Roe" {
		t.Errorf("LastName after save = %q", got)
	}
}

func TestFile_Update(t *testing.T) {
	file := &File{Path: filepath.Join(t.TempDir(), "registrymodifications.xcu")}
	if file.Exists() {
		t.Fatal("Exists() = true before the file was created")
	}
	if err := file.Update(identity.Record{FirstName: "Jane"}); err == nil {
		t.Fatal("Update created a missing profile file")
	}

	testutil.WriteFile(t, file.Path, "<oor:items>\n</oor:items>\n")
	if !file.Exists() {
		t.Fatal("Exists() = false after the file was created")
	}
	if err := file.Update(identity.Record{FirstName: "Jane", Email: "jane@example.org"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	document, err := Load(file.Path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if record := document.Record(); record.FirstName != "Jane" || record.Email != "jane@example.org" {
		t.Errorf("Record after Update = %+v", record)
	}
}
