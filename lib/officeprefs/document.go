// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package officeprefs

import (
	"bytes"
	"errors"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/bureau-foundation/mugshot/lib/atomicfile"
	"github.com/bureau-foundation/mugshot/lib/identity"
)

// ErrMalformed is returned when a document has no closing </oor:items>
// to insert missing entries before.
var ErrMalformed = errors.New("officeprefs: no closing </oor:items> element")

// Entry names of the tracked user data items, in the order missing
// entries are appended.
const (
	EntryGivenName   = "givenname"
	EntrySurname     = "sn"
	EntryInitials    = "initials"
	EntryMail        = "mail"
	EntryHomePhone   = "homephone"
	EntryOfficePhone = "telephonenumber"
	EntryFax         = "facsimiletelephonenumber"
)

// Entries lists the tracked entries in append order.
var Entries = []string{
	EntryGivenName,
	EntrySurname,
	EntryInitials,
	EntryMail,
	EntryHomePhone,
	EntryOfficePhone,
	EntryFax,
}

const userDataPath = "/org.openoffice.UserProfile/Data"

// itemPattern matches one user data item occupying a whole line
// (without its line ending). Groups: indentation, entry name, value
// text (absent for <value/>), trailing whitespace.
var itemPattern = regexp.MustCompile(
	`^(\s*)<item oor:path="` + regexp.QuoteMeta(userDataPath) + `">` +
		`<prop oor:name="([A-Za-z]+)" oor:op="fuse">` +
		`(?:<value>([^<]*)</value>|<value/>)` +
		`</prop></item>(\s*)$`)

const closingTag = "</oor:items>"

var valueEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type line struct {
	// raw is the exact text including its line ending.
	raw string

	// entry is the tracked entry name, or empty for an untracked line.
	entry  string
	value  string
	indent string
	tail   string
}

// Document is a parsed registrymodifications.xcu.
type Document struct {
	lines []line
}

// Parse splits data into lines and recognizes the tracked entries.
// Parse never fails: a document without tracked entries simply has no
// values.
func Parse(data []byte) *Document {
	document := &Document{}
	for _, raw := range strings.SplitAfter(string(data), "\n") {
		if raw == "" {
			continue
		}
		document.lines = append(document.lines, parseLine(raw))
	}
	return document
}

func parseLine(raw string) line {
	body := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
	match := itemPattern.FindStringSubmatch(body)
	if match == nil || !isTracked(match[2]) {
		return line{raw: raw}
	}
	return line{
		raw:    raw,
		entry:  match[2],
		value:  html.UnescapeString(match[3]),
		indent: match[1],
		tail:   match[4],
	}
}

func isTracked(name string) bool {
	for _, entry := range Entries {
		if entry == name {
			return true
		}
	}
	return false
}

// Load reads and parses the file at path. The error wraps
// fs.ErrNotExist when the file is absent.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// Bytes serializes the document. An unmodified document serializes to
// exactly the bytes it was parsed from.
func (d *Document) Bytes() []byte {
	var buffer bytes.Buffer
	for _, line := range d.lines {
		buffer.WriteString(line.raw)
	}
	return buffer.Bytes()
}

// Save atomically writes the document to path.
func (d *Document) Save(path string) error {
	return atomicfile.Write(path, d.Bytes(), 0o644)
}

// Value returns the value of entry and whether the document has it.
// When an entry appears more than once the last occurrence wins, as it
// does for LibreOffice.
func (d *Document) Value(entry string) (string, bool) {
	value, found := "", false
	for _, line := range d.lines {
		if line.entry == entry {
			value, found = line.value, true
		}
	}
	return value, found
}

// Record maps the tracked entries to an identity record.
func (d *Document) Record() identity.Record {
	get := func(entry string) string {
		value, _ := d.Value(entry)
		return value
	}
	return identity.Record{
		FirstName:   get(EntryGivenName),
		LastName:    get(EntrySurname),
		Initials:    get(EntryInitials),
		Email:       get(EntryMail),
		HomePhone:   get(EntryHomePhone),
		OfficePhone: get(EntryOfficePhone),
		Fax:         get(EntryFax),
	}.Normalize()
}

// Apply sets every tracked entry from record. Lines whose value does
// not change are left untouched. Entries absent from the document are
// inserted before the closing </oor:items> in [Entries] order.
func (d *Document) Apply(record identity.Record) error {
	values := map[string]string{
		EntryGivenName:   record.FirstName,
		EntrySurname:     record.LastName,
		EntryInitials:    record.Initials,
		EntryMail:        record.Email,
		EntryHomePhone:   record.HomePhone,
		EntryOfficePhone: record.OfficePhone,
		EntryFax:         record.Fax,
	}

	present := make(map[string]bool)
	for _, current := range d.lines {
		if current.entry != "" {
			present[current.entry] = true
		}
	}
	var missing []string
	for _, entry := range Entries {
		if !present[entry] {
			missing = append(missing, entry)
		}
	}
	closing := d.closingIndex()
	if len(missing) > 0 && closing < 0 {
		return ErrMalformed
	}

	for index := range d.lines {
		current := &d.lines[index]
		if current.entry == "" {
			continue
		}
		if want := values[current.entry]; want != current.value {
			current.value = want
			current.raw = current.indent + renderItem(current.entry, want) + current.tail + lineEnding(current.raw)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	ending := d.lineEnding()

	rebuilt := make([]line, 0, len(d.lines)+len(missing)+1)
	rebuilt = append(rebuilt, d.lines[:closing]...)

	// The closing tag may share its line with other content; split it
	// off so the inserted entries land inside the element.
	closingRaw := d.lines[closing].raw
	position := strings.Index(closingRaw, closingTag)
	if before := closingRaw[:position]; strings.TrimSpace(before) != "" {
		rebuilt = append(rebuilt, parseLine(before+ending))
		closingRaw = closingRaw[position:]
	}

	for _, entry := range missing {
		rebuilt = append(rebuilt, line{
			raw:   renderItem(entry, values[entry]) + ending,
			entry: entry,
			value: values[entry],
		})
	}
	rebuilt = append(rebuilt, line{raw: closingRaw})
	rebuilt = append(rebuilt, d.lines[closing+1:]...)
	d.lines = rebuilt
	return nil
}

func (d *Document) closingIndex() int {
	for index := len(d.lines) - 1; index >= 0; index-- {
		if strings.Contains(d.lines[index].raw, closingTag) {
			return index
		}
	}
	return -1
}

// lineEnding returns the line ending the document uses, "\n" when it
// has none.
func (d *Document) lineEnding() string {
	for _, line := range d.lines {
		if ending := lineEnding(line.raw); ending != "" {
			return ending
		}
	}
	return "\n"
}

func renderItem(entry, value string) string {
	var valueElement string
	if value == "" {
		valueElement = "<value/>"
	} else {
		valueElement = "<value>" + valueEscaper.Replace(value) + "</value>"
	}
	return `<item oor:path="` + userDataPath + `"><prop oor:name="` + entry + `" oor:op="fuse">` +
		valueElement + `</prop></item>`
}

func lineEnding(raw string) string {
	switch {
	case strings.HasSuffix(raw, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(raw, "\n"):
		return "\n"
	default:
		return ""
	}
}

// File is the profile file at Path, updated in one load-apply-save
// step.
type File struct {
	Path string
}

// Exists reports whether the profile file is present. The office suite
// creates it on first start; mugshot never creates it.
func (f *File) Exists() bool {
	info, err := os.Stat(f.Path)
	return err == nil && info.Mode().IsRegular()
}

// Update applies record to the file.
func (f *File) Update(record identity.Record) error {
	document, err := Load(f.Path)
	if err != nil {
		return err
	}
	if err := document.Apply(record); err != nil {
		return err
	}
	return document.Save(f.Path)
}
