// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SplitName splits a combined name on the first run of whitespace into
// first and last name. Initials are the first letter of every
// whitespace-separated part, in order:
//
//	SplitName("Jane Q Doe") // "Jane", "Q Doe", "JQD"
//	SplitName("Madonna")    // "Madonna", "", "M"
//	SplitName("   ")        // "", "", ""
func SplitName(fullName string) (first, last, initials string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", "", ""
	}

	first = parts[0]
	if len(parts) > 1 {
		// Keep the original spacing inside the last name; only the
		// separator run after the first part is consumed.
		rest := strings.TrimSpace(fullName)
		rest = strings.TrimSpace(rest[len(first):])
		last = rest
	}

	var builder strings.Builder
	for _, part := range parts {
		builder.WriteString(firstLetter(part))
	}
	return first, last, builder.String()
}

// DeriveInitials returns the first letter of first name followed by the
// first letter of last name. Either may be empty.
func DeriveInitials(first, last string) string {
	return firstLetter(first) + firstLetter(last)
}

// firstLetter returns the first character of value after NFC
// composition, so a base letter followed by a combining accent counts
// as one character.
func firstLetter(value string) string {
	value = norm.NFC.String(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError && size <= 1 {
		return value[:1]
	}
	return value[:size]
}
