// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chatprefs

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bureau-foundation/mugshot/lib/atomicfile"
)

// ErrNoBuddyIconPref is returned when prefs.xml has no buddyicon
// preference to rewrite. Pidgin creates it on first run.
var ErrNoBuddyIconPref = errors.New("chatprefs: no buddyicon preference in prefs.xml")

// buddyIconPattern matches the buddyicon element through its quoted
// value attribute. Group 1 is everything before the opening quote.
var buddyIconPattern = regexp.MustCompile(`(<pref\s+name=['"]buddyicon['"]\s+type=['"]path['"]\s+value=)(?:'[^']*'|"[^"]*")`)

var attributeEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// SetPrefsBuddyIcon rewrites every buddyicon preference in the file at
// prefsPath to iconPath. The rest of the file is preserved byte for
// byte.
func SetPrefsBuddyIcon(prefsPath, iconPath string) error {
	data, err := os.ReadFile(prefsPath)
	if err != nil {
		return fmt.Errorf("reading chat preferences: %w", err)
	}

	content := string(data)
	if !buddyIconPattern.MatchString(content) {
		return fmt.Errorf("%s: %w", prefsPath, ErrNoBuddyIconPref)
	}

	escaped := attributeEscaper.Replace(iconPath)
	updated := buddyIconPattern.ReplaceAllStringFunc(content, func(match string) string {
		prefix := buddyIconPattern.FindStringSubmatch(match)[1]
		quote := match[len(prefix) : len(prefix)+1]
		return prefix + quote + escaped + quote
	})
	if updated == content {
		return nil
	}
	return atomicfile.Write(prefsPath, []byte(updated), 0o600)
}
