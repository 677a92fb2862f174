// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package officeprefs reads and rewrites the user data block of the
// LibreOffice user profile, registrymodifications.xcu.
//
// The file is an XML document with one <item> per line. Seven of those
// items carry the user's identity:
//
//	<item oor:path="/org.openoffice.UserProfile/Data"><prop oor:name="givenname" oor:op="fuse"><value>Jane</value></prop></item>
//
// The file is not round-tripped through an XML decoder: LibreOffice
// owns it and other lines must survive byte for byte. [Parse] splits
// the document into lines and recognizes the tracked items; every other
// line is kept verbatim. [Document.Apply] rewrites the tracked lines
// whose value changed and inserts missing ones, in a fixed order,
// before the closing </oor:items>.
package officeprefs
