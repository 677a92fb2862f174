// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package chatprefs updates the buddy icon of the Pidgin chat client.
//
// Pidgin keeps its preferences in memory while it runs and writes
// ~/.purple/prefs.xml on exit, so editing the file under a running
// client is lost. [BuddyIcon.Set] therefore checks for a running
// process first ([Detector]) and, if one is found, changes the
// preference over the session D-Bus ([Live]); otherwise it rewrites the
// buddyicon preference in the file ([SetPrefsBuddyIcon]).
package chatprefs
