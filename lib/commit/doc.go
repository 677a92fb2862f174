// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commit writes an edited profile to every store that holds a
// copy of it.
//
// [Orchestrator.Commit] runs a fixed sequence of steps:
//
//  1. Credential gate. If the name or a phone number changed, the
//     administrative password is obtained once. Cancellation, refusal
//     or a missing tool aborts before anything is written.
//  2. Name, through chfn, unless the desktop identity service is
//     available (it then owns the name).
//  3. Phone numbers, through chfn.
//  4. Desktop identity: real name and email.
//  5. Office suite profile, after the user confirms.
//  6. Photo: the local cache, then the desktop identity picture and,
//     after the user confirms, the chat client's buddy icon. The
//     pushes only happen when the photo's contents changed.
//  7. Local preferences: initials, email and fax.
//
// Each step runs once, without retries, and a failing step never stops
// later ones. The [Report] itemizes every attempted step and carries
// the refreshed baseline so the caller's next change detection starts
// from what was actually stored.
package commit
