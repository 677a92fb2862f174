// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package accounts talks to the freedesktop AccountsService daemon on
// the system D-Bus. AccountsService is the desktop's identity store:
// the display manager and the shell read the user's real name, email
// and picture from it.
//
// The service is optional. [Connect] and [Client.FindUser] return
// errors wrapping [ErrUnavailable] when the bus, the service or the
// user record cannot be reached, and callers treat that as "skip this
// sink" rather than as a failure.
//
// Writes (SetRealName, SetEmail, SetIconFile) need no credential from
// mugshot: the daemon authorizes them through polkit for the user's
// own account.
package accounts
