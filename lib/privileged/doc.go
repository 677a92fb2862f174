// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package privileged runs account-database commands that need the
// user's administrative password, and obtains and verifies that
// password.
//
// The only seam to the operating system is [Runner]: run one command
// with one password and report its [ExitStatus]. [PTYRunner] is the
// production implementation. It starts the command on a fresh
// pseudo-terminal and drives a short prompt/response conversation
// through a [Transcript]: wait for a line containing "ssword" (or for
// the command to finish without asking), type the password, then wait
// for end of output. Exit status 0 is the only success signal; a
// timeout or a "try again" reprompt kills the command and counts as a
// failure.
//
// [Challenger] implements the credential challenge: prompt through a
// [Prompter], verify each candidate by running a privileged no-op
// (sudo -k /bin/true), and give up with [ErrRefused] after a bounded
// number of failures. A user cancelling the prompt yields
// [ErrCancelled] and no password. Missing sudo or chfn binaries yield
// [ErrToolMissing] before anything is prompted.
//
// [Chfn] is the account-database sink: full name via "chfn -f", home
// phone via "chfn -h", office phone via "chfn -p" falling back to
// "chfn -w" because the flag differs between chfn implementations.
//
// [Credential] wraps the verified password. It redacts itself in fmt
// and slog output and must be closed when the commit finishes.
package privileged
