// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the binary entrypoint error handler. It is
// the one place outside the CLI output layer that writes to stderr
// directly, for errors that arrive after the command's logger is gone.
package process
