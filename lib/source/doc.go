// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package source reads the user's identity from every place it is
// recorded: the passwd entry, the operating system's real-name lookup,
// the desktop identity service and the office suite's user profile.
//
// Each adapter implements [Source]. [Collect] reads them all, turns any
// read error into an unavailable partial (logged at debug level, never
// returned) and reconciles the result with the local overrides. A
// source failing can never stop the profile from loading.
package source
