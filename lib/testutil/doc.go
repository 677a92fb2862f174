// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for mugshot packages.
//
// [FakeHome] builds a throwaway home directory with the XDG layout the
// sinks expect, and [WriteFile] / [ReadFile] seed and inspect fixture
// files inside it.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no mugshot-internal dependencies.
package testutil
