// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package identity holds the canonical user profile and the two pure
// algorithms that operate on it: reconciliation of partial records
// read from several sources, and change detection between a baseline
// and the values a user has edited.
//
// [Record] is the merged profile. [Partial] is what a single source
// contributes; a source is either wholly unavailable or available with
// some fields unset. [Reconcile] merges partials in a fixed precedence
// order (see [Precedence]) and applies the local override layer last.
// [SplitName] turns a combined "real name" into first name, last name
// and initials.
//
// [DetectChanges] compares a baseline against form values and returns
// a [DirtySet] naming which sinks need a write. Image selection is
// tracked separately by [ImageState] because "no change" and "remove
// the photo" are different requests that both carry an empty path.
//
// Every string entering the package through [Partial.Normalize] has
// surrounding whitespace trimmed and the legacy "none" placeholder
// replaced by the empty string, so no [Record] ever carries it.
//
// This package has no I/O and no mugshot-internal dependencies.
package identity
