// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package atomicfile replaces files so that readers see either the old
// contents or the new contents, never a mixture. Every file mugshot
// rewrites (the photo cache, the office suite registry, the chat
// client's preferences, the local preference store) goes through
// [Write].
//
// The new contents are written to a temporary file in the target's
// directory, fsynced, and renamed over the target; the directory is
// then fsynced so the rename survives a power loss. A failure at any
// step removes the temporary file and leaves the target untouched.
package atomicfile
