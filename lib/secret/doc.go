// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds the administrative password while a commit is
// in flight.
//
// [Buffer] allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into RAM (mlock) and excludes it from core dumps
// (MADV_DONTDUMP). Close zeroes, unlocks and unmaps it. There is no
// String accessor: the password is only ever written to a terminal via
// [Buffer.WriteLine], so no immutable heap copy is created.
//
// [ReadFile] loads a password from a file for non-interactive use and
// [Zero] scrubs caller-owned byte slices.
//
// Depends on golang.org/x/sys/unix.
package secret
