// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package photo manages the user's local identity photo, the ~/.face
// file read by display managers and desktop shells.
//
// The cache is always overwritten in full. [Cache.Replace] reports
// whether the new photo differs from the old one by comparing BLAKE3
// digests, so callers only push the photo to other stores when the
// contents actually changed.
package photo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bureau-foundation/mugshot/lib/atomicfile"
)

// Cache is the local photo file at Path.
type Cache struct {
	Path string
}

// Exists reports whether a cached photo is present.
func (c *Cache) Exists() bool {
	info, err := os.Stat(c.Path)
	return err == nil && info.Mode().IsRegular()
}

// Digest returns the digest of the cached photo. The error wraps
// fs.ErrNotExist when there is none.
func (c *Cache) Digest() (Digest, error) {
	return HashFile(c.Path)
}

// Replace overwrites the cache with the contents of source. It returns
// true when the contents changed, including when no photo was cached
// before. An identical photo is not rewritten.
func (c *Cache) Replace(source string) (bool, error) {
	newDigest, err := HashFile(source)
	if err != nil {
		return false, fmt.Errorf("reading new photo: %w", err)
	}

	oldDigest, err := c.Digest()
	switch {
	case err == nil && oldDigest == newDigest:
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("reading cached photo: %w", err)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return false, fmt.Errorf("reading new photo: %w", err)
	}
	if err := atomicfile.Write(c.Path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the cached photo. It returns true if a photo existed.
func (c *Cache) Remove() (bool, error) {
	err := os.Remove(c.Path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("removing cached photo: %w", err)
	}
}

// Location returns the cache file path. Other stores are pointed at
// this path rather than at the staged source, which is temporary.
func (c *Cache) Location() string {
	return c.Path
}
