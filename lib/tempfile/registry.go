// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tempfile tracks temporary files by name so that a staged file
// can be replaced, looked up later, and reliably removed on exit.
//
// A Registry owns every file it creates. Creating a file under a name
// that is already registered deletes the previous file first, so at
// most one file exists per name. Call [Registry.Clear] (usually
// deferred next to the registry's construction) to remove everything.
package tempfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"sync"
)

// Registry maps names to temporary file paths. It is safe for
// concurrent use.
type Registry struct {
	directory string

	mu    sync.Mutex
	files map[string]string
}

// NewRegistry returns a registry that creates files in directory, or in
// os.TempDir() when directory is empty.
func NewRegistry(directory string) *Registry {
	return &Registry{directory: directory, files: make(map[string]string)}
}

// Create makes a new empty temporary file registered under name,
// removing any file previously registered under it. The caller closes
// the returned file; the registry keeps the path.
func (r *Registry) Create(name string) (*os.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.removeLocked(name); err != nil {
		return nil, err
	}

	file, err := os.CreateTemp(r.directory, "mugshot-"+name+"-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file %q: %w", name, err)
	}
	r.files[name] = file.Name()
	return file, nil
}

// Stage copies source into a new temporary file registered under name
// and returns its path.
func (r *Registry) Stage(name string, source io.Reader) (string, error) {
	file, err := r.Create(name)
	if err != nil {
		return "", err
	}
	path := file.Name()

	if _, err := io.Copy(file, source); err != nil {
		file.Close()
		r.Remove(name)
		return "", fmt.Errorf("staging %q: %w", name, err)
	}
	if err := file.Close(); err != nil {
		r.Remove(name)
		return "", fmt.Errorf("staging %q: %w", name, err)
	}
	return path, nil
}

// Path returns the file registered under name.
func (r *Registry) Path(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	path, ok := r.files[name]
	return path, ok
}

// Remove deletes the file registered under name. Removing an unknown
// name, or a file that is already gone, is not an error.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.files))
	for name := range r.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear deletes every registered file. All files are attempted; the
// errors are joined.
func (r *Registry) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name := range r.files {
		if err := r.removeLocked(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) removeLocked(name string) error {
	path, ok := r.files[name]
	if !ok {
		return nil
	}
	delete(r.files, name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing temporary file %q: %w", name, err)
	}
	return nil
}
