// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"os"
)

// ReadFile reads a password from path. Trailing newlines are stripped;
// other whitespace is kept because it may be part of the password.
func ReadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading password file: %w", err)
	}

	trimmed := data
	for len(trimmed) > 0 && (trimmed[len(trimmed)-1] == '\n' || trimmed[len(trimmed)-1] == '\r') {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("password file %s is empty", path)
	}

	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	return buffer, err
}
