// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chatprefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultProcessName is the command name of the Pidgin client.
const DefaultProcessName = "pidgin"

// Detector finds running processes by command name.
type Detector struct {
	// ProcRoot is the proc filesystem mount. Defaults to /proc.
	ProcRoot string

	// Name is compared against each process's comm. Defaults to
	// DefaultProcessName.
	Name string
}

// Running reports whether a process named Name is running. Processes
// that exit during the scan are ignored.
func (d *Detector) Running() (bool, error) {
	root := d.ProcRoot
	if root == "" {
		root = "/proc"
	}
	name := d.Name
	if name == "" {
		name = DefaultProcessName
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return false, fmt.Errorf("scanning %s: %w", root, err)
	}
	for _, entry := range entries {
		if _, err := strconv.Atoi(entry.Name()); err != nil || !entry.IsDir() {
			continue
		}
		comm, err := os.ReadFile(filepath.Join(root, entry.Name(), "comm"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(comm)) == name {
			return true, nil
		}
	}
	return false, nil
}
