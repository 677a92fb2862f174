// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// ExitCoder is implemented by errors that carry their own exit code.
// Such errors have already been reported to the user.
type ExitCoder interface {
	ExitCode() int
}

// Fatal reports err and exits. Errors implementing [ExitCoder] exit
// with their code and print nothing; any other error prints
// "error: err" to stderr and exits with code 1.
func Fatal(err error) {
	os.Exit(report(os.Stderr, err))
}

// report writes err to w unless it carries an exit code, and returns
// the code the process should exit with.
func report(w io.Writer, err error) int {
	if coder, ok := err.(ExitCoder); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return 1
}
