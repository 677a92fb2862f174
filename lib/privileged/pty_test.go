// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/bureau-foundation/mugshot/lib/secret"
)

// passwordScript prompts like sudo does and exits 0 only for hunter2.
const passwordScript = `printf 'Password: '; read line; [ "$line" = "hunter2" ]`

func requirePTY(t *testing.T) {
	t.Helper()
	master, _, err := openPTY()
	if err != nil {
		t.Skipf("no pseudo-terminal available: %v", err)
	}
	master.Close()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

func newPassword(t *testing.T, value string) *secret.Buffer {
	t.Helper()
	buffer, err := secret.NewFromBytes([]byte(value))
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}
	t.Cleanup(func() { buffer.Close() })
	return buffer
}

func TestPTYRunner_AnswersPrompt(t *testing.T) {
	requirePTY(t)
	runner := &PTYRunner{}

	status, err := runner.Run(context.Background(), "/bin/sh", []string{"-c", passwordScript}, newPassword(t, "hunter2"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !status.Success() {
		t.Errorf("status = %s, want success", status)
	}
}

func TestPTYRunner_WrongPassword(t *testing.T) {
	requirePTY(t)
	runner := &PTYRunner{}

	status, err := runner.Run(context.Background(), "/bin/sh", []string{"-c", passwordScript}, newPassword(t, "nope"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if status.Success() || status.Code != 1 {
		t.Errorf("status = %s, want exit status 1", status)
	}
}

func TestPTYRunner_NoPrompt(t *testing.T) {
	requirePTY(t)
	runner := &PTYRunner{}

	status, err := runner.Run(context.Background(), "/bin/sh", []string{"-c", "exit 3"}, newPassword(t, "hunter2"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if status.Code != 3 || status.TimedOut || status.Rejected {
		t.Errorf("status = %s, want exit status 3", status)
	}
}

func TestPTYRunner_Reprompt(t *testing.T) {
	requirePTY(t)
	runner := &PTYRunner{}
	script := `printf 'Password: '; read line; printf 'Sorry, try again.\n'; printf 'Password: '; read line`

	status, err := runner.Run(context.Background(), "/bin/sh", []string{"-c", script}, newPassword(t, "hunter2"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !status.Rejected || status.Code != -1 {
		t.Errorf("status = %+v, want rejected", status)
	}
}

func TestPTYRunner_PromptTimeout(t *testing.T) {
	requirePTY(t)
	runner := &PTYRunner{PromptTimeout: 100 * time.Millisecond}

	status, err := runner.Run(context.Background(), "/bin/sh", []string{"-c", "read line"}, newPassword(t, "hunter2"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !status.TimedOut {
		t.Errorf("status = %s, want timeout", status)
	}
}

func TestPTYRunner_ToolMissing(t *testing.T) {
	runner := &PTYRunner{}
	_, err := runner.Run(context.Background(), "mugshot-no-such-tool", nil, nil)
	if !errors.Is(err, ErrToolMissing) {
		t.Errorf("Run = %v, want ErrToolMissing", err)
	}
}
