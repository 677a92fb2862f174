// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLineConfirmer(t *testing.T) {
	var output bytes.Buffer
	confirmer := &LineConfirmer{
		Input:  strings.NewReader("y\n\nYES\nnope\n"),
		Output: &output,
	}

	want := []bool{true, false, true, false, false}
	for index, expected := range want {
		answer, err := confirmer.Confirm(context.Background(), "Update?")
		if err != nil {
			t.Fatalf("answer %d: %v", index, err)
		}
		if answer != expected {
			t.Errorf("answer %d = %v, want %v", index, answer, expected)
		}
	}
	if !strings.Contains(output.String(), "Update? [y/N] ") {
		t.Errorf("prompt = %q", output.String())
	}
}

func TestAutoConfirmer(t *testing.T) {
	answer, err := AutoConfirmer{}.Confirm(context.Background(), "anything")
	if !answer || err != nil {
		t.Errorf("Confirm = %v, %v", answer, err)
	}
}
