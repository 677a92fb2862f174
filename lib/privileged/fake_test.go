// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/bureau-foundation/mugshot/lib/secret"
)

// runCall is one invocation recorded by fakeRunner.
type runCall struct {
	Name     string
	Args     []string
	Password string
}

func (c runCall) String() string {
	return c.Name + " " + strings.Join(c.Args, " ")
}

// fakeRunner answers Run from a queue of results and records every
// call. When the queue is empty it succeeds.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []runCall
	results []fakeResult
}

type fakeResult struct {
	status ExitStatus
	err    error
}

func (r *fakeRunner) push(status ExitStatus, err error) {
	r.results = append(r.results, fakeResult{status: status, err: err})
}

func (r *fakeRunner) Run(_ context.Context, name string, args []string, password *secret.Buffer) (ExitStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := runCall{Name: name, Args: append([]string(nil), args...)}
	if password != nil {
		call.Password = string(password.Bytes())
	}
	r.calls = append(r.calls, call)

	if len(r.results) == 0 {
		return ExitStatus{}, nil
	}
	result := r.results[0]
	r.results = r.results[1:]
	return result.status, result.err
}

// fakePrompter hands out passwords in order. An empty string in the
// queue means the user cancelled.
type fakePrompter struct {
	passwords []string
	requests  []PromptRequest
}

func (p *fakePrompter) PromptPassword(_ context.Context, request PromptRequest) (*secret.Buffer, error) {
	p.requests = append(p.requests, request)
	if len(p.passwords) == 0 {
		return nil, fmt.Errorf("prompter exhausted")
	}
	next := p.passwords[0]
	p.passwords = p.passwords[1:]
	if next == "" {
		return nil, ErrCancelled
	}
	return secret.NewFromBytes([]byte(next))
}

func testCredential(t *testing.T, password string) *Credential {
	t.Helper()
	buffer, err := secret.NewFromBytes([]byte(password))
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}
	credential := NewCredential(buffer)
	t.Cleanup(func() { credential.Close() })
	return credential
}
