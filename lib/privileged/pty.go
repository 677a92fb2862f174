// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/mugshot/lib/clock"
	"github.com/bureau-foundation/mugshot/lib/secret"
)

const (
	// DefaultPromptTimeout bounds the wait for the password prompt.
	DefaultPromptTimeout = 5 * time.Second

	// DefaultCompletionTimeout bounds the wait for the command to
	// finish after the password was sent.
	DefaultCompletionTimeout = 5 * time.Second
)

// PTYRunner runs commands on a pseudo-terminal so that sudo, which
// reads passwords from the controlling terminal, can be answered.
type PTYRunner struct {
	// PromptTimeout bounds the wait for a password prompt. Zero means
	// DefaultPromptTimeout.
	PromptTimeout time.Duration

	// CompletionTimeout bounds the wait for end of output after the
	// password was sent. Zero means DefaultCompletionTimeout.
	CompletionTimeout time.Duration

	// Clock defaults to clock.Real().
	Clock clock.Clock

	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// Run starts name with args on a new pseudo-terminal and answers a
// password prompt with password. If the command finishes without
// prompting (cached sudo timestamp, NOPASSWD), the password is not
// sent.
func (r *PTYRunner) Run(ctx context.Context, name string, args []string, password *secret.Buffer) (ExitStatus, error) {
	logger := r.logger()

	path, err := exec.LookPath(name)
	if err != nil {
		return ExitStatus{}, fmt.Errorf("%w: %s", ErrToolMissing, name)
	}

	master, slavePath, err := openPTY()
	if err != nil {
		return ExitStatus{}, err
	}
	defer master.Close()

	slave, err := os.OpenFile(slavePath, os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		return ExitStatus{}, fmt.Errorf("open PTY slave %s: %w", slavePath, err)
	}

	command := exec.CommandContext(ctx, path, args...)
	command.Stdin = slave
	command.Stdout = slave
	command.Stderr = slave
	// sudo localizes its prompt; the transcript matches English text.
	command.Env = append(os.Environ(), "LC_ALL=C", "LANG=C")
	command.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0,
	}

	if err := command.Start(); err != nil {
		slave.Close()
		return ExitStatus{}, fmt.Errorf("starting %s: %w", name, err)
	}
	// The child holds its own copies. Closing ours lets the master
	// observe end of output when the child exits.
	slave.Close()

	transcript := NewTranscript(master, master, r.clock())
	status := r.converse(transcript, password)
	if status.TimedOut || status.Rejected {
		transcript.Discard()
		command.Process.Kill()
	}

	waitErr := command.Wait()
	if status.TimedOut || status.Rejected {
		status.Code = -1
	} else {
		status.Code = command.ProcessState.ExitCode()
		var exitErr *exec.ExitError
		if waitErr != nil && !errors.As(waitErr, &exitErr) {
			return status, fmt.Errorf("waiting for %s: %w", name, waitErr)
		}
	}

	logger.Debug("privileged command finished",
		"command", name,
		"status", status.String(),
	)
	return status, nil
}

// converse drives the prompt/response exchange and reports whether it
// timed out or was rejected. The exit code is filled in by the caller.
func (r *PTYRunner) converse(transcript *Transcript, password *secret.Buffer) ExitStatus {
	_, err := transcript.Expect(passwordPrompt, r.promptTimeout())
	switch {
	case errors.Is(err, io.EOF):
		return ExitStatus{}
	case errors.Is(err, ErrTimeout):
		return ExitStatus{TimedOut: true}
	case err != nil:
		return ExitStatus{TimedOut: true}
	}

	if password == nil {
		return ExitStatus{Rejected: true}
	}
	if err := transcript.SendPassword(password); err != nil {
		return ExitStatus{Rejected: true}
	}

	switch err := transcript.ExpectEOF(retryPrompt, r.completionTimeout()); {
	case errors.Is(err, ErrRejected):
		return ExitStatus{Rejected: true}
	case err != nil:
		return ExitStatus{TimedOut: true}
	}
	return ExitStatus{}
}

func (r *PTYRunner) promptTimeout() time.Duration {
	if r.PromptTimeout > 0 {
		return r.PromptTimeout
	}
	return DefaultPromptTimeout
}

func (r *PTYRunner) completionTimeout() time.Duration {
	if r.CompletionTimeout > 0 {
		return r.CompletionTimeout
	}
	return DefaultCompletionTimeout
}

func (r *PTYRunner) clock() clock.Clock {
	if r.Clock != nil {
		return r.Clock
	}
	return clock.Real()
}

func (r *PTYRunner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// openPTY allocates a PTY master/slave pair using the Linux devpts
// interface. The ioctls go through SyscallConn so the master stays in
// non-blocking mode and Close interrupts a pending Read.
func openPTY() (master *os.File, slavePath string, err error) {
	master, err = os.OpenFile("/dev/ptmx", os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		return nil, "", fmt.Errorf("open /dev/ptmx: %w", err)
	}

	rawConn, err := master.SyscallConn()
	if err != nil {
		master.Close()
		return nil, "", fmt.Errorf("PTY master raw connection: %w", err)
	}

	var ptyNumber int
	var ioctlErr error
	controlErr := rawConn.Control(func(fd uintptr) {
		ptyNumber, ioctlErr = unix.IoctlGetInt(int(fd), unix.TIOCGPTN)
		if ioctlErr != nil {
			ioctlErr = fmt.Errorf("get PTY number (TIOCGPTN): %w", ioctlErr)
			return
		}
		if err := unix.IoctlSetPointerInt(int(fd), unix.TIOCSPTLCK, 0); err != nil {
			ioctlErr = fmt.Errorf("unlock PTY slave (TIOCSPTLCK): %w", err)
		}
	})
	if controlErr != nil {
		ioctlErr = controlErr
	}
	if ioctlErr != nil {
		master.Close()
		return nil, "", ioctlErr
	}

	return master, fmt.Sprintf("/dev/pts/%d", ptyNumber), nil
}
