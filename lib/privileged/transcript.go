// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package privileged

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/mugshot/lib/clock"
	"github.com/bureau-foundation/mugshot/lib/secret"
)

var (
	// passwordPrompt matches sudo's "[sudo] password for jane:" and
	// the plain "Password:" of other tools.
	passwordPrompt = regexp.MustCompile(`(?i)ssword`)

	// retryPrompt matches sudo's complaint after a wrong password. The
	// command is now waiting for a second attempt that will never come.
	retryPrompt = regexp.MustCompile(`(?i)sorry, try again|incorrect password`)
)

// Transcript is a prompt/response conversation with a terminal. Output
// is read in the background; Expect calls consume it up to the end of
// each match. Escape sequences are stripped before matching.
type Transcript struct {
	writer  io.Writer
	clock   clock.Clock
	chunks  chan string
	pending string
	closed  bool
}

// NewTranscript starts reading reader in the background. Replies are
// written to writer. For a pseudo-terminal both are the master side.
func NewTranscript(reader io.Reader, writer io.Writer, clk clock.Clock) *Transcript {
	transcript := &Transcript{
		writer: writer,
		clock:  clk,
		chunks: make(chan string, 16),
	}
	go transcript.readLoop(reader)
	return transcript
}

func (t *Transcript) readLoop(reader io.Reader) {
	defer close(t.chunks)
	buffer := make([]byte, 4096)
	for {
		count, err := reader.Read(buffer)
		if count > 0 {
			t.chunks <- ansi.Strip(string(buffer[:count]))
		}
		// A pty master reports EIO once the last slave descriptor is
		// closed. Every read error is end of output here.
		if err != nil {
			return
		}
	}
}

// Expect waits until pattern matches the unconsumed output and returns
// the matched text. It returns io.EOF if output ends first and
// ErrTimeout if timeout elapses first.
func (t *Transcript) Expect(pattern *regexp.Regexp, timeout time.Duration) (string, error) {
	if match, ok := t.consume(pattern); ok {
		return match, nil
	}
	if t.closed {
		return "", io.EOF
	}

	timer := t.clock.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case chunk, ok := <-t.chunks:
			if !ok {
				t.closed = true
				return "", io.EOF
			}
			t.pending += chunk
			if match, ok := t.consume(pattern); ok {
				return match, nil
			}
		case <-timer.C:
			return "", ErrTimeout
		}
	}
}

// ExpectEOF waits for output to end. If reject matches first it
// returns ErrRejected; reject may be nil.
func (t *Transcript) ExpectEOF(reject *regexp.Regexp, timeout time.Duration) error {
	if reject != nil {
		if _, ok := t.consume(reject); ok {
			return ErrRejected
		}
	}
	if t.closed {
		return nil
	}

	timer := t.clock.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case chunk, ok := <-t.chunks:
			if !ok {
				t.closed = true
				return nil
			}
			t.pending += chunk
			if reject != nil {
				if _, ok := t.consume(reject); ok {
					return ErrRejected
				}
			}
		case <-timer.C:
			return ErrTimeout
		}
	}
}

// Discard drops any further output so the background reader can
// finish. Call it when the conversation is abandoned.
func (t *Transcript) Discard() {
	if t.closed {
		return
	}
	t.closed = true
	go func() {
		for range t.chunks {
		}
	}()
}

// SendPassword types the password followed by a newline.
func (t *Transcript) SendPassword(password *secret.Buffer) error {
	return password.WriteLine(t.writer)
}

func (t *Transcript) consume(pattern *regexp.Regexp) (string, bool) {
	location := pattern.FindStringIndex(t.pending)
	if location == nil {
		// Only the tail can still take part in a future match; keep the
		// last line so a prompt split across reads is not lost.
		if index := strings.LastIndexByte(t.pending, '\n'); index >= 0 {
			t.pending = t.pending[index+1:]
		}
		return "", false
	}
	match := t.pending[location[0]:location[1]]
	t.pending = t.pending[location[1]:]
	return match, true
}
