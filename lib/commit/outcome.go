// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"github.com/bureau-foundation/mugshot/lib/identity"
)

// Kind identifies the store a step writes to.
type Kind string

const (
	KindName                 Kind = "name-change"
	KindPhone                Kind = "phone-change"
	KindDesktopIdentity      Kind = "desktop-identity"
	KindOfficeSuite          Kind = "office-suite"
	KindImageLocal           Kind = "image-local"
	KindImageDesktopIdentity Kind = "image-desktop-identity"
	KindImageChat            Kind = "image-chat-buddyicon"
	KindLocalPreferences     Kind = "local-preferences"
)

// Status is the result of one step.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusSkipped Status = "skipped"
)

// Reason explains a failure, a skip, or an aborted commit.
type Reason string

const (
	// ReasonCredentialRefused: every password attempt failed
	// verification.
	ReasonCredentialRefused Reason = "credential-refused"

	// ReasonCredentialCancelled: the user dismissed the prompt.
	ReasonCredentialCancelled Reason = "credential-cancelled"

	// ReasonToolMissing: sudo or chfn is not installed.
	ReasonToolMissing Reason = "tool-missing"

	// ReasonCredentialError: the prompt itself failed.
	ReasonCredentialError Reason = "credential-error"

	// ReasonWriteError: the store rejected the write.
	ReasonWriteError Reason = "write-error"

	// ReasonDeclined: the user answered no to the confirmation.
	ReasonDeclined Reason = "declined"
)

// Outcome is the result of one attempted step.
type Outcome struct {
	Kind   Kind
	Status Status

	// Reason is set for failures and skips.
	Reason Reason

	// Err is the underlying error of a failure.
	Err error
}

// Report is the result of one commit.
type Report struct {
	// Success is true when every attempted, non-skipped step succeeded
	// and the commit was not aborted.
	Success bool

	// Outcomes lists attempted steps in the order they ran. Empty when
	// the commit was aborted at the credential gate.
	Outcomes []Outcome

	// Refusal is set when the credential gate aborted the commit.
	Refusal Reason

	// RefusalErr is the error behind Refusal.
	RefusalErr error

	// Baseline is the input baseline with every field that some store
	// accepted replaced by its committed value.
	Baseline identity.Record

	// Image is the photo state after the commit.
	Image identity.ImageState
}

// Failures returns the failed outcomes.
func (r Report) Failures() []Outcome {
	var failures []Outcome
	for _, outcome := range r.Outcomes {
		if outcome.Status == StatusFailure {
			failures = append(failures, outcome)
		}
	}
	return failures
}

// Outcome returns the outcome of kind and whether that step ran.
func (r Report) Outcome(kind Kind) (Outcome, bool) {
	for _, outcome := range r.Outcomes {
		if outcome.Kind == kind {
			return outcome, true
		}
	}
	return Outcome{}, false
}

func aggregate(outcomes []Outcome) bool {
	for _, outcome := range outcomes {
		if outcome.Status == StatusFailure {
			return false
		}
	}
	return true
}
