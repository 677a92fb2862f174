// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bureau-foundation/mugshot/lib/identity"
	"github.com/bureau-foundation/mugshot/lib/localprefs"
	"github.com/bureau-foundation/mugshot/lib/privileged"
)

// credentialPurpose is shown in the password prompt.
const credentialPurpose = "change your account details"

// Orchestrator holds the stores for one apply. A nil optional store
// means that store is absent and its steps are not attempted.
type Orchestrator struct {
	Credentials CredentialProvider
	Accounts    AccountDatabase

	// Desktop is nil when the desktop identity service is unavailable.
	Desktop DesktopIdentity

	// OfficeSuite is nil when the profile file does not exist.
	OfficeSuite OfficeSuite

	Photo       PhotoCache
	BuddyIcon   BuddyIcon
	Preferences PreferencesStore
	Confirmer   Confirmer

	// MaxAttempts is the password retry budget. Zero means
	// privileged.DefaultMaxAttempts.
	MaxAttempts int

	Logger *slog.Logger
}

// Request is one apply action.
type Request struct {
	// Baseline is the reconciled record the form started from.
	Baseline identity.Record

	// Record holds the form values.
	Record identity.Record

	Dirty identity.DirtySet
	Image identity.ImageState
}

// commitRun is the mutable state of one Commit call.
type commitRun struct {
	*Orchestrator
	ctx        context.Context
	logger     *slog.Logger
	record     identity.Record
	credential *privileged.Credential
	report     Report
}

// Commit writes request.Record to every dirty store.
func (o *Orchestrator) Commit(ctx context.Context, request Request) Report {
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	record := request.Record.Normalize()

	run := &commitRun{
		Orchestrator: o,
		ctx:          ctx,
		logger:       logger,
		record:       record,
		report: Report{
			Baseline: request.Baseline,
			Image:    request.Image,
		},
	}
	dirty := request.Dirty
	logger.Info("applying profile changes", "dirty", dirty.Names())

	if dirty.RequiresCredential() {
		credential, err := o.Credentials.Obtain(ctx, credentialPurpose, o.maxAttempts())
		if err != nil {
			run.report.Refusal = refusalReason(err)
			run.report.RefusalErr = err
			logger.Info("profile changes aborted", "reason", run.report.Refusal, "error", err)
			return run.report
		}
		defer credential.Close()
		run.credential = credential
	}

	if dirty.Name && o.Desktop == nil {
		run.commitName()
	}
	if dirty.Phone {
		run.commitPhones()
	}
	if dirty.DesktopIdentity && o.Desktop != nil {
		run.commitDesktopIdentity()
	}
	if dirty.OfficeSuite && o.OfficeSuite != nil {
		run.commitOfficeSuite()
	}
	if dirty.Image && o.Photo != nil {
		run.commitImage(request.Image)
	}
	if dirty.LocalPreferences && o.Preferences != nil {
		run.commitLocalPreferences()
	}

	run.report.Success = aggregate(run.report.Outcomes)
	logger.Info("profile changes applied",
		"success", run.report.Success,
		"attempted", len(run.report.Outcomes),
		"failed", len(run.report.Failures()),
	)
	return run.report
}

func (o *Orchestrator) maxAttempts() int {
	if o.MaxAttempts > 0 {
		return o.MaxAttempts
	}
	return privileged.DefaultMaxAttempts
}

func refusalReason(err error) Reason {
	switch {
	case errors.Is(err, privileged.ErrCancelled):
		return ReasonCredentialCancelled
	case errors.Is(err, privileged.ErrRefused):
		return ReasonCredentialRefused
	case errors.Is(err, privileged.ErrToolMissing):
		return ReasonToolMissing
	default:
		return ReasonCredentialError
	}
}

// settle appends an outcome for kind from err and logs it. It returns
// whether the step succeeded.
func (r *commitRun) settle(kind Kind, err error) bool {
	if err != nil {
		r.report.Outcomes = append(r.report.Outcomes, Outcome{
			Kind:   kind,
			Status: StatusFailure,
			Reason: ReasonWriteError,
			Err:    err,
		})
		r.logger.Warn("profile store update failed", "store", kind, "error", err)
		return false
	}
	r.report.Outcomes = append(r.report.Outcomes, Outcome{Kind: kind, Status: StatusSuccess})
	r.logger.Info("profile store updated", "store", kind)
	return true
}

func (r *commitRun) skip(kind Kind, reason Reason) {
	r.report.Outcomes = append(r.report.Outcomes, Outcome{Kind: kind, Status: StatusSkipped, Reason: reason})
	r.logger.Info("profile store skipped", "store", kind, "reason", reason)
}

// confirm asks question; an error from the Confirmer counts as no.
func (r *commitRun) confirm(question string) bool {
	if r.Confirmer == nil {
		return false
	}
	confirmed, err := r.Confirmer.Confirm(r.ctx, question)
	if err != nil {
		r.logger.Warn("confirmation failed", "question", question, "error", err)
		return false
	}
	return confirmed
}

func (r *commitRun) commitName() {
	err := r.Accounts.SetFullName(r.ctx, r.credential, r.record.FullName())
	if r.settle(KindName, err) {
		r.report.Baseline.FirstName = r.record.FirstName
		r.report.Baseline.LastName = r.record.LastName
	}
}

// commitPhones writes both phone fields. The step succeeds only when
// both writes do; each field's baseline is refreshed on its own.
func (r *commitRun) commitPhones() {
	homeErr := r.Accounts.SetHomePhone(r.ctx, r.credential, r.record.HomePhone)
	if homeErr == nil {
		r.report.Baseline.HomePhone = r.record.HomePhone
	}
	officeErr := r.Accounts.SetOfficePhone(r.ctx, r.credential, r.record.OfficePhone)
	if officeErr == nil {
		r.report.Baseline.OfficePhone = r.record.OfficePhone
	}
	r.settle(KindPhone, errors.Join(homeErr, officeErr))
}

func (r *commitRun) commitDesktopIdentity() {
	nameErr := r.Desktop.SetRealName(r.ctx, r.record.FullName())
	if nameErr == nil {
		r.report.Baseline.FirstName = r.record.FirstName
		r.report.Baseline.LastName = r.record.LastName
	}
	emailErr := r.Desktop.SetEmail(r.ctx, r.record.Email)
	if emailErr == nil {
		r.report.Baseline.Email = r.record.Email
	}
	r.settle(KindDesktopIdentity, errors.Join(nameErr, emailErr))
}

func (r *commitRun) commitOfficeSuite() {
	if !r.confirm(QuestionOfficeSuite) {
		r.skip(KindOfficeSuite, ReasonDeclined)
		return
	}
	if r.settle(KindOfficeSuite, r.OfficeSuite.Update(r.record)) {
		// Reconciliation takes these fields from the profile file
		// before any other source; the name block it does not.
		r.report.Baseline.Email = r.record.Email
		r.report.Baseline.Fax = r.record.Fax
		r.report.Baseline.HomePhone = r.record.HomePhone
		r.report.Baseline.OfficePhone = r.record.OfficePhone
	}
}

func (r *commitRun) commitImage(image identity.ImageState) {
	var changed bool
	var err error
	var iconPath string

	switch image.Request {
	case identity.ImageReplace:
		changed, err = r.Photo.Replace(image.Pending)
		iconPath = r.Photo.Location()
		if err == nil {
			r.report.Image = identity.ImageState{Committed: image.Pending}
		}
	case identity.ImageRemove:
		changed, err = r.Photo.Remove()
		if err == nil {
			r.report.Image = identity.ImageState{}
		}
	default:
		return
	}

	if !r.settle(KindImageLocal, err) {
		return
	}
	if !changed {
		r.logger.Debug("photo contents unchanged, not updating other stores")
		return
	}

	if r.Desktop != nil {
		r.settle(KindImageDesktopIdentity, r.Desktop.SetIconFile(r.ctx, iconPath))
	}
	if r.BuddyIcon != nil {
		if !r.confirm(QuestionBuddyIcon) {
			r.skip(KindImageChat, ReasonDeclined)
			return
		}
		method, err := r.BuddyIcon.Set(r.ctx, iconPath)
		if err == nil {
			r.logger.Debug("buddy icon updated", "method", method)
		}
		r.settle(KindImageChat, err)
	}
}

func (r *commitRun) commitLocalPreferences() {
	overrides := localprefs.FromRecord(r.record)
	if r.settle(KindLocalPreferences, r.Preferences.Save(overrides)) {
		r.report.Baseline.Initials = r.record.Initials
		r.report.Baseline.Email = r.record.Email
		r.report.Baseline.Fax = r.record.Fax
	}
}
