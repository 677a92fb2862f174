// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/user"

	"github.com/bureau-foundation/mugshot/cmd/mugshot/cli"
	"github.com/bureau-foundation/mugshot/cmd/mugshot/ui"
	"github.com/bureau-foundation/mugshot/lib/accounts"
	"github.com/bureau-foundation/mugshot/lib/chatprefs"
	"github.com/bureau-foundation/mugshot/lib/commit"
	"github.com/bureau-foundation/mugshot/lib/config"
	"github.com/bureau-foundation/mugshot/lib/identity"
	"github.com/bureau-foundation/mugshot/lib/localprefs"
	"github.com/bureau-foundation/mugshot/lib/officeprefs"
	"github.com/bureau-foundation/mugshot/lib/photo"
	"github.com/bureau-foundation/mugshot/lib/privileged"
	"github.com/bureau-foundation/mugshot/lib/source"
	"github.com/bureau-foundation/mugshot/lib/tempfile"
)

// session holds every store for one invocation.
type session struct {
	config   *config.Config
	username string
	logger   *slog.Logger

	accounts *accounts.Client

	// desktop is nil unless the desktop identity service knows the user.
	desktop *accounts.User

	live        *chatprefs.Live
	office      *officeprefs.File
	photo       *photo.Cache
	preferences *localprefs.Store
	buddyIcon   *chatprefs.BuddyIcon
	staging     *tempfile.Registry

	passwdPath string

	// lookupUser defaults to user.Lookup.
	lookupUser func(username string) (*user.User, error)

	// credentials and accountDB replace the sudo-backed account writes
	// when set.
	credentials commit.CredentialProvider
	accountDB   commit.AccountDatabase
}

// loadConfig reads the configuration named by --config, or discovers
// it, and validates the result.
func loadConfig(options *globalOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if options.configPath != "" {
		cfg, err = config.LoadFile(options.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %v", err)
	}
	return cfg, nil
}

// openSession loads the configuration, identifies the user and
// connects to the desktop identity service when it is enabled.
func openSession(ctx context.Context, options *globalOptions, logger *slog.Logger) (*session, error) {
	cfg, err := loadConfig(options)
	if err != nil {
		return nil, err
	}

	current, err := user.Current()
	if err != nil {
		return nil, cli.Internal("identifying the current user: %w", err)
	}

	s := newSession(cfg, current.Username, logger)

	if cfg.Accounts.Enabled {
		client, err := accounts.Connect()
		if err != nil {
			logger.Debug("desktop identity service unavailable", "error", err)
			return s, nil
		}
		s.accounts = client

		desktop, err := client.FindUser(ctx, current.Username)
		if err != nil {
			logger.Debug("desktop identity service has no record of user",
				"user", current.Username, "error", err)
			return s, nil
		}
		s.desktop = desktop
	}
	return s, nil
}

// newSession wires the file-backed stores described by cfg. The
// desktop identity service is left disconnected.
func newSession(cfg *config.Config, username string, logger *slog.Logger) *session {
	live := &chatprefs.Live{}
	return &session{
		config:      cfg,
		username:    username,
		logger:      logger,
		live:        live,
		office:      &officeprefs.File{Path: cfg.Paths.OfficePrefs},
		photo:       &photo.Cache{Path: cfg.Paths.Face},
		preferences: &localprefs.Store{Path: cfg.Paths.LocalPrefs},
		buddyIcon: &chatprefs.BuddyIcon{
			PrefsPath: cfg.Paths.ChatPrefs,
			Detector:  &chatprefs.Detector{Name: cfg.Chat.ProcessName},
			Live:      live,
			Logger:    logger,
		},
		staging:    tempfile.NewRegistry(""),
		passwdPath: source.DefaultPasswdPath,
	}
}

// Close removes staged files and closes bus connections.
func (s *session) Close() error {
	var errs []error
	if err := s.staging.Clear(); err != nil {
		errs = append(errs, err)
	}
	if err := s.live.Close(); err != nil {
		errs = append(errs, err)
	}
	if s.accounts != nil {
		if err := s.accounts.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sources returns the identity sources in reconciliation order.
func (s *session) sources() []source.Source {
	desktop := &source.DesktopIdentity{}
	if s.desktop != nil {
		desktop.Account = s.desktop
	}
	return []source.Source{
		&source.OfficeSuite{Path: s.config.Paths.OfficePrefs},
		desktop,
		&source.RealName{Username: s.username, Lookup: s.lookupUser},
		&source.Passwd{Path: s.passwdPath, Username: s.username},
	}
}

// profile is the loaded state an apply starts from.
type profile struct {
	snapshot source.Snapshot
	sinks    identity.SinkAvailability
	image    identity.ImageState
}

// load reads and reconciles every source.
func (s *session) load(ctx context.Context) profile {
	override := identity.Unavailable(identity.SourceLocalOverride)
	overrides, err := s.preferences.Load()
	if err != nil {
		s.logger.Warn("ignoring saved preferences", "path", s.preferences.Path, "error", err)
	} else {
		override = overrides.Partial()
	}

	snapshot := source.Collect(ctx, s.sources(), override, s.logger)

	var image identity.ImageState
	if s.photo.Exists() {
		image.Committed = s.photo.Location()
	}

	return profile{
		snapshot: snapshot,
		sinks: identity.SinkAvailability{
			DesktopIdentity: s.desktop != nil,
			OfficeSuite:     s.office.Exists(),
		},
		image: image,
	}
}

// orchestrator builds the commit orchestrator for this session.
func (s *session) orchestrator(prompter privileged.Prompter, confirmer commit.Confirmer) (*commit.Orchestrator, error) {
	promptTimeout, err := s.config.PromptTimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("privileged.prompt_timeout: %w", err)
	}

	runner := &privileged.PTYRunner{
		PromptTimeout: promptTimeout,
		Logger:        s.logger,
	}

	orchestrator := &commit.Orchestrator{
		Credentials: s.credentials,
		Accounts:    s.accountDB,
		Photo:       s.photo,
		BuddyIcon:   s.buddyIcon,
		Preferences: s.preferences,
		Confirmer:   confirmer,
		MaxAttempts: s.config.Privileged.MaxAttempts,
		Logger:      s.logger,
	}
	if orchestrator.Credentials == nil {
		orchestrator.Credentials = &privileged.Challenger{
			Prompter:      prompter,
			Runner:        runner,
			Sudo:          s.config.Privileged.Sudo,
			VerifyArgs:    s.config.Privileged.VerifyCommand,
			RequiredTools: []string{s.config.Privileged.Sudo, s.config.Privileged.Chfn},
			Logger:        s.logger,
		}
	}
	if orchestrator.Accounts == nil {
		orchestrator.Accounts = &privileged.Chfn{
			Runner:   runner,
			Sudo:     s.config.Privileged.Sudo,
			Chfn:     s.config.Privileged.Chfn,
			Username: s.username,
			Logger:   s.logger,
		}
	}
	if s.desktop != nil {
		orchestrator.Desktop = s.desktop
	}
	if s.office.Exists() {
		orchestrator.OfficeSuite = s.office
	}
	return orchestrator, nil
}

// sourceStatuses lists each source read during load, in order, with
// the saved preferences last.
func sourceStatuses(snapshot source.Snapshot) []ui.SourceStatus {
	statuses := make([]ui.SourceStatus, 0, len(snapshot.Partials)+1)
	for _, partial := range snapshot.Partials {
		statuses = append(statuses, ui.SourceStatus{Kind: partial.Source, Available: partial.Available})
	}
	statuses = append(statuses, ui.SourceStatus{
		Kind:      identity.SourceLocalOverride,
		Available: snapshot.Override.Available,
	})
	return statuses
}

// stagePhoto copies a chosen photo into the session's staging area so
// the file committed is the file that was checked.
func (s *session) stagePhoto(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", cli.NotFound("photo %s does not exist", path)
		}
		return "", cli.Internal("checking photo %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", cli.Validation("photo %s is not a regular file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", cli.Internal("opening photo %s: %w", path, err)
	}
	defer file.Close()

	staged, err := s.staging.Stage("pending-photo", file)
	if err != nil {
		return "", cli.Internal("staging photo: %w", err)
	}
	s.logger.Debug("staged photo", "source", path, "staged", staged)
	return staged, nil
}
