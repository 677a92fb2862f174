// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chatprefs

import (
	"context"
	"log/slog"
)

// Method says how a buddy icon change was delivered.
type Method string

const (
	MethodLive      Method = "live"
	MethodPrefsFile Method = "prefs-file"
)

// LiveSetter changes the icon of a running client.
type LiveSetter interface {
	SetBuddyIcon(ctx context.Context, path string) error
}

// BuddyIcon points the chat client's buddy icon at a file.
type BuddyIcon struct {
	// PrefsPath is the client's prefs.xml.
	PrefsPath string

	// Detector decides between a live update and a file edit.
	Detector *Detector

	// Live defaults to a session bus connection made on first use.
	Live LiveSetter

	Logger *slog.Logger
}

// Set points the buddy icon at iconPath. An empty iconPath clears it.
// When the client is running the change is made live and the file is
// not touched.
func (b *BuddyIcon) Set(ctx context.Context, iconPath string) (Method, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	detector := b.Detector
	if detector == nil {
		detector = &Detector{}
	}
	running, err := detector.Running()
	if err != nil {
		// Without /proc assume the client is not running; the file
		// edit is still correct if that guess is right.
		logger.Debug("chat client detection failed", "error", err)
	}

	if running {
		live := b.Live
		if live == nil {
			live = &Live{}
		}
		logger.Debug("updating buddy icon of running chat client", "icon", iconPath)
		return MethodLive, live.SetBuddyIcon(ctx, iconPath)
	}

	logger.Debug("updating buddy icon in chat preferences", "prefs", b.PrefsPath, "icon", iconPath)
	return MethodPrefsFile, SetPrefsBuddyIcon(b.PrefsPath, iconPath)
}
