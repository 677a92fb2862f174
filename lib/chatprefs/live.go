// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chatprefs

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	purpleService   = "im.pidgin.purple.PurpleService"
	purpleObject    = dbus.ObjectPath("/im/pidgin/purple/PurpleObject")
	purpleInterface = "im.pidgin.purple.PurpleInterface"

	// buddyIconPreference is the preference holding the icon path.
	buddyIconPreference = "/pidgin/accounts/buddyicon"
)

// BusObject is the subset of dbus.BusObject used here.
type BusObject interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call
}

// Live changes preferences of a running Pidgin over the session bus.
// The zero value connects on first use.
type Live struct {
	mu         sync.Mutex
	object     BusObject
	connection *dbus.Conn
}

// NewLive returns a Live that calls object instead of connecting.
func NewLive(object BusObject) *Live {
	return &Live{object: object}
}

// SetBuddyIcon sets the buddy icon preference to path.
func (l *Live) SetBuddyIcon(ctx context.Context, path string) error {
	object, err := l.purple()
	if err != nil {
		return err
	}
	call := object.CallWithContext(ctx, purpleInterface+".PurplePrefsSetPath", 0, buddyIconPreference, path)
	if call.Err != nil {
		return fmt.Errorf("PurplePrefsSetPath(%s): %w", buddyIconPreference, call.Err)
	}
	return nil
}

// Close closes the session bus connection if one was opened.
func (l *Live) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.connection == nil {
		return nil
	}
	err := l.connection.Close()
	l.connection = nil
	l.object = nil
	return err
}

func (l *Live) purple() (BusObject, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.object != nil {
		return l.object, nil
	}
	connection, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	l.connection = connection
	l.object = connection.Object(purpleService, purpleObject)
	return l.object, nil
}
