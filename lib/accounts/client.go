// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// ErrUnavailable is wrapped by every error meaning the desktop identity
// service cannot be used.
var ErrUnavailable = errors.New("desktop identity service unavailable")

const (
	serviceName         = "org.freedesktop.Accounts"
	managerPath         = dbus.ObjectPath("/org/freedesktop/Accounts")
	managerInterface    = "org.freedesktop.Accounts"
	userInterface       = "org.freedesktop.Accounts.User"
	propertiesInterface = "org.freedesktop.DBus.Properties"
)

// BusObject is the subset of dbus.BusObject used here.
type BusObject interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call
}

// Client resolves users through the AccountsService manager object.
type Client struct {
	connection *dbus.Conn
	object     func(path dbus.ObjectPath) BusObject
}

// Connect opens a private connection to the system bus.
func Connect() (*Client, error) {
	connection, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to system bus: %v", ErrUnavailable, err)
	}
	return &Client{
		connection: connection,
		object: func(path dbus.ObjectPath) BusObject {
			return connection.Object(serviceName, path)
		},
	}, nil
}

// NewClient returns a client that resolves objects through object.
// Connect is the usual constructor; NewClient exists for other buses
// and for tests.
func NewClient(object func(path dbus.ObjectPath) BusObject) *Client {
	return &Client{object: object}
}

// Close closes the bus connection, if the client owns one.
func (c *Client) Close() error {
	if c.connection == nil {
		return nil
	}
	return c.connection.Close()
}

// FindUser looks up username. A missing service or unknown user wraps
// ErrUnavailable.
func (c *Client) FindUser(ctx context.Context, username string) (*User, error) {
	call := c.object(managerPath).CallWithContext(ctx, managerInterface+".FindUserByName", 0, username)
	if call.Err != nil {
		return nil, fmt.Errorf("%w: FindUserByName(%s): %v", ErrUnavailable, username, call.Err)
	}

	var path dbus.ObjectPath
	if err := call.Store(&path); err != nil {
		return nil, fmt.Errorf("%w: FindUserByName(%s) reply: %v", ErrUnavailable, username, err)
	}
	if !path.IsValid() {
		return nil, fmt.Errorf("%w: FindUserByName(%s) returned invalid path %q", ErrUnavailable, username, path)
	}
	return &User{Path: path, object: c.object(path)}, nil
}
