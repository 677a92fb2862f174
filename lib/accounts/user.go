// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Properties are the identity properties of an AccountsService user.
type Properties struct {
	RealName string
	Email    string
	IconFile string
}

// User is one AccountsService user object.
type User struct {
	Path   dbus.ObjectPath
	object BusObject
}

// Properties reads RealName, Email and IconFile in one GetAll call.
// Properties of an unexpected type read as empty.
func (u *User) Properties(ctx context.Context) (Properties, error) {
	call := u.object.CallWithContext(ctx, propertiesInterface+".GetAll", 0, userInterface)
	if call.Err != nil {
		return Properties{}, fmt.Errorf("%w: reading %s properties: %v", ErrUnavailable, u.Path, call.Err)
	}

	var values map[string]dbus.Variant
	if err := call.Store(&values); err != nil {
		return Properties{}, fmt.Errorf("%w: decoding %s properties: %v", ErrUnavailable, u.Path, err)
	}

	stringValue := func(name string) string {
		value, _ := values[name].Value().(string)
		return value
	}
	return Properties{
		RealName: stringValue("RealName"),
		Email:    stringValue("Email"),
		IconFile: stringValue("IconFile"),
	}, nil
}

// SetRealName replaces the user's real name.
func (u *User) SetRealName(ctx context.Context, name string) error {
	return u.set(ctx, "SetRealName", name)
}

// SetEmail replaces the user's email address.
func (u *User) SetEmail(ctx context.Context, email string) error {
	return u.set(ctx, "SetEmail", email)
}

// SetIconFile points the user's picture at path. The daemon copies the
// file into its own icon directory. An empty path removes the picture.
func (u *User) SetIconFile(ctx context.Context, path string) error {
	return u.set(ctx, "SetIconFile", path)
}

func (u *User) set(ctx context.Context, method, value string) error {
	call := u.object.CallWithContext(ctx, userInterface+"."+method, 0, value)
	if call.Err != nil {
		return fmt.Errorf("%s on %s: %w", method, u.Path, call.Err)
	}
	return nil
}
