// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
)

const janePath = dbus.ObjectPath("/org/freedesktop/Accounts/User1000")

// fakeBus records calls per object path and answers them from a table
// keyed by method name.
type fakeBus struct {
	calls   []fakeCall
	replies map[string]*dbus.Call
}

type fakeCall struct {
	Path   dbus.ObjectPath
	Method string
	Args   []any
}

type fakeObject struct {
	bus  *fakeBus
	path dbus.ObjectPath
}

func (o *fakeObject) CallWithContext(_ context.Context, method string, _ dbus.Flags, args ...any) *dbus.Call {
	o.bus.calls = append(o.bus.calls, fakeCall{Path: o.path, Method: method, Args: args})
	if reply, ok := o.bus.replies[method]; ok {
		return reply
	}
	return &dbus.Call{}
}

func (b *fakeBus) client() *Client {
	return NewClient(func(path dbus.ObjectPath) BusObject {
		return &fakeObject{bus: b, path: path}
	})
}

func newFakeBus() *fakeBus {
	return &fakeBus{replies: map[string]*dbus.Call{
		"org.freedesktop.Accounts.FindUserByName": {Body: []any{janePath}},
		"org.freedesktop.DBus.Properties.GetAll": {Body: []any{map[string]dbus.Variant{
			"RealName":       dbus.MakeVariant("Jane Doe"),
			"Email":          dbus.MakeVariant("jane@example.org"),
			"IconFile":       dbus.MakeVariant("/var/lib/AccountsService/icons/jane"),
			"Uid":            dbus.MakeVariant(uint64(1000)),
			"AutomaticLogin": dbus.MakeVariant(false),
		}}},
	}}
}

func TestFindUser(t *testing.T) {
	bus := newFakeBus()

	user, err := bus.client().FindUser(context.Background(), "jane")
	if err != nil {
		t.Fatalf("FindUser failed: %v", err)
	}
	if user.Path != janePath {
		t.Errorf("Path = %q, want %q", user.Path, janePath)
	}
	call := bus.calls[0]
	if call.Path != managerPath || len(call.Args) != 1 || call.Args[0] != "jane" {
		t.Errorf("FindUserByName called as %+v", call)
	}
}

func TestFindUser_Unavailable(t *testing.T) {
	bus := newFakeBus()
	bus.replies["org.freedesktop.Accounts.FindUserByName"] = &dbus.Call{
		Err: dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"},
	}

	if _, err := bus.client().FindUser(context.Background(), "jane"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("FindUser = %v, want ErrUnavailable", err)
	}
}

func TestFindUser_BadReply(t *testing.T) {
	bus := newFakeBus()
	bus.replies["org.freedesktop.Accounts.FindUserByName"] = &dbus.Call{Body: []any{"not a path"}}

	if _, err := bus.client().FindUser(context.Background(), "jane"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("FindUser = %v, want ErrUnavailable", err)
	}
}

func TestUser_Properties(t *testing.T) {
	bus := newFakeBus()
	user, err := bus.client().FindUser(context.Background(), "jane")
	if err != nil {
		t.Fatalf("FindUser failed: %v", err)
	}

	properties, err := user.Properties(context.Background())
	if err != nil {
		t.Fatalf("Properties failed: %v", err)
	}
	want := Properties{
		RealName: "Jane Doe",
		Email:    "jane@example.org",
		IconFile: "/var/lib/AccountsService/icons/jane",
	}
	if properties != want {
		t.Errorf("Properties = %+v, want %+v", properties, want)
	}

	call := bus.calls[len(bus.calls)-1]
	if call.Path != janePath || call.Args[0] != "org.freedesktop.Accounts.User" {
		t.Errorf("GetAll called as %+v", call)
	}
}

func TestUser_Setters(t *testing.T) {
	bus := newFakeBus()
	user, err := bus.client().FindUser(context.Background(), "jane")
	if err != nil {
		t.Fatalf("FindUser failed: %v", err)
	}
	ctx := context.Background()

	if err := user.SetRealName(ctx, "Janet Doe"); err != nil {
		t.Fatalf("SetRealName failed: %v", err)
	}
	if err := user.SetEmail(ctx, "janet@example.org"); err != nil {
		t.Fatalf("SetEmail failed: %v", err)
	}
	if err := user.SetIconFile(ctx, "/home/jane/.face"); err != nil {
		t.Fatalf("SetIconFile failed: %v", err)
	}

	want := []fakeCall{
		{Path: janePath, Method: "org.freedesktop.Accounts.User.SetRealName", Args: []any{"Janet Doe"}},
		{Path: janePath, Method: "org.freedesktop.Accounts.User.SetEmail", Args: []any{"janet@example.org"}},
		{Path: janePath, Method: "org.freedesktop.Accounts.User.SetIconFile", Args: []any{"/home/jane/.face"}},
	}
	got := bus.calls[1:]
	if len(got) != len(want) {
		t.Fatalf("calls = %+v", got)
	}
	for index := range want {
		if got[index].Path != want[index].Path || got[index].Method != want[index].Method || got[index].Args[0] != want[index].Args[0] {
			t.Errorf("call %d = %+v, want %+v", index, got[index], want[index])
		}
	}
}

func TestUser_SetFailure(t *testing.T) {
	bus := newFakeBus()
	bus.replies["org.freedesktop.Accounts.User.SetEmail"] = &dbus.Call{
		Err: dbus.Error{Name: "org.freedesktop.Accounts.Error.PermissionDenied"},
	}
	user, err := bus.client().FindUser(context.Background(), "jane")
	if err != nil {
		t.Fatalf("FindUser failed: %v", err)
	}

	if err := user.SetEmail(context.Background(), "x"); err == nil {
		t.Fatal("expected SetEmail error")
	}
}
