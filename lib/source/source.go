// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bureau-foundation/mugshot/lib/identity"
)

// ErrNotFound is returned by an adapter that was readable but has no
// data for the user.
var ErrNotFound = errors.New("no identity data for user")

// Source is one place the user's identity is recorded.
type Source interface {
	Kind() identity.SourceKind
	Read(ctx context.Context) (identity.Record, error)
}

// Snapshot is the result of one load: every partial as read, the local
// overrides, and the reconciled record.
type Snapshot struct {
	Partials []identity.Partial
	Override identity.Partial
	Record   identity.Record
}

// Available reports whether the source of the given kind was read.
func (s Snapshot) Available(kind identity.SourceKind) bool {
	for _, partial := range s.Partials {
		if partial.Source == kind {
			return partial.Available
		}
	}
	return false
}

// Collect reads every source and reconciles them with override. Read
// errors mark the source unavailable.
func Collect(ctx context.Context, sources []Source, override identity.Partial, logger *slog.Logger) Snapshot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	partials := make([]identity.Partial, 0, len(sources))
	for _, source := range sources {
		partials = append(partials, TryRead(ctx, source, logger))
	}

	return Snapshot{
		Partials: partials,
		Override: override,
		Record:   identity.Reconcile(partials, override),
	}
}

// TryRead reads one source, absorbing any error as unavailability.
func TryRead(ctx context.Context, source Source, logger *slog.Logger) identity.Partial {
	record, err := source.Read(ctx)
	if err != nil {
		logger.Debug("identity source unavailable", "source", source.Kind(), "error", err)
		return identity.Unavailable(source.Kind())
	}
	partial := identity.Partial{Source: source.Kind(), Available: true, Record: record}.Normalize()
	logger.Debug("identity source read", "source", source.Kind(), "first_name", partial.FirstName)
	return partial
}
