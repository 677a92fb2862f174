// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides mugshot's CBOR encoding configuration.
//
// mugshot uses two serialization formats with a clear boundary:
//
//   - JSON for external interfaces: `mugshot show --json` output and
//     the profile documents read by `mugshot apply --from`.
//   - CBOR for on-disk state owned by mugshot itself: the local
//     preference store (lib/localprefs).
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes, so rewriting an
// unchanged store does not change the file.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// # Struct Tag Rules
//
//   - `cbor` tag: the type is only ever serialized as CBOR.
//   - `json` tag: the type may be serialized as both JSON and CBOR.
//     fxamacker/cbor v2 reads `json` tags as fallback when `cbor` tags
//     are absent, so one tag controls naming for both formats.
//
// Never use both tags on the same field.
package codec
