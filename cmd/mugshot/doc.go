// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Mugshot keeps the user's name, contact details and profile photo
// consistent across the places a Linux desktop records them: the
// system account database, the desktop account service, the office
// suite profile, the chat client and its own saved preferences.
//
// Subcommands:
//
//   - show: print the reconciled profile and which sources were read
//   - apply: change fields from flags or a profile document
//   - edit: change fields in an interactive form
//   - photo set, photo remove: change the profile photo
//   - preferences: print the saved preferences file
//   - version: print build information
//
// Run "mugshot --help" for global flags.
package main
