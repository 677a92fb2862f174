// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for mugshot.
//
// The configuration file is located by, in order: an explicit path (the
// --config flag, via [LoadFile]), the MUGSHOT_CONFIG environment
// variable, and $XDG_CONFIG_HOME/mugshot/config.yaml when that file
// exists. With none of these, [Load] returns [Default]. A desktop tool
// must work with no configuration at all, so unlike the explicit-path
// case a missing discovered file is not an error.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Paths, Privileged, Accounts, Chat
//   - [Default] -- returns a Config with the stock desktop locations
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other mugshot packages.
package config
