// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the newsroom
// client.
//
// Configuration is loaded from a single file specified by either the
// NEWSROOM_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]), falling back to $XDG_CONFIG_HOME/newsroom/config.yaml.
// The file is optional: a missing file yields defaults that work
// against a local news service.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- struct with Service, UI, and Log sections
//   - [Default] -- returns a Config with working defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other newsroom packages.
package config
