// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for fitsdiff's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/fitsdiff.yaml or $HOME/.config/fitsdiff.yaml
//   - Windows: %APPDATA%/fitsdiff/fitsdiff.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. Typical contents are default ignore lists and comparison
// settings:
//
//	ignore:
//	  keywords: [DATE, CHECKSUM]
//	  comments: ["*"]
//	  fields: []
//	numdiffs: 10
//	tolerance: 0.0
package config
