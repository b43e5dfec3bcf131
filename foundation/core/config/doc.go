// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads textkit settings from TOML and YAML files
//              with environment variable overrides and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-09-16 v0.2.0: Typed Settings for the text runtime, watching removed

/*
Package config provides configuration management for textkit.

Key Features:
  - Multi-format support (TOML, YAML) with automatic detection
  - Environment variable overrides (TEXTKIT_CODEC_POLICY for codec.policy)
  - Validation rules with types, bounds, allowed values and defaults
  - Discovery of textkit.toml / textkit.yaml in well-known directories
  - Typed Settings for codec, builder, formatting, line reading and logging
  - Thread-safe concurrent access

# Basic Configuration Loading

	cfg, err := config.Load("textkit.toml")
	if err != nil {
		return err
	}
	policy := cfg.GetString("codec.policy", "replace")

# Settings

	settings, _, err := config.LoadSettings("")
	if err != nil {
		return err
	}
	fmt.Println(settings.FormatPrecision)

A settings file looks like this:

	[codec]
	policy = "fail"
	order = "le"

	[format]
	precision = 6

	[lines]
	trim_cr = true

	[log]
	level = "info"
	format = "logfmt"
*/
package config
