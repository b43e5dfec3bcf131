// File: settings.go
// Title: Typed Runtime Settings
// Description: Maps the configuration keys understood by textkit onto a typed
//              Settings value: codec policy and byte order, builder buffer
//              size, number formatting, line reading and logging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-16
// Modified: 2026-09-16
//
// Change History:
// - 2026-09-16 v0.2.0: Initial implementation

package config

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// EnvPrefix is the environment variable prefix for textkit settings.
// TEXTKIT_CODEC_POLICY overrides codec.policy.
const EnvPrefix = "TEXTKIT"

// Configuration keys
const (
	KeyCodecPolicy       = "codec.policy"
	KeyCodecOrder        = "codec.order"
	KeyBuilderBufferSize = "builder.buffer_size"
	KeyFormatPrecision   = "format.precision"
	KeyFormatRadix       = "format.radix"
	KeyLinesChunkSize    = "lines.chunk_size"
	KeyLinesTrimCR       = "lines.trim_cr"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
)

// Settings holds the typed runtime settings. Codec and log values stay
// strings; the packages owning them parse them.
type Settings struct {
	CodecPolicy       string `json:"codec_policy"`
	CodecOrder        string `json:"codec_order"`
	BuilderBufferSize int    `json:"builder_buffer_size"`
	FormatPrecision   int    `json:"format_precision"`
	FormatRadix       int    `json:"format_radix"`
	LinesChunkSize    int    `json:"lines_chunk_size"`
	LinesTrimCR       bool   `json:"lines_trim_cr"`
	LogLevel          string `json:"log_level"`
	LogFormat         string `json:"log_format"`
}

// DefaultSettings returns the built-in settings
func DefaultSettings() Settings {
	return Settings{
		CodecPolicy:       "replace",
		CodecOrder:        "host",
		BuilderBufferSize: 128,
		FormatPrecision:   10,
		FormatRadix:       10,
		LinesChunkSize:    64,
		LinesTrimCR:       false,
		LogLevel:          "warn",
		LogFormat:         "text",
	}
}

// Rules returns the validation rules for all settings keys
func Rules() ValidationRules {
	d := DefaultSettings()
	return ValidationRules{
		KeyCodecPolicy:       {Type: "string", OneOf: []string{"replace", "skip", "fail"}, Default: d.CodecPolicy},
		KeyCodecOrder:        {Type: "string", OneOf: []string{"host", "le", "little", "be", "big"}, Default: d.CodecOrder},
		KeyBuilderBufferSize: {Type: "int", Min: 8, Max: 1 << 20, Default: d.BuilderBufferSize},
		KeyFormatPrecision:   {Type: "int", Min: 0, Max: 31, Default: d.FormatPrecision},
		KeyFormatRadix:       {Type: "int", Min: 2, Max: 16, Default: d.FormatRadix},
		KeyLinesChunkSize:    {Type: "int", Min: 1, Max: 1 << 20, Default: d.LinesChunkSize},
		KeyLinesTrimCR:       {Type: "bool", Default: d.LinesTrimCR},
		KeyLogLevel:          {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "off"}, Default: d.LogLevel},
		KeyLogFormat:         {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}, Default: d.LogFormat},
	}
}

// FromConfig validates c and extracts the settings. Missing keys take their
// defaults.
func FromConfig(c *Config) (Settings, error) {
	if c == nil {
		return DefaultSettings(), nil
	}

	if result := c.Validate(Rules()); !result.Valid {
		return Settings{}, mdwerror.New(fmt.Sprintf("invalid settings: %s", result.Error())).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.FromConfig").
			WithDetail("errors", result.Errors)
	}

	d := DefaultSettings()
	return Settings{
		CodecPolicy:       c.GetString(KeyCodecPolicy, d.CodecPolicy),
		CodecOrder:        c.GetString(KeyCodecOrder, d.CodecOrder),
		BuilderBufferSize: c.GetInt(KeyBuilderBufferSize, d.BuilderBufferSize),
		FormatPrecision:   c.GetInt(KeyFormatPrecision, d.FormatPrecision),
		FormatRadix:       c.GetInt(KeyFormatRadix, d.FormatRadix),
		LinesChunkSize:    c.GetInt(KeyLinesChunkSize, d.LinesChunkSize),
		LinesTrimCR:       c.GetBool(KeyLinesTrimCR, d.LinesTrimCR),
		LogLevel:          c.GetString(KeyLogLevel, d.LogLevel),
		LogFormat:         c.GetString(KeyLogFormat, d.LogFormat),
	}, nil
}

// LoadSettings loads settings from path. An empty path runs discovery in the
// default locations; finding nothing yields the defaults with environment
// overrides applied.
func LoadSettings(path string) (Settings, *Config, error) {
	var (
		c   *Config
		err error
	)

	if path == "" {
		c, err = Discover(DefaultDiscoveryOptions())
	} else {
		c, err = LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: EnvPrefix})
	}
	if err != nil {
		return Settings{}, nil, err
	}

	s, err := FromConfig(c)
	if err != nil {
		if path != "" {
			err = mdwerror.Wrap(err, "settings rejected").WithDetail("filePath", path)
		}
		return Settings{}, c, err
	}
	return s, c, nil
}

// Validate checks ranges on a Settings value built in code
func (s Settings) Validate() error {
	if s.BuilderBufferSize < 8 {
		return mdwerrors.ConfigInvalid(KeyBuilderBufferSize, s.BuilderBufferSize, "must be at least 8")
	}
	if s.FormatPrecision < 0 || s.FormatPrecision > 31 {
		return mdwerrors.ConfigInvalid(KeyFormatPrecision, s.FormatPrecision, "must be within [0,31]")
	}
	if s.FormatRadix < 2 || s.FormatRadix > 16 {
		return mdwerrors.ConfigInvalid(KeyFormatRadix, s.FormatRadix, "must be within [2,16]")
	}
	if s.LinesChunkSize < 1 {
		return mdwerrors.ConfigInvalid(KeyLinesChunkSize, s.LinesChunkSize, "must be positive")
	}
	return nil
}
