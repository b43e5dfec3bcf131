// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     cmd
// Description: transcode command
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/text/codec"
)

type transcodeOptions struct {
	from   string
	to     string
	policy string
	bom    bool
	output string
}

func newTranscodeCommand(a *app) *cobra.Command {
	opts := &transcodeOptions{}

	cmd := &cobra.Command{
		Use:   "transcode [file]",
		Short: "Convert text between UTF encodings",
		Long: `Convert text between UTF-8, UTF-16 and UTF-32.

With --from auto the input encoding is taken from its byte order mark and
defaults to UTF-8. A bare utf16 or utf32 uses the codec.order setting.

Malformed input is handled by --policy:
  replace  - substitute U+FFFD (default)
  skip     - drop the sequence
  fail     - stop with an error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTranscode(cmd, opts, inputArg(args))
		},
	}

	cmd.Flags().StringVarP(&opts.from, "from", "f", "auto", "input encoding")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "utf8", "output encoding")
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", "", "malformed input policy (default from config)")
	cmd.Flags().BoolVar(&opts.bom, "bom", false, "write a byte order mark")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// resolveFormat parses name; a bare utf16 or utf32 takes the byte order
// from order.
func resolveFormat(name, order string) (codec.Format, error) {
	f, err := codec.ParseFormat(name)
	if err != nil {
		return f, err
	}
	bare := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	if bare != "utf16" && bare != "utf32" {
		return f, nil
	}

	o, err := codec.ParseByteOrder(order)
	if err != nil {
		return f, err
	}
	big := o.Resolve() == codec.BigEndian
	switch {
	case bare == "utf16" && big:
		return codec.FormatUTF16BE, nil
	case bare == "utf16":
		return codec.FormatUTF16LE, nil
	case big:
		return codec.FormatUTF32BE, nil
	default:
		return codec.FormatUTF32LE, nil
	}
}

func (a *app) runTranscode(cmd *cobra.Command, opts *transcodeOptions, path string) error {
	policyName := opts.policy
	if policyName == "" {
		policyName = a.settings.CodecPolicy
	}
	policy, err := codec.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	to, err := resolveFormat(opts.to, a.settings.CodecOrder)
	if err != nil {
		return err
	}

	in, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	var from codec.Format
	if strings.EqualFold(opts.from, "auto") {
		from, _ = codec.DetectFormat(in.Bytes())
	} else if from, err = resolveFormat(opts.from, a.settings.CodecOrder); err != nil {
		return err
	}

	t := codec.Transcoder{
		From:     from,
		To:       to,
		Policy:   policy,
		WriteBOM: opts.bom,
		Logger:   a.logger,
	}
	out, stats, err := t.Transcode(in)
	if err != nil {
		a.logger.LogError(err)
		return err
	}

	fields := mdwlog.Fields{
		"from":      from.String(),
		"to":        to.String(),
		"runes":     stats.Runes,
		"malformed": stats.Malformed,
		"bytes_in":  in.Len(),
		"bytes_out": out.Len(),
	}
	if stats.Malformed > 0 {
		fields["policy"] = policy.String()
		a.logger.Warn("malformed input", fields)
	} else {
		a.logger.Info("transcoded", fields)
	}

	return writeOutput(cmd, opts.output, out)
}
