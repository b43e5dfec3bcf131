// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     cmd
// Description: inspect command
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/text/str"
	"github.com/msto63/textkit/internal/tui/inspect"
	"github.com/msto63/textkit/pkg/core/version"
)

type inspectOptions struct {
	file        string
	limit       int
	interactive bool
}

func newInspectCommand(a *app) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Show the code points of a text",
		Long: `Decode text as UTF-8 and show one row per code point with its byte
offset, UTF-8 and UTF-16 encoding, display width and Unicode name.

The text is taken from the arguments, from --file or from stdin.

Keys in interactive mode:
  1-3         Toggle ASCII, non-ASCII and malformed rows
  0           Show all rows
  g / G       Top / bottom
  q           Quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "read the text from a file (- for stdin)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "show at most n rows (0 for all)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "open the interactive viewer")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, opts *inspectOptions, args []string) error {
	load := func() (str.String, error) {
		if len(args) > 0 && opts.file == "" {
			return str.ViewString(joinArgs(args)), nil
		}
		return readInput(cmd, opts.file)
	}

	if opts.interactive {
		title := opts.file
		if title == "" {
			title = "arguments"
		}
		return inspect.Run(inspect.Config{
			Title:   title,
			Version: version.Version,
			Load:    load,
		})
	}

	text, err := load()
	if err != nil {
		return err
	}
	timer := a.logger.StartTimer("inspect")
	rows := inspect.Analyze(text)
	timer.WithField("rows", len(rows)).Stop()

	sum := inspect.Summarize(rows)
	if opts.limit > 0 && len(rows) > opts.limit {
		rows = rows[:opts.limit]
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, inspect.RenderTable(rows))
	fmt.Fprintf(out, "%d bytes, %d code points, %d cells, %d non-ASCII, %d malformed\n",
		sum.Bytes, sum.Runes, sum.Width, sum.NonASCII, sum.Malformed)
	return nil
}
