// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     cmd
// Description: split, trim and lines commands
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/text/conv"
	"github.com/msto63/textkit/foundation/text/lineio"
	"github.com/msto63/textkit/foundation/text/str"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func newSplitCommand(a *app) *cobra.Command {
	var (
		delim     string
		keepEmpty bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split input at a delimiter byte",
		Long: `Split the input at every occurrence of a delimiter byte and print one
section per line. Empty sections are dropped unless --keep-empty is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(delim) != 1 {
				return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "split", delim, "a single byte delimiter")
			}
			in, err := readInput(cmd, inputArg(args))
			if err != nil {
				return err
			}

			b := str.NewBuilderSize(a.settings.BuilderBufferSize)
			n := 0
			for section := range in.Sections(delim[0], !keepEmpty) {
				b.AppendLine(section)
				n++
			}
			a.logger.Debug("split input", mdwlog.Fields{"sections": n, "bytes": in.Len()})
			return writeOutput(cmd, output, b.Build())
		},
	}

	cmd.Flags().StringVarP(&delim, "delim", "d", ",", "delimiter byte")
	cmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "keep empty sections")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// readerFor creates a line reader configured from the settings
func (a *app) readerFor(cmd *cobra.Command, path string, trimCR bool) (*lineio.Reader, func() error, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	r := lineio.NewReader(in,
		lineio.WithChunkSize(a.settings.LinesChunkSize),
		lineio.WithTrimCR(trimCR || a.settings.LinesTrimCR),
	)
	return r, in.Close, nil
}

func newTrimCommand(a *app) *cobra.Command {
	var skipBlank bool

	cmd := &cobra.Command{
		Use:   "trim [file]",
		Short: "Trim white space of every line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeInput, err := a.readerFor(cmd, inputArg(args), true)
			if err != nil {
				return err
			}
			defer closeInput()

			out := cmd.OutOrStdout()
			for line := range r.Lines() {
				if skipBlank && mdwstringx.IsBlank(line) {
					continue
				}
				if _, err := lineio.WriteLine(out, line.Trimmed()); err != nil {
					return err
				}
			}
			return r.Err()
		},
	}

	cmd.Flags().BoolVar(&skipBlank, "skip-blank", false, "drop blank lines")
	return cmd
}

func newLinesCommand(a *app) *cobra.Command {
	var (
		number bool
		trimCR bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "Print the lines of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeInput, err := a.readerFor(cmd, inputArg(args), trimCR)
			if err != nil {
				return err
			}
			defer closeInput()

			out := cmd.OutOrStdout()
			sep := str.ViewString("  ")
			for line := range r.Lines() {
				if number {
					n := conv.FormatInt(int64(r.LineNumber()), 10)
					line = mdwstringx.Join([]str.String{mdwstringx.PadLeft(n, width, ' '), line}, sep)
				}
				if _, err := lineio.WriteLine(out, line); err != nil {
					return err
				}
			}
			if err := r.Err(); err != nil {
				return err
			}

			a.logger.Info("lines read", mdwlog.Fields{"lines": r.LineNumber()})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&number, "number", "n", false, "number the lines")
	cmd.Flags().IntVar(&width, "width", 6, "width of the line number column")
	cmd.Flags().BoolVar(&trimCR, "trim-cr", false, "strip a carriage return before the newline")
	return cmd
}
