// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     cmd
// Description: num command: number formatting and parsing
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/text/conv"
	"github.com/msto63/textkit/foundation/text/lineio"
	"github.com/msto63/textkit/foundation/text/str"
)

func newNumCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "num",
		Short: "Format and parse numbers",
	}
	cmd.AddCommand(newNumFmtCommand(a), newNumParseCommand(a))
	return cmd
}

func newNumFmtCommand(a *app) *cobra.Command {
	var (
		radix     int
		precision int
	)

	cmd := &cobra.Command{
		Use:   "fmt value...",
		Short: "Format integers in a radix and floats with a precision",
		Long: `Format each value. Integers are printed in --radix, floats with
--precision fraction digits and booleans as true or false. The defaults
come from format.radix and format.precision.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("radix") {
				radix = a.settings.FormatRadix
			}
			if !cmd.Flags().Changed("precision") {
				precision = a.settings.FormatPrecision
			}
			if radix < 2 || radix > 16 {
				return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "num fmt", radix, "radix within [2,16]")
			}

			b := str.NewBuilderSize(a.settings.BuilderBufferSize)
			for _, arg := range args {
				s, err := formatValue(str.ViewString(arg), radix, precision)
				if err != nil {
					return err
				}
				b.AppendLine(s)
			}
			_, err := lineio.WriteString(cmd.OutOrStdout(), b.Build())
			return err
		},
	}

	cmd.Flags().IntVarP(&radix, "radix", "r", 10, "integer radix (2-16)")
	cmd.Flags().IntVarP(&precision, "precision", "p", conv.DefaultPrecision, "fraction digits of floats")
	return cmd
}

// formatValue formats s as integer, float or boolean, in this order
func formatValue(s str.String, radix, precision int) (str.String, error) {
	if v, ok := conv.ParseInt(s, 0); ok {
		return conv.FormatInt(v, radix), nil
	}
	if v, ok := conv.ParseFloat(s, 0); ok {
		return conv.FormatFloat(v, precision), nil
	}
	if v, ok := conv.ParseBool(s, false); ok {
		return conv.FormatBool(v), nil
	}
	return str.Empty, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "num fmt", s.String(), "integer, float or boolean")
}

func newNumParseCommand(a *app) *cobra.Command {
	var radix int

	cmd := &cobra.Command{
		Use:   "parse value...",
		Short: "Show how a value parses as each type",
		Long: `Parse each value as int, uint (in --radix), float and bool and print
the results. A dash marks a failed parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := str.ViewString("-")
			b := str.NewBuilderSize(a.settings.BuilderBufferSize)
			for _, arg := range args {
				s := str.ViewString(arg)
				b.AppendText(arg)

				b.AppendText("\tint=")
				if v, ok := conv.ParseInt(s, 0); ok {
					b.AppendValue(conv.Int(v))
				} else {
					b.Append(dash)
				}

				b.AppendText("\tuint=")
				if v, ok := conv.ParseUintRadix(s, radix, 0); ok {
					b.AppendValue(conv.Uint(v))
				} else {
					b.Append(dash)
				}

				b.AppendText("\tfloat=")
				if v, ok := conv.ParseFloat(s, 0); ok {
					b.AppendValue(conv.Float{Value: v, Precision: a.settings.FormatPrecision})
				} else {
					b.Append(dash)
				}

				b.AppendText("\tbool=")
				if v, ok := conv.ParseBool(s, false); ok {
					b.AppendValue(conv.Bool(v))
				} else {
					b.Append(dash)
				}
				b.AppendByte('\n')
			}
			_, err := lineio.WriteString(cmd.OutOrStdout(), b.Build())
			return err
		},
	}

	cmd.Flags().IntVarP(&radix, "radix", "r", 10, "radix of the uint parse")
	return cmd
}
