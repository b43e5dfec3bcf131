// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     cmd
// Description: Root command, settings and logger setup
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"
	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/text/str"
)

// app carries the state of one command run
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	settings config.Settings
	logger   *mdwlog.Logger
	runID    string
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	a := &app{logger: mdwlog.Nop()}

	root := &cobra.Command{
		Use:   "textkit",
		Short: "Byte strings, UTF transcoding and number formatting",
		Long: `textkit works on text as byte strings.

Commands:
  transcode  - convert between UTF-8, UTF-16 and UTF-32
  inspect    - show the code points of a text
  split      - split input at a delimiter byte
  trim       - trim white space of every line
  lines      - print lines, optionally numbered
  num        - format and parse numbers`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./textkit.toml or the user config dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json, console or logfmt")

	root.AddCommand(
		newTranscodeCommand(a),
		newInspectCommand(a),
		newSplitCommand(a),
		newTrimCommand(a),
		newLinesCommand(a),
		newNumCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command with the process arguments
func Execute() error {
	return NewRootCommand().Execute()
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

// setup loads the settings and creates the logger of this run
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, _, err := config.LoadSettings(a.cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings

	level, err := mdwlog.ParseLevel(settings.LogLevel)
	if err != nil {
		return mdwerrors.ConfigInvalid(config.KeyLogLevel, settings.LogLevel, err.Error())
	}
	if a.verbose {
		level = mdwlog.LevelDebug
	}

	formatName := settings.LogFormat
	if a.logFormat != "" {
		formatName = a.logFormat
	}
	format, err := mdwlog.ParseFormat(formatName)
	if err != nil {
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "setup", formatName, "text, json, console or logfmt")
	}

	a.runID = uuid.NewString()
	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "textkit",
	}).WithCorrelationID(a.runID)

	a.logger.Debug("settings loaded", mdwlog.Fields{
		"command": cmd.Name(),
		"config":  a.cfgFile,
		"policy":  settings.CodecPolicy,
	})
	return nil
}

// readInput reads the file named by path, or stdin when path is empty or "-"
func readInput(cmd *cobra.Command, path string) (str.String, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return str.Empty, mdwerrors.IOFailure(mdwerrors.ModuleCLI, "readInput", err)
	}
	return str.View(data), nil
}

// openInput opens the file named by path, or stdin when path is empty or "-"
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, mdwerrors.IOFailure(mdwerrors.ModuleCLI, "openInput", err)
	}
	return f, nil
}

// writeOutput writes s to the file named by path, or stdout when path is
// empty or "-"
func writeOutput(cmd *cobra.Command, path string, s str.String) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(s.Bytes())
		if err != nil {
			return mdwerrors.IOFailure(mdwerrors.ModuleCLI, "writeOutput", err)
		}
		return nil
	}
	if err := os.WriteFile(path, s.Bytes(), 0o644); err != nil {
		return mdwerrors.IOFailure(mdwerrors.ModuleCLI, "writeOutput", err)
	}
	return nil
}

func inputArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
