// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information of the textkit binary
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version of the module
const Version = "0.2.0"

// Build metadata, set with -ldflags "-X"
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns "textkit vX.Y.Z"
func (i Info) Short() string {
	return "textkit v" + i.Version
}

// String returns the multi-line version report
func (i Info) String() string {
	return fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s",
		i.Short(), i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
