package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstant(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"version", info.Version, Version},
		{"commit", info.GitCommit, GitCommit},
		{"build date", info.BuildDate, BuildDate},
		{"go version", info.GoVersion, runtime.Version()},
		{"platform", info.Platform, runtime.GOOS + "/" + runtime.GOARCH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := Get().String()
	if !strings.HasPrefix(s, "textkit v"+Version+"\n") {
		t.Errorf("unexpected first line: %q", s)
	}
	if !strings.Contains(s, "Git Commit: "+GitCommit) {
		t.Errorf("commit missing: %q", s)
	}
}
