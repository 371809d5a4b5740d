// Package version holds build information injected with ldflags, e.g.
//
//	-ldflags "-X github.com/jmylchreest/tonal/internal/version.Version=x.y.z
//	          -X github.com/jmylchreest/tonal/internal/version.Commit=$(git rev-parse HEAD)
//	          -X github.com/jmylchreest/tonal/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
)

const unknown = "unknown"

var (
	// Version is the semantic version of the application.
	Version = "dev"
	// Commit is the git commit hash of the build.
	Commit = unknown
	// Date is the build date in RFC3339 format.
	Date = unknown
)

// Info is the build information of the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ShortCommit returns the first eight characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}

func (i Info) String() string {
	if i.Commit != unknown && i.Date != unknown {
		return fmt.Sprintf("tonal version %s (commit: %s, built: %s, %s, %s)",
			i.Version, i.ShortCommit(), i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("tonal version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}

// String returns the human-readable version line.
func String() string { return Get().String() }
