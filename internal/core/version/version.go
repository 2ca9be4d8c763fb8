// Package version reports the build identity of the binary
package version

import (
	"runtime/debug"
	"sync"
)

// Set with -ldflags, e.g.
// -X showcase/internal/core/version.version=v0.3.0 -X showcase/internal/core/version.commit=1a2b3c4
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// BuildInfo is served by /meta/version
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified,omitempty"`
}

var vcs = sync.OnceValue(func() BuildInfo {
	var out BuildInfo
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	out.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.Date = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}
	return out
})

// Info merges the ldflags values with the VCS stamp the toolchain embeds.
// Linker values win; missing ones fall back to the stamp, then "unknown".
func Info() BuildInfo {
	bi := vcs()
	bi.Service = "showcase"
	bi.Version = version
	if commit != "" {
		bi.Commit = commit
	}
	if date != "" {
		bi.Date = date
	}
	if bi.Commit == "" {
		bi.Commit = "unknown"
	}
	if bi.Date == "" {
		bi.Date = "unknown"
	}
	if len(bi.Commit) > 12 {
		bi.Commit = bi.Commit[:12]
	}
	return bi
}

// UserAgent is sent on every outbound request, e.g. "showcase/dev"
func UserAgent() string { return "showcase/" + version }
