package app

import (
	"fmt"
	"runtime/debug"
)

// Overridden at link time:
//
//	-ldflags "-X github.com/heartmarshall/boards-backend/internal/app.Version=v1.4.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports the version plus the commit and build time. Values not
// injected through ldflags fall back to the VCS stamp the Go toolchain embeds.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
