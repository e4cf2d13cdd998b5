package buildinfo

import "fmt"

// Version, Commit and Date are set at build time via -ldflags, e.g.
//
//	-X fxray/internal/buildinfo.Version=v0.3.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and splash.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Line is the startup log line.
func Line() string {
	return fmt.Sprintf("fxray %s (commit %s, built %s)", Short(), Commit, Date)
}
