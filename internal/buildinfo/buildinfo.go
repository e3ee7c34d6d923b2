package buildinfo

import "fmt"

// Version, Commit and Date are set at build time, e.g.
// -ldflags "-X teddy/internal/buildinfo.Version=v1.0.0".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and HUD.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long adds the build date to Short when it is known.
func Long() string {
	if Date == "" || Date == "unknown" {
		return Short()
	}
	return fmt.Sprintf("%s (built %s)", Short(), Date)
}
