package version

import "fmt"

// Version is the docnode release. Set it at build time:
// go build -ldflags "-X git.home.luguber.info/inful/docnode/internal/version.Version=v0.3.0".
var Version = "unknown"

// Build metadata, also set via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the version line printed by --version.
func String() string {
	return fmt.Sprintf("docnode %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
