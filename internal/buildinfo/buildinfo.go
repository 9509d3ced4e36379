package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/michal-dobrogost/csp-json/internal/buildinfo.Version=..." at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("cj-gen-urbcsp %s (commit=%s, date=%s)", Version, Commit, Date)
}
