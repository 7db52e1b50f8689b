// Package buildinfo carries version stamps set with -ldflags at release time.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the stamps for `lithoprof --version`.
func String() string {
	return fmt.Sprintf("%s (commit=%s, date=%s)", Version, Commit, Date)
}
