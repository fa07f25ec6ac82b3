package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("onlawthink %s (commit=%s, date=%s)", Version, Commit, Date)
}
