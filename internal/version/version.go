package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
)

// String renders the version for the session banner.
func String() string {
	if GitSHA == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitSHA)
}
