package version

import "fmt"

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Transactional user and release branches on top of Subversion"

// Build information injected at build time via ldflags
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // VCS revision
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("svnbranch %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
