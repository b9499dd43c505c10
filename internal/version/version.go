package version

// Build information set by ldflags
var (
	Version = "0.1"     // Set by goreleaser: -X github.com/arthur-debert/bsconf/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/bsconf/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/bsconf/internal/version.Date={{.Date}}
)
