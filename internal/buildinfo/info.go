// Package buildinfo holds version details injected at link time.
package buildinfo

// Set with -ldflags "-X github.com/ledgerkeep/assetlog/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
