// Package version holds the release string reported by `orfscan version`,
// the --version flag and GET /version.
package version

// Version is overridden at build time with -ldflags "-X orfscan/internal/version.Version=...".
var Version = "0.3.0"
