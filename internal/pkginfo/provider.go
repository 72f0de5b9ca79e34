package pkginfo

import "os"

// Sentinel identities for paths whose owner could not be determined.
const (
	UnknownRPM = "unknown RPM package"
	UnknownDEB = "unknown DEB package"
)

// Maps a path to the identity of the package that installed it.
//
// The variant is chosen once at startup from configuration; the packing
// pipeline never inspects which one it holds.
type Provider interface {

	// Returns the owning package identity for path, a sentinel identity
	// when the owner cannot be determined, or "" when the provider does
	// not attribute this path at all (directories, or no backend).
	Owner(path string) string
}

// Provider used when no attribution backend was requested.
type None struct{}

// Always vacuous.
func (None) Owner(string) string { return "" }

// Whether path is a directory; folders have no recorded package owner
// and are skipped by every backend.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
