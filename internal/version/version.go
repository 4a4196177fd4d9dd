// Package version provides centralized version information for scalaris-pic.
// Versions follow semantic versioning (semver) conventions.

package version

// Version holds the current scalaris-pic version.
// Format: major.minor.patch[-prerelease][+build]
const Version = "0.1.0-dev"
