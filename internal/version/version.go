// Package version renders the build version injected via ldflags.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Normalize returns the canonical semver form of a build version, without a
// leading "v". Strings that are not semver (e.g. "dev") are returned as-is.
func Normalize(v string) string {
	sv, err := parseSemver(v)
	if err != nil {
		return v
	}
	return sv.String()
}

// String formats the full version line printed by --version.
func String(v, commit, date string) string {
	return Normalize(v) + " (commit: " + commit + ", built: " + date + ")"
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
