// Package typeout is a mock editor that reveals a loaded file one character
// per keystroke. The root package only carries release metadata.
package typeout

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// embeddedVersion is the release recorded in the VERSION file at the module
// root; cmd/typeout prints it for -version.
//
//go:embed VERSION
var embeddedVersion string

// Version returns the typeout release, e.g. "0.1.0", without the `v` prefix.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a release tag, e.g. "v0.1.0".
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded Version is valid SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
