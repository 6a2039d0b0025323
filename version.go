// Package richtext holds module metadata. The attributed text itself lives
// in the text package; history, render and editor build on it.
package richtext

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version reports the release this build was cut from. The cobra demo
// prints it for --version and logs it at startup.
func Version() string { return strings.TrimSpace(rawVersion) }

func Tag() string { return "v" + Version() }

// IsSemver accepts bare SemVer 2.0.0 strings; a "v" prefix is rejected, so
// compare against Version rather than Tag. Surrounding space is ignored.
func IsSemver(v string) bool {
	return semverPattern.MatchString(strings.TrimSpace(v))
}
