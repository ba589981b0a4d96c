// Package akshara is the root of the akshara module. It holds the release
// version that the panel host prints and stamps into its logs.
package akshara

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
)

// ErrNotSemver is returned by ParseRelease for strings outside SemVer 2.0.0.
var ErrNotSemver = errors.New("not a semver version")

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// Release is a parsed SemVer 2.0.0 version.
type Release struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

// ParseRelease parses v, which must not carry a leading "v".
func ParseRelease(v string) (Release, error) {
	m := releaseRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Release{}, fmt.Errorf("%w: %q", ErrNotSemver, v)
	}
	var r Release
	for i, dst := range []*int{&r.Major, &r.Minor, &r.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Release{}, fmt.Errorf("%w: %q", ErrNotSemver, v)
		}
		*dst = n
	}
	r.Pre, r.Build = m[4], m[5]
	return r, nil
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Pre != "" {
		s += "-" + r.Pre
	}
	if r.Build != "" {
		s += "+" + r.Build
	}
	return s
}

// Tag is the git tag of the release.
func (r Release) Tag() string { return "v" + r.String() }

// Version returns the embedded release without a leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, err := ParseRelease(v)
	return err == nil
}

// Banner is the line printed by `akshara --version`. Binaries built from a
// git checkout append the short revision, marked dirty when the tree had
// local changes.
func Banner() string {
	s := "akshara " + VersionTag()
	if rev := vcsRevision(); rev != "" {
		s += " (" + rev + ")"
	}
	return s
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	var dirty bool
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			rev = kv.Value
		case "vcs.modified":
			dirty = kv.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
