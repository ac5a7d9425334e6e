package commit

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/blang/semver/v4"
)

// versionRE accepts the four marker shapes: 1.2.3, v1.2.3, 1.2.3+68 and
// 1.2.3-beta.1. A leading v is allowed on all of them. Build metadata is
// numeric so it can be compared as a precedence tiebreaker.
var versionRE = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?(\+\d+)?$`)

var errInvalidVersion = errors.New("commit: invalid version string")

// Version is one resolved version marker: the parsed semver, the token
// exactly as it appears in history, and the commit it points at.
type Version struct {
	semver.Version
	Raw    string `json:"raw"`
	Commit string `json:"commit"`
}

func (v *Version) String() string { return v.Raw }

func (v *Version) ShortCommit() string {
	if len(v.Commit) >= 8 {
		return v.Commit[:8]
	}
	return v.Commit
}

// IsVersion reports whether s matches the version marker grammar.
func IsVersion(s string) bool { return versionRE.MatchString(s) }

// ParseVersion parses a version token in any accepted shape.
func ParseVersion(s string) (semver.Version, error) {
	if !versionRE.MatchString(s) {
		return semver.Version{}, errInvalidVersion
	}
	v, err := semver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return semver.Version{}, errInvalidVersion
	}
	return v, nil
}

// versionKey normalizes a parsed version for equality checks. The semver
// String includes prerelease and build, so v1.2.3 and 1.2.3 collide while
// 1.2.3+68 and 1.2.3+71 do not.
func versionKey(v semver.Version) string { return v.String() }

func buildNum(v semver.Version) (uint64, bool) {
	if len(v.Build) != 1 {
		return 0, false
	}
	n, err := strconv.ParseUint(v.Build[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

type versions []*Version

func (s versions) Len() int      { return len(s) }
func (s versions) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface. Build metadata is invisible to semver
// comparison, so equal versions tiebreak on numeric build, with no build
// sorting first.
func (s versions) Less(i, j int) bool {
	a, b := s[i].Version, s[j].Version
	if c := a.Compare(b); c != 0 {
		return c < 0
	}
	an, aok := buildNum(a)
	bn, bok := buildNum(b)
	if aok && bok {
		return an < bn
	}
	return !aok && bok
}

// SortVersions sorts markers by ascending precedence.
func SortVersions(vs []*Version) {
	sort.Sort(versions(vs))
}
