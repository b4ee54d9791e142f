package update

import (
	"fmt"
	"regexp"
	"strconv"
)

var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is a strict major.minor.patch version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a "major.minor.patch" string. Anything else is an
// error: no "v" prefix, no prerelease suffix, no two-part versions.
func ParseVersion(s string) (*Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch, _ := strconv.Atoi(matches[3])

	return &Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the string representation.
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare compares two versions.
// Returns:
//   - 1 if v > other
//   - 0 if v == other
//   - -1 if v < other
func (v *Version) Compare(other *Version) int {
	if v.Major != other.Major {
		if v.Major > other.Major {
			return 1
		}
		return -1
	}

	if v.Minor != other.Minor {
		if v.Minor > other.Minor {
			return 1
		}
		return -1
	}

	if v.Patch != other.Patch {
		if v.Patch > other.Patch {
			return 1
		}
		return -1
	}

	return 0
}

// IsNewer reports whether candidate is strictly newer than baseline.
// If either string is not a valid three-part version the answer is false:
// a malformed remote tag must never trigger an update.
func IsNewer(candidate, baseline string) bool {
	cand, err := ParseVersion(candidate)
	if err != nil {
		return false
	}

	base, err := ParseVersion(baseline)
	if err != nil {
		return false
	}

	return cand.Compare(base) > 0
}
