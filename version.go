// Copyright 2024 The University of Queensland
// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package depsolve

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is any ordered, stringable version marker a Package carries.
// Ordering goes through Sort. Some constraints work on the String form
// instead: ExactConstraint compares it for equality, and SemverConstraint
// reparses it as a semantic version.
type Version interface {
	// String returns the canonical textual form of the version.
	String() string

	// Sort returns -1, 0 or 1 as the receiver is less than, equal to,
	// or greater than other.
	Sort(other Version) int
}

// SemanticVersion is a major.minor.patch[-prerelease][+build] version.
type SemanticVersion struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Build      string
}

// NewSemanticVersion builds a release SemanticVersion with no prerelease tag.
func NewSemanticVersion(major, minor, patch int) *SemanticVersion {
	return &SemanticVersion{Major: major, Minor: minor, Patch: patch}
}

// NewSemanticVersionWithPrerelease builds a SemanticVersion carrying a prerelease tag.
func NewSemanticVersionWithPrerelease(major, minor, patch int, prerelease string) *SemanticVersion {
	return &SemanticVersion{Major: major, Minor: minor, Patch: patch, Prerelease: prerelease}
}

// ParseSemanticVersion parses strings like "1.2.3", "1.2.3-alpha.1" or "1.2.3-alpha+build".
func ParseSemanticVersion(s string) (*SemanticVersion, error) {
	sv := &SemanticVersion{}

	parts := strings.SplitN(s, "+", 2)
	if len(parts) == 2 {
		sv.Build = parts[1]
	}
	versionPart := parts[0]

	parts = strings.SplitN(versionPart, "-", 2)
	if len(parts) == 2 {
		sv.Prerelease = parts[1]
	}
	corePart := parts[0]

	versionParts := strings.Split(corePart, ".")
	if len(versionParts) < 1 || len(versionParts) > 3 {
		return nil, fmt.Errorf("invalid version format: %s", s)
	}

	var err error
	sv.Major, err = strconv.Atoi(versionParts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid major version: %s", versionParts[0])
	}
	if len(versionParts) > 1 {
		sv.Minor, err = strconv.Atoi(versionParts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid minor version: %s", versionParts[1])
		}
	}
	if len(versionParts) > 2 {
		sv.Patch, err = strconv.Atoi(versionParts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid patch version: %s", versionParts[2])
		}
	}

	return sv, nil
}

// String returns the canonical textual form of the version.
func (sv *SemanticVersion) String() string {
	s := fmt.Sprintf("%d.%d.%d", sv.Major, sv.Minor, sv.Patch)
	if sv.Prerelease != "" {
		s += "-" + sv.Prerelease
	}
	if sv.Build != "" {
		s += "+" + sv.Build
	}
	return s
}

// Sort compares two SemanticVersions per semver precedence rules; build
// metadata is ignored, and a prerelease has lower precedence than its release.
func (sv *SemanticVersion) Sort(other Version) int {
	otherSV, ok := other.(*SemanticVersion)
	if !ok {
		return strings.Compare(sv.String(), other.String())
	}

	if sv.Major != otherSV.Major {
		return cmpInt(sv.Major, otherSV.Major)
	}
	if sv.Minor != otherSV.Minor {
		return cmpInt(sv.Minor, otherSV.Minor)
	}
	if sv.Patch != otherSV.Patch {
		return cmpInt(sv.Patch, otherSV.Patch)
	}

	switch {
	case sv.Prerelease == "" && otherSV.Prerelease == "":
		return 0
	case sv.Prerelease == "" && otherSV.Prerelease != "":
		return 1
	case sv.Prerelease != "" && otherSV.Prerelease == "":
		return -1
	default:
		return comparePrereleaseIdentifiers(sv.Prerelease, otherSV.Prerelease)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrereleaseIdentifiers compares dot-separated prerelease identifiers,
// numeric parts ordering before alphanumeric per semver precedence rules.
func comparePrereleaseIdentifiers(a, b string) int {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")

	minLen := len(aParts)
	if len(bParts) < minLen {
		minLen = len(bParts)
	}

	for i := 0; i < minLen; i++ {
		aPart, bPart := aParts[i], bParts[i]
		aInt, aErr := strconv.Atoi(aPart)
		bInt, bErr := strconv.Atoi(bPart)

		switch {
		case aErr == nil && bErr == nil:
			if aInt != bInt {
				return cmpInt(aInt, bInt)
			}
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		default:
			if cmp := strings.Compare(aPart, bPart); cmp != 0 {
				return cmp
			}
		}
	}

	return cmpInt(len(aParts), len(bParts))
}

// SimpleVersion is a basic string-compared version, for ecosystems with no
// numeric ordering (or as a fallback when a candidate fails semver parsing).
type SimpleVersion string

// String returns the version string.
func (v SimpleVersion) String() string { return string(v) }

// Sort performs lexicographic comparison.
func (v SimpleVersion) Sort(other Version) int {
	return strings.Compare(string(v), other.String())
}

var (
	_ Version = (*SemanticVersion)(nil)
	_ Version = SimpleVersion("")
)
