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
	"strings"
)

// ParseVersionRange parses the interval-constraint syntax this package's
// Constraint layer is built on: comparison operators (>=, >, <=, <, ==, !=,
// =), comma-separated AND, "||"-separated OR, and the "*" wildcard. Version
// tokens are parsed as SemanticVersion first, falling back to SimpleVersion,
// so a range can mix version flavors freely.
//
//	ParseVersionRange(">=1.0.0, <2.0.0")     // [1.0.0, 2.0.0)
//	ParseVersionRange(">=1.0.0 || >=3.0.0")  // >=1.0.0 OR >=3.0.0
//	ParseVersionRange("==1.5.0")             // exactly 1.5.0
func ParseVersionRange(s string) (VersionSet, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return (&IntervalSet{}).Full(), nil
	}

	orParts := strings.Split(s, "||")
	result := (&IntervalSet{}).Empty()

	for _, orPart := range orParts {
		orPart = strings.TrimSpace(orPart)
		if orPart == "" {
			return nil, fmt.Errorf("invalid empty range in %q", s)
		}

		current := (&IntervalSet{}).Full()
		for _, andPart := range strings.Split(orPart, ",") {
			token := strings.TrimSpace(andPart)
			if token == "" {
				return nil, fmt.Errorf("invalid empty constraint in %q", orPart)
			}

			set, err := parseComparison(token)
			if err != nil {
				return nil, err
			}

			current = current.Intersection(set)
			if current.IsEmpty() {
				break
			}
		}

		result = result.Union(current)
	}

	return result, nil
}

// comparisonOperators maps each recognized prefix to the edge pair it
// builds. Order matters: ">=" and "<=" must be tried before ">" and "<", and
// "==" before "=", or the shorter prefix would match first.
var comparisonOperators = []struct {
	prefix  string
	builder func(Version) VersionSet
}{
	{">=", func(v Version) VersionSet { return intervalSetFromEdges(newLowerEdge(v, true), posInfEdge()) }},
	{">", func(v Version) VersionSet { return intervalSetFromEdges(newLowerEdge(v, false), posInfEdge()) }},
	{"<=", func(v Version) VersionSet { return intervalSetFromEdges(negInfEdge(), newUpperEdge(v, true)) }},
	{"<", func(v Version) VersionSet { return intervalSetFromEdges(negInfEdge(), newUpperEdge(v, false)) }},
	{"==", func(v Version) VersionSet { return intervalSetFromEdges(newLowerEdge(v, true), newUpperEdge(v, true)) }},
	{"!=", func(v Version) VersionSet {
		eq := intervalSetFromEdges(newLowerEdge(v, true), newUpperEdge(v, true))
		return eq.Complement()
	}},
	{"=", func(v Version) VersionSet { return intervalSetFromEdges(newLowerEdge(v, true), newUpperEdge(v, true)) }},
}

// parseComparison parses one expression such as ">=1.0.0" or "!=2.0.0",
// treating a bare version with no operator as an exact match.
func parseComparison(expr string) (VersionSet, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty range expression")
	}

	for _, op := range comparisonOperators {
		if !strings.HasPrefix(expr, op.prefix) {
			continue
		}
		versionStr := strings.TrimSpace(expr[len(op.prefix):])
		version, err := parseRangeVersion(versionStr)
		if err != nil {
			return nil, err
		}
		return op.builder(version), nil
	}

	version, err := parseRangeVersion(expr)
	if err != nil {
		return nil, err
	}
	return intervalSetFromEdges(newLowerEdge(version, true), newUpperEdge(version, true)), nil
}

// parseRangeVersion parses a version token, preferring SemanticVersion and
// falling back to the looser SimpleVersion for anything that doesn't fit
// semver's shape.
func parseRangeVersion(raw string) (Version, error) {
	if raw == "" {
		return nil, fmt.Errorf("missing version in range expression")
	}
	if sv, err := ParseSemanticVersion(raw); err == nil {
		return sv, nil
	}
	return SimpleVersion(raw), nil
}
