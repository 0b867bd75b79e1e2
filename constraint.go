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

import "strings"

// Constraint is the predicate Pool.WhatProvides filters candidate versions
// with. Implementations are immutable and comparable only through String,
// which doubles as the memoization digest Pool keys its cache on.
type Constraint interface {
	// Matches reports whether v satisfies the constraint.
	Matches(v Version) bool

	// String renders the constraint deterministically; equal constraints
	// must render identically so Pool memoization can key off it.
	String() string
}

// AnyConstraint matches every version. It is the constraint used when a
// link names a package with no version qualifier.
type AnyConstraint struct{}

// Matches always returns true.
func (AnyConstraint) Matches(Version) bool { return true }

// String returns "*".
func (AnyConstraint) String() string { return "*" }

// ExactConstraint matches only versions whose String form equals Version's.
type ExactConstraint struct {
	Version Version
}

// Matches reports whether v's string form equals the constrained version's.
func (c ExactConstraint) Matches(v Version) bool {
	if v == nil {
		return false
	}
	return c.Version.String() == v.String()
}

// String renders as "==<version>".
func (c ExactConstraint) String() string {
	return "==" + c.Version.String()
}

// IntervalConstraint adapts a VersionSet (union of bound intervals) into a
// Constraint. ParseVersionRange produces the VersionSet this wraps.
type IntervalConstraint struct {
	Set VersionSet
}

// NewIntervalConstraint wraps a VersionSet as a Constraint.
func NewIntervalConstraint(set VersionSet) IntervalConstraint {
	if set == nil {
		set = (&IntervalSet{}).Full()
	}
	return IntervalConstraint{Set: set}
}

// ParseExactOrInterval parses s the same way ParseConstraint's interval path
// does, but collapses the result to an ExactConstraint when it turns out to
// describe exactly one version (e.g. "==1.2.3") — a cheaper Matches and a
// plainer String than carrying a one-span IntervalSet around for it.
func ParseExactOrInterval(s string) (Constraint, error) {
	set, err := ParseVersionRange(s)
	if err != nil {
		return nil, err
	}
	if v, ok := singletonVersion(set); ok {
		return ExactConstraint{Version: v}, nil
	}
	return NewIntervalConstraint(set), nil
}

// Matches reports whether v falls inside the wrapped VersionSet.
func (c IntervalConstraint) Matches(v Version) bool {
	if v == nil {
		return false
	}
	if c.Set == nil {
		return true
	}
	return c.Set.Contains(v)
}

// String delegates to the underlying VersionSet's rendering.
func (c IntervalConstraint) String() string {
	if c.Set == nil {
		return "*"
	}
	return c.Set.String()
}

// MultiConstraint is the logical AND of its children. An empty MultiConstraint
// matches everything, mirroring Pool's "constraint=None matches all" rule.
type MultiConstraint struct {
	Constraints []Constraint
}

// NewMultiConstraint builds the conjunction of the given constraints.
func NewMultiConstraint(constraints ...Constraint) MultiConstraint {
	return MultiConstraint{Constraints: constraints}
}

// Matches reports whether v satisfies every child constraint.
func (c MultiConstraint) Matches(v Version) bool {
	for _, child := range c.Constraints {
		if !child.Matches(v) {
			return false
		}
	}
	return true
}

// String renders children joined by " && ", or "*" when empty.
func (c MultiConstraint) String() string {
	if len(c.Constraints) == 0 {
		return "*"
	}
	parts := make([]string, len(c.Constraints))
	for i, child := range c.Constraints {
		parts[i] = child.String()
	}
	return strings.Join(parts, " && ")
}

// ParseConstraint parses a range expression into a Constraint. An empty
// string or "*" yields AnyConstraint. Caret/tilde shorthand ("^1.2.3",
// "~1.2") is Masterminds/semver syntax the interval parser (see
// ParseVersionRange) has no notion of, so expressions using it are handed
// to SemverConstraint instead; everything else goes through the interval
// parser as before.
func ParseConstraint(s string) (Constraint, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "*" {
		return AnyConstraint{}, nil
	}
	if strings.HasPrefix(trimmed, "^") || strings.HasPrefix(trimmed, "~") {
		return NewSemverConstraint(trimmed)
	}
	set, err := ParseVersionRange(s)
	if err != nil {
		return nil, err
	}
	return NewIntervalConstraint(set), nil
}

var (
	_ Constraint = AnyConstraint{}
	_ Constraint = ExactConstraint{}
	_ Constraint = IntervalConstraint{}
	_ Constraint = MultiConstraint{}
)
