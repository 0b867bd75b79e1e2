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

	"github.com/Masterminds/semver/v3"
)

// SemverConstraint matches versions using Masterminds/semver range syntax
// ("^1.2.3", ">=1.0.0 <2.0.0", "~1.2", ...), the same family of expressions
// most real package ecosystems hand authors to write in their manifests.
//
// It re-parses Version.String() through semver.NewVersion on every Matches
// call rather than requiring candidates to already be *semver.Version, so it
// composes with any Version implementation a Repository happens to produce.
type SemverConstraint struct {
	raw string
	rng *semver.Constraints
}

// NewSemverConstraint parses a Masterminds/semver constraint expression.
func NewSemverConstraint(expr string) (*SemverConstraint, error) {
	rng, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, fmt.Errorf("depsolve: invalid semver constraint %q: %w", expr, err)
	}
	return &SemverConstraint{raw: expr, rng: rng}, nil
}

// Matches reports whether v, reparsed as a semver.Version, satisfies the
// range. A version that does not parse as semver never matches.
func (c *SemverConstraint) Matches(v Version) bool {
	if v == nil || c.rng == nil {
		return false
	}
	sv, err := semver.NewVersion(v.String())
	if err != nil {
		return false
	}
	return c.rng.Check(sv)
}

// String returns the original constraint expression, so equal expressions
// always render identically for Pool's memoization digest.
func (c *SemverConstraint) String() string {
	return c.raw
}

var _ Constraint = (*SemverConstraint)(nil)
