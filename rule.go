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
	"slices"
	"strings"
)

// RuleType classifies a Rule's origin, which in turn governs how conflict
// analysis and problem reporting treat it.
type RuleType int

const (
	RulePackage RuleType = iota
	RuleJob
	RuleUpdate
	RuleFeature
	RuleLearned
	RuleChoice
)

func (t RuleType) String() string {
	switch t {
	case RulePackage:
		return "PACKAGE"
	case RuleJob:
		return "JOB"
	case RuleUpdate:
		return "UPDATE"
	case RuleFeature:
		return "FEATURE"
	case RuleLearned:
		return "LEARNED"
	case RuleChoice:
		return "CHOICE"
	default:
		return "UNKNOWN"
	}
}

// RuleReason tags *why* a rule was generated, independent of its RuleType —
// two JOB rules can carry different reasons (install vs lock), and a
// PACKAGE rule's reason distinguishes a require from a conflict.
type RuleReason int

const (
	ReasonJobInstall RuleReason = iota
	ReasonJobRemove
	ReasonJobLock
	ReasonPackageRequires
	ReasonPackageConflicts
	ReasonPackageSameName
	ReasonPackageReplace
	ReasonNotInstallable
	ReasonUpdate
	ReasonFeature
	ReasonLearned
)

// noNext marks an absent watch-list successor; rule id 0 is a valid rule, so
// -1 (not 0) is the sentinel Next1/Next2 use.
const noNext = -1

// Rule is a disjunction of literals with provenance, an enable/disable flag,
// and the two-literal watch state the solver's propagation loop maintains.
//
// Rule equality is defined over the literal multiset (order-independent);
// RuleSet.Add uses it to reject duplicates. A rule with zero literals is
// impossible (unconditionally false); one with exactly one literal is an
// assertion that propagates immediately at decision level 1.
type Rule struct {
	ID         int
	Literals   []Literal
	Type       RuleType
	Reason     RuleReason
	ReasonData Why

	Disabled bool
	Weak     bool

	// Watch1/Watch2 are literal ids (see Literal.ID) this rule is watched
	// on; Next1/Next2 chain this rule into the intrusive linked list headed
	// by DecisionMap.watches[watchN], indexed by rule id (noNext = end of
	// list). Per-rule watch state is mutated only during propagation.
	Watch1 int
	Watch2 int
	Next1  int
	Next2  int
}

// newRule constructs a Rule, or returns nil for a self-tautological clause
// (a literal and its own inverse both present).
func newRule(literals []Literal, typ RuleType, reason RuleReason, data Why) *Rule {
	if isTautology(literals) {
		return nil
	}
	return &Rule{
		Literals:   literals,
		Type:       typ,
		Reason:     reason,
		ReasonData: data,
		Watch1:     noNext,
		Watch2:     noNext,
		Next1:      noNext,
		Next2:      noNext,
	}
}

func isTautology(literals []Literal) bool {
	seen := make(map[int]bool, len(literals))
	for _, l := range literals {
		if seen[-l.ID()] {
			return true
		}
		seen[l.ID()] = true
	}
	return false
}

// IsAssertion reports whether the rule has exactly one literal.
func (r *Rule) IsAssertion() bool {
	return len(r.Literals) == 1
}

// IsImpossible reports whether the rule has zero literals (unconditionally
// false — it can never be satisfied).
func (r *Rule) IsImpossible() bool {
	return len(r.Literals) == 0
}

// literalIDs returns the rule's literal ids sorted ascending, used for
// duplicate detection and for stable hashing.
func (r *Rule) literalIDs() []int {
	ids := make([]int, len(r.Literals))
	for i, l := range r.Literals {
		ids[i] = l.ID()
	}
	slices.Sort(ids)
	return ids
}

// equalLiterals reports whether two rules share the same literal multiset.
func (r *Rule) equalLiterals(other *Rule) bool {
	a, b := r.literalIDs(), other.literalIDs()
	return slices.Equal(a, b)
}

// String renders the rule as a disjunction, e.g. "(-a-1 | +b-2)".
func (r *Rule) String() string {
	if len(r.Literals) == 0 {
		return "(impossible)"
	}
	parts := make([]string, len(r.Literals))
	for i, l := range r.Literals {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}
