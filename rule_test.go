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

import "testing"

func TestNewRuleRejectsTautology(t *testing.T) {
	a := &Package{ID: 1, Name: MakeName("a")}
	r := newRule([]Literal{NewLiteral(a, true), NewLiteral(a, false)}, RulePackage, ReasonPackageRequires, Why{})
	if r != nil {
		t.Fatalf("newRule with a literal and its inverse = %v, want nil", r)
	}
}

func TestRuleIsAssertionAndImpossible(t *testing.T) {
	a := &Package{ID: 1, Name: MakeName("a")}
	b := &Package{ID: 2, Name: MakeName("b")}

	assertion := newRule([]Literal{NewLiteral(a, true)}, RuleJob, ReasonJobInstall, Why{})
	if !assertion.IsAssertion() {
		t.Error("single-literal rule should be an assertion")
	}

	binary := newRule([]Literal{NewLiteral(a, true), NewLiteral(b, true)}, RulePackage, ReasonPackageRequires, Why{})
	if binary.IsAssertion() || binary.IsImpossible() {
		t.Error("two-literal rule is neither an assertion nor impossible")
	}

	impossible := impossibleRule(RuleJob, ReasonJobInstall, Why{})
	if !impossible.IsImpossible() {
		t.Error("zero-literal rule should be impossible")
	}
}

func TestRuleSetAddDeduplicatesByLiteralMultiset(t *testing.T) {
	a := &Package{ID: 1, Name: MakeName("a")}
	b := &Package{ID: 2, Name: MakeName("b")}

	rs := NewRuleSet()
	r1 := newRule([]Literal{NewLiteral(a, false), NewLiteral(b, true)}, RulePackage, ReasonPackageRequires, Why{})
	r2 := newRule([]Literal{NewLiteral(b, true), NewLiteral(a, false)}, RulePackage, ReasonPackageRequires, Why{})

	id1, added1 := rs.Add(r1)
	if !added1 {
		t.Fatal("first Add should succeed")
	}
	id2, added2 := rs.Add(r2)
	if added2 {
		t.Fatal("second Add with the same literal multiset (different order) should be rejected")
	}
	if id1 != id2 {
		t.Fatalf("duplicate Add returned id %d, want %d", id2, id1)
	}
	if rs.Len() != 1 {
		t.Fatalf("RuleSet.Len() = %d, want 1", rs.Len())
	}
}

func TestRuleSetByTypeFiltersCorrectly(t *testing.T) {
	a := &Package{ID: 1, Name: MakeName("a")}
	b := &Package{ID: 2, Name: MakeName("b")}

	rs := NewRuleSet()
	rs.Add(newRule([]Literal{NewLiteral(a, true)}, RuleJob, ReasonJobInstall, Why{}))
	rs.Add(newRule([]Literal{NewLiteral(a, false), NewLiteral(b, true)}, RulePackage, ReasonPackageRequires, Why{}))

	var jobCount, packageCount int
	for range rs.ByType(RuleJob) {
		jobCount++
	}
	for range rs.ByType(RulePackage) {
		packageCount++
	}
	if jobCount != 1 || packageCount != 1 {
		t.Fatalf("ByType counts = (job=%d, package=%d), want (1, 1)", jobCount, packageCount)
	}
}

// TestAddWatchesToRuleSkipsAssertions covers the watch invariant: only
// rules with two or more literals are ever placed on a watch list.
func TestAddWatchesToRuleSkipsAssertions(t *testing.T) {
	a := &Package{ID: 1, Name: MakeName("a")}
	dm := newDecisionMap()

	assertion := &Rule{ID: 0, Literals: []Literal{NewLiteral(a, true)}, Watch1: noNext, Watch2: noNext, Next1: noNext, Next2: noNext}
	addWatchesToRule(dm, assertion)

	if assertion.Watch1 != noNext || assertion.Watch2 != noNext {
		t.Fatalf("assertion rule got watches installed: %+v", assertion)
	}
}
