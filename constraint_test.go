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

func TestParseConstraintCaretDelegatesToSemver(t *testing.T) {
	c, err := ParseConstraint("^1.2.0")
	if err != nil {
		t.Fatalf("ParseConstraint: %v", err)
	}
	if _, ok := c.(*SemverConstraint); !ok {
		t.Fatalf("ParseConstraint(^1.2.0) = %T, want *SemverConstraint", c)
	}

	cases := []struct {
		version string
		want    bool
	}{
		{"1.2.0", true},
		{"1.9.9", true},
		{"2.0.0", false},
		{"1.1.9", false},
	}
	for _, tc := range cases {
		v := NewSemanticVersion(parseTriple(tc.version))
		if got := c.Matches(v); got != tc.want {
			t.Errorf("Matches(%s) = %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestParseConstraintTildeDelegatesToSemver(t *testing.T) {
	c, err := ParseConstraint("~1.2.3")
	if err != nil {
		t.Fatalf("ParseConstraint: %v", err)
	}
	if _, ok := c.(*SemverConstraint); !ok {
		t.Fatalf("ParseConstraint(~1.2.3) = %T, want *SemverConstraint", c)
	}
	if !c.Matches(NewSemanticVersion(1, 2, 9)) {
		t.Error("~1.2.3 should match 1.2.9")
	}
	if c.Matches(NewSemanticVersion(1, 3, 0)) {
		t.Error("~1.2.3 should not match 1.3.0")
	}
}

func TestParseConstraintIntervalSyntaxUnaffected(t *testing.T) {
	c, err := ParseConstraint(">=1.0.0, <2.0.0")
	if err != nil {
		t.Fatalf("ParseConstraint: %v", err)
	}
	if _, ok := c.(IntervalConstraint); !ok {
		t.Fatalf("ParseConstraint(>=1.0.0, <2.0.0) = %T, want IntervalConstraint", c)
	}
	if !c.Matches(NewSemanticVersion(1, 5, 0)) {
		t.Error(">=1.0.0, <2.0.0 should match 1.5.0")
	}
	if c.Matches(NewSemanticVersion(2, 0, 0)) {
		t.Error(">=1.0.0, <2.0.0 should not match 2.0.0")
	}
}

func TestParseExactOrIntervalCollapsesSingleton(t *testing.T) {
	c, err := ParseExactOrInterval("==1.2.3")
	if err != nil {
		t.Fatalf("ParseExactOrInterval: %v", err)
	}
	if _, ok := c.(ExactConstraint); !ok {
		t.Fatalf("ParseExactOrInterval(==1.2.3) = %T, want ExactConstraint", c)
	}
	if !c.Matches(NewSemanticVersion(1, 2, 3)) {
		t.Error("==1.2.3 should match 1.2.3")
	}
	if c.Matches(NewSemanticVersion(1, 2, 4)) {
		t.Error("==1.2.3 should not match 1.2.4")
	}
}

func TestNewSemverConstraintRejectsInvalidExpression(t *testing.T) {
	if _, err := NewSemverConstraint("not a version"); err == nil {
		t.Fatal("NewSemverConstraint(invalid): got nil error")
	}
}
