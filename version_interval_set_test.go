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

func mustVersion(t *testing.T, s string) Version {
	t.Helper()
	v, err := ParseSemanticVersion(s)
	if err != nil {
		t.Fatalf("ParseSemanticVersion(%q): %v", s, err)
	}
	return v
}

func TestParseVersionRangeBasicOperators(t *testing.T) {
	tests := []struct {
		expr    string
		version string
		want    bool
	}{
		{">=1.0.0, <2.0.0", "1.5.0", true},
		{">=1.0.0, <2.0.0", "2.0.0", false},
		{">1.0.0", "1.0.0", false},
		{">1.0.0", "1.0.1", true},
		{"==1.2.3", "1.2.3", true},
		{"==1.2.3", "1.2.4", false},
		{"!=1.2.3", "1.2.4", true},
		{"!=1.2.3", "1.2.3", false},
		{"*", "0.0.1", true},
		{">=1.0.0 || >=3.0.0", "2.0.0", true},
		{">=1.0.0 || >=3.0.0", "3.5.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr+"/"+tt.version, func(t *testing.T) {
			set, err := ParseVersionRange(tt.expr)
			if err != nil {
				t.Fatalf("ParseVersionRange(%q): %v", tt.expr, err)
			}
			got := set.Contains(mustVersion(t, tt.version))
			if got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestVersionIntervalSetUnionIntersectionComplement(t *testing.T) {
	low, err := ParseVersionRange(">=1.0.0, <2.0.0")
	if err != nil {
		t.Fatal(err)
	}
	high, err := ParseVersionRange(">=1.5.0, <3.0.0")
	if err != nil {
		t.Fatal(err)
	}

	union := low.Union(high)
	if !union.Contains(mustVersion(t, "1.0.0")) || !union.Contains(mustVersion(t, "2.5.0")) {
		t.Errorf("union should cover both ranges: %s", union)
	}
	if union.Contains(mustVersion(t, "3.0.0")) {
		t.Errorf("union should exclude 3.0.0 (exclusive upper bound): %s", union)
	}

	intersection := low.Intersection(high)
	if !intersection.Contains(mustVersion(t, "1.7.0")) {
		t.Errorf("intersection should contain 1.7.0: %s", intersection)
	}
	if intersection.Contains(mustVersion(t, "1.2.0")) {
		t.Errorf("intersection should exclude 1.2.0: %s", intersection)
	}

	complement := low.Complement()
	if complement.Contains(mustVersion(t, "1.5.0")) {
		t.Errorf("complement of [1.0.0,2.0.0) should exclude 1.5.0: %s", complement)
	}
	if !complement.Contains(mustVersion(t, "5.0.0")) {
		t.Errorf("complement of [1.0.0,2.0.0) should include 5.0.0: %s", complement)
	}
}

func TestVersionIntervalSetIsSubsetAndDisjoint(t *testing.T) {
	wide, _ := ParseVersionRange(">=1.0.0, <5.0.0")
	narrow, _ := ParseVersionRange(">=2.0.0, <3.0.0")
	disjoint, _ := ParseVersionRange(">=10.0.0")

	if !narrow.IsSubset(wide) {
		t.Error("narrow range should be a subset of wide range")
	}
	if wide.IsSubset(narrow) {
		t.Error("wide range should not be a subset of narrow range")
	}
	if !wide.IsDisjoint(disjoint) {
		t.Error("wide and disjoint ranges should not overlap")
	}
	if wide.IsDisjoint(narrow) {
		t.Error("wide and narrow ranges do overlap")
	}
}
