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

// addUpdateAndFeatureRules builds, for every installed package, the rule(s)
// governing whether it stays put or moves to an update candidate. See §4.7;
// the "differ, AllowUninstall()==false" branch is resolved per the Open
// Question in §9 as "register the strong update rule only".
func (s *Solver) addUpdateAndFeatureRules() {
	allowUninstall := s.policy.AllowUninstall()

	for _, pkg := range s.installed.Packages() {
		featureCandidates := s.policy.FindUpdatePackages(s.pool, pkg, true)
		updateCandidates := s.policy.FindUpdatePackages(s.pool, pkg, false)

		featureRule := updateRule(pkg, featureCandidates, RuleFeature, ReasonFeature, Why{})
		updateCand := updateRule(pkg, updateCandidates, RuleUpdate, ReasonUpdate, Why{})

		equal := sameCandidateSet(featureRule, updateCand)

		switch {
		case equal:
			if allowUninstall {
				if featureRule != nil {
					featureRule.Weak = true
					r := s.addRule(featureRule)
					s.packageToFeatureRule[pkg.ID] = r
				}
			} else {
				if updateCand != nil {
					r := s.addRule(updateCand)
					s.packageToUpdateRule[pkg.ID] = r
				}
			}
		case allowUninstall:
			if updateCand != nil {
				updateCand.Weak = true
				r := s.addRule(updateCand)
				s.packageToUpdateRule[pkg.ID] = r
			}
			if featureRule != nil {
				featureRule.Weak = true
				r := s.addRule(featureRule)
				s.packageToFeatureRule[pkg.ID] = r
			}
		default:
			if updateCand != nil {
				r := s.addRule(updateCand)
				s.packageToUpdateRule[pkg.ID] = r
			}
		}
	}

	// A remove job on an installed package overrides that package's
	// update/feature rule, which would otherwise assert it stays installed.
	for job := range s.rules.ByType(RuleJob) {
		if job.Reason != ReasonJobRemove || job.Disabled || len(job.Literals) != 1 {
			continue
		}
		id := job.Literals[0].Package.ID
		for _, r := range [2]*Rule{s.packageToUpdateRule[id], s.packageToFeatureRule[id]} {
			if r != nil && (r.Type == RuleUpdate || r.Type == RuleFeature) {
				r.Disabled = true
			}
		}
	}
}

// sameCandidateSet reports whether two possibly-nil rules carry the same
// literal multiset (both nil counts as equal).
func sameCandidateSet(a, b *Rule) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.equalLiterals(b)
}
