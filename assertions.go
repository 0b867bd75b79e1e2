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

// makeAssertionRuleDecisions seeds decision level 1 from every enabled,
// non-weak assertion rule (§4.10). A conflict between two such assertions
// is resolved by disabling every rule source involved and recording a
// Problem, then restarting the scan — termination is guaranteed because a
// restart only happens after at least one rule has just been disabled, and
// there are finitely many rules to disable.
func (s *Solver) makeAssertionRuleDecisions() {
	decisionStart := len(s.dm.decisionQueue)

restart:
	for idx := 0; idx < s.rules.Len(); idx++ {
		rule := s.rules.RuleByID(idx)
		if rule.Weak || rule.Disabled || !rule.IsAssertion() {
			continue
		}

		lit := rule.Literals[0]
		if !s.dm.decided(lit.Package.ID) {
			s.dm.push(lit, 1, rule)
			continue
		}
		if s.dm.satisfies(lit) {
			continue
		}

		// Conflict at level 1.
		if rule.Type == RuleLearned {
			rule.Disabled = true
			continue
		}

		priorRule := s.dm.findDecisionRule(lit.Package.ID)
		s.dm.learnedPool = append(s.dm.learnedPool, []*Rule{priorRule, rule})

		if priorRule != nil && priorRule.Type == RulePackage {
			var why Why
			if rule.Type == RuleJob {
				why = rule.ReasonData
			} else {
				why = WhyRule(rule)
			}
			s.dm.problems = append(s.dm.problems, Problem{why})
			disableWhySource(s, why)
			continue
		}

		// Conflict among JOB/UPDATE/FEATURE assertions: gather every
		// enabled assertion currently asserting this package, disable them
		// all, and restart the scan.
		problem := make(Problem, 0, 2)
		for j := 0; j < s.rules.Len(); j++ {
			other := s.rules.RuleByID(j)
			if other.Weak || other.Disabled || !other.IsAssertion() {
				continue
			}
			if other.Literals[0].Package.ID != lit.Package.ID {
				continue
			}
			problem = append(problem, assertionWhy(other))
			other.Disabled = true
		}
		s.dm.problems = append(s.dm.problems, problem)
		s.dm.truncateQueueTo(decisionStart)
		goto restart
	}

	for idx := 0; idx < s.rules.Len(); idx++ {
		rule := s.rules.RuleByID(idx)
		if !rule.Weak || rule.Disabled || !rule.IsAssertion() {
			continue
		}
		lit := rule.Literals[0]
		if !s.dm.decided(lit.Package.ID) {
			s.dm.push(lit, 1, rule)
			continue
		}
		if s.dm.satisfies(lit) {
			continue
		}
		rule.Disabled = true
	}
}

// assertionWhy picks the Why value a JOB/UPDATE/FEATURE assertion
// contributes to a problem: the job it came from if it has one, else the
// rule itself.
func assertionWhy(rule *Rule) Why {
	if rule.Type == RuleJob && rule.ReasonData.Job != nil {
		return rule.ReasonData
	}
	return WhyRule(rule)
}

// disableWhySource disables the rule that gave rise to why, if it names one
// directly (a JOB rule disables itself; a bare Rule Why disables that rule).
func disableWhySource(s *Solver, why Why) {
	if why.Rule != nil {
		why.Rule.Disabled = true
		return
	}
	if why.Job != nil {
		for r := range s.rules.ByType(RuleJob) {
			if r.ReasonData.Job == why.Job {
				r.Disabled = true
			}
		}
	}
}
