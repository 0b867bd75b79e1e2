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

// resetSolver rewinds the search to a blank decision state after
// analyzeUnsolvable has disabled some rule sources (§4.14): decisions,
// decision order and branches are all cleared; the watch lists survive
// untouched since RuleSet membership never shrinks. Learned rules whose
// every ancestor is once again enabled are re-enabled; any whose ancestry
// still touches a disabled rule stay disabled. Assertions are then replayed
// from scratch.
func (s *Solver) resetSolver() {
	s.dm.reset()
	s.propagateIndex = 0
	s.level = 1
	s.enableDisableLearnedRules()
	s.makeAssertionRuleDecisions()
}

// enableDisableLearnedRules re-evaluates every LEARNED rule's ancestor
// chain: a learned rule is only as good as the rules it was derived from,
// so one disabled ancestor disables it too, and full ancestor recovery
// re-enables it.
func (s *Solver) enableDisableLearnedRules() {
	for rule := range s.rules.ByType(RuleLearned) {
		idx, ok := s.dm.learnedWhy[rule.ID]
		if !ok {
			continue
		}
		rule.Disabled = anyAncestorDisabled(s.dm.learnedPool[idx])
	}
}

func anyAncestorDisabled(ancestors []*Rule) bool {
	for _, a := range ancestors {
		if a.Disabled {
			return true
		}
	}
	return false
}
