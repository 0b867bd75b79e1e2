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

// analyze performs standard 1-UIP conflict analysis (§4.12) over the
// implication graph recorded in dm.decisionQueueWhy. It returns the learned
// rule (already added to the RuleSet, watched, and recorded in
// learnedWhy/learnedPool) and the level to back-jump to.
func (s *Solver) analyze(conflict *Rule) (*Rule, int) {
	level := s.currentLevel()
	seen := make(map[int]bool)
	var learnedLits []Literal
	var ancestors []*Rule

	counter := 0
	idx := len(s.dm.decisionQueue) - 1
	var uip Literal
	haveUIP := false

	cur := conflict
	for cur != nil {
		ancestors = append(ancestors, cur)
		for _, lit := range cur.Literals {
			if haveUIP && lit.Package.ID == uip.Package.ID {
				continue
			}
			if seen[lit.Package.ID] {
				continue
			}
			seen[lit.Package.ID] = true

			litLevel := absInt(s.dm.decisionLevel(lit.Package.ID))
			if litLevel == level {
				counter++
			} else if litLevel > 0 {
				learnedLits = append(learnedLits, lit)
			}
		}

		for idx >= 0 && !seen[s.dm.decisionQueue[idx].Package.ID] {
			idx--
		}
		if idx < 0 {
			break
		}
		uip = s.dm.decisionQueue[idx]
		haveUIP = true
		cause := s.dm.decisionQueueWhy[idx]
		counter--
		idx--

		if counter <= 0 || cause == nil {
			cur = nil
		} else {
			cur = cause
		}
	}

	if haveUIP {
		learnedLits = append(learnedLits, uip.Inverted())
	}

	newLevel := 1
	if len(learnedLits) > 1 {
		newLevel = secondHighestLevel(s.dm, learnedLits)
	}

	learned := newRuleUnchecked(learnedLits, RuleLearned, ReasonLearned, Why{})
	id, added := s.rules.Add(learned)
	if !added {
		learned = s.rules.RuleByID(id)
	} else if len(learned.Literals) >= 2 {
		installLearnedWatches(s.dm, learned)
	}

	s.dm.learnedPool = append(s.dm.learnedPool, ancestors)
	s.dm.learnedWhy[learned.ID] = len(s.dm.learnedPool) - 1

	return learned, newLevel
}

// newRuleUnchecked builds a Rule without the tautology check analyze's
// resolution already guarantees won't fire (a literal and its negation
// cannot both survive 1-UIP resolution over a consistent assignment).
func newRuleUnchecked(literals []Literal, typ RuleType, reason RuleReason, why Why) *Rule {
	return &Rule{
		Literals:   literals,
		Type:       typ,
		Reason:     reason,
		ReasonData: why,
		Watch1:     noNext,
		Watch2:     noNext,
		Next1:      noNext,
		Next2:      noNext,
	}
}

// installLearnedWatches places watch1 on the asserting (highest-level)
// literal and watch2 on the literal with the next-highest level — resolving
// the Open Question in §9 as "count(literals) < 3": with fewer than three
// literals there is nothing to search for, so watch2 is simply whichever
// literal isn't watch1.
func installLearnedWatches(dm *DecisionMap, r *Rule) {
	highest := 0
	for i := 1; i < len(r.Literals); i++ {
		if absInt(dm.decisionLevel(r.Literals[i].Package.ID)) > absInt(dm.decisionLevel(r.Literals[highest].Package.ID)) {
			highest = i
		}
	}
	second := 0
	if highest == 0 {
		second = 1
	}
	if len(r.Literals) >= 3 {
		for i, lit := range r.Literals {
			if i == highest {
				continue
			}
			if absInt(dm.decisionLevel(lit.Package.ID)) > absInt(dm.decisionLevel(r.Literals[second].Package.ID)) || second == highest {
				second = i
			}
		}
	}

	r.Watch1 = r.Literals[highest].ID()
	r.Watch2 = r.Literals[second].ID()
	r.Next1 = dm.watchHead(r.Watch1)
	dm.setWatchHead(r.Watch1, r.ID)
	r.Next2 = dm.watchHead(r.Watch2)
	dm.setWatchHead(r.Watch2, r.ID)
}

func secondHighestLevel(dm *DecisionMap, literals []Literal) int {
	best, second := 0, 0
	for _, lit := range literals {
		lv := absInt(dm.decisionLevel(lit.Package.ID))
		if lv > best {
			second = best
			best = lv
		} else if lv > second {
			second = lv
		}
	}
	if second < 1 {
		return 1
	}
	return second
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// analyzeUnsolvable handles a conflict discovered while still at decision
// level 1 (§4.13): it walks the implication graph back to its JOB/UPDATE/
// FEATURE/WEAK roots, producing a Problem. Weak rules are tried first and
// alone: disabling just the one responsible weak rule is strictly less
// destructive than disabling every source, so if one was involved in the
// conflict only it is disabled. Otherwise, when disableRules is true, every
// rule source in the problem is disabled. Returns true if the solver should
// reset and retry, false if the conflict is unrecoverable as-is.
func (s *Solver) analyzeUnsolvable(conflict *Rule, disableRules bool) bool {
	seenRule := make(map[int]bool)
	seenPkg := make(map[int]bool)
	var problem Problem
	var lastWeak *Rule

	var visit func(r *Rule)
	visit = func(r *Rule) {
		if r == nil || (seenRule[r.ID] && r.Type != RuleLearned) {
			return
		}
		seenRule[r.ID] = true
		switch r.Type {
		case RulePackage:
			// Not part of the user-visible problem, but still traversed so
			// its literals' forcing rules are reached.
		case RuleLearned:
			// Ancestor traversal happens unconditionally: it is how the walk
			// ever reaches a learned rule's true JOB/PACKAGE roots, not an
			// optional diagnostic. TrackLearnedRules only controls whether
			// the learned rule itself also shows up as a Problem entry in
			// its own right, alongside the roots it resolves to.
			if s.options.TrackLearnedRules {
				problem = append(problem, WhyRule(r))
			}
			if idx, ok := s.dm.learnedWhy[r.ID]; ok {
				for _, ancestor := range s.dm.learnedPool[idx] {
					visit(ancestor)
				}
			}
			return
		case RuleJob:
			problem = append(problem, r.ReasonData)
		default:
			if r.Weak {
				lastWeak = r
			} else {
				problem = append(problem, WhyRule(r))
			}
		}

		for _, lit := range r.Literals {
			if seenPkg[lit.Package.ID] {
				continue
			}
			seenPkg[lit.Package.ID] = true
			if cause := s.dm.findDecisionRule(lit.Package.ID); cause != nil && cause != r {
				visit(cause)
			}
		}
	}
	visit(conflict)

	if lastWeak != nil {
		lastWeak.Disabled = true
		s.resetSolver()
		return true
	}

	if len(problem) > 0 {
		s.dm.problems = append(s.dm.problems, problem)
	}

	if !disableRules {
		return false
	}

	for _, why := range problem {
		disableWhySource(s, why)
	}
	s.resetSolver()
	return true
}
