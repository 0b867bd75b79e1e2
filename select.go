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

// ruleSatisfied reports whether any of rule's literals is already satisfied
// by the current decision state.
func ruleSatisfied(dm *DecisionMap, rule *Rule) bool {
	for _, lit := range rule.Literals {
		if dm.satisfies(lit) {
			return true
		}
	}
	return false
}

// unsatisfiedPositiveCandidates returns rule's positive-literal packages
// that are not currently decided install — the pool selectAndInstall will
// choose from to satisfy the rule.
func unsatisfiedPositiveCandidates(dm *DecisionMap, rule *Rule) []*Package {
	var out []*Package
	for _, lit := range rule.Literals {
		if !lit.Wanted {
			continue
		}
		if dm.satisfies(lit) {
			continue
		}
		out = append(out, lit.Package)
	}
	return out
}

// undecidedPositiveCandidates returns rule's positive-literal packages that
// are entirely undecided (neither installed nor excluded) — the general
// phase only branches once at least two such choices remain.
func undecidedPositiveCandidates(dm *DecisionMap, rule *Rule) []*Package {
	var out []*Package
	for _, lit := range rule.Literals {
		if !lit.Wanted {
			continue
		}
		if dm.decided(lit.Package.ID) {
			continue
		}
		out = append(out, lit.Package)
	}
	return out
}

// pruneToInstalledOnly narrows candidates to the installed subset when the
// job phase is not updating wholesale (§4.15 step 2): once any candidate is
// already installed, an uninstalled alternative is only worth considering
// when the caller explicitly asked to update one of the candidates
// (updateMap), since otherwise keeping the installed package is always a
// valid, less disruptive answer. Returns candidates unchanged when no
// pruning condition applies.
func (s *Solver) pruneToInstalledOnly(candidates []*Package) []*Package {
	if s.updateAll || len(candidates) == 0 {
		return candidates
	}
	for _, c := range candidates {
		if s.updateMap[c.ID] {
			return candidates
		}
	}
	var installedOnly []*Package
	for _, c := range candidates {
		if s.isInstalled(c) {
			installedOnly = append(installedOnly, c)
		}
	}
	if len(installedOnly) == 0 {
		return candidates
	}
	return installedOnly
}

// selectAndInstall runs candidates through the Policy's preference order,
// saves every alternative but the first as a branch for later minimization,
// and decides the first via setPropagateLearn (§4.15).
func (s *Solver) selectAndInstall(candidates []*Package) int {
	preferred := s.policy.SelectPreferredPackages(candidates, s.installed)
	if len(preferred) == 0 {
		return s.level
	}
	for _, alt := range preferred[1:] {
		s.dm.branches = append(s.dm.branches, branch{Literal: NewLiteral(alt, true), Level: s.level + 1})
	}
	return s.setPropagateLearn(NewLiteral(preferred[0], true))
}

// setPropagateLearn increments the decision level, decides literal, and
// propagates to a fixed point, learning from and back-jumping past any
// conflict along the way. Returns the resulting level, or 0 if the request
// is unsolvable.
func (s *Solver) setPropagateLearn(literal Literal) int {
	s.steps++
	if s.options.MaxSteps > 0 && s.steps > s.options.MaxSteps {
		s.internalErr = newInternalError("exceeded %d setPropagateLearn steps without reaching a fixed point", s.options.MaxSteps)
		return 0
	}

	s.level++
	s.dm.push(literal, s.level, nil)
	s.log.Debug("making decision", "package", literal.Package.Name, "wanted", literal.Wanted, "level", s.level)

	conflict := s.propagate()
	if conflict == nil {
		return s.level
	}
	if !s.resolvePropagateConflict(conflict) {
		return 0
	}
	return s.level
}

// resolvePropagateConflict runs analyze/analyzeUnsolvable repeatedly until
// propagation reaches a fixed point with no conflict, or the request proves
// unsolvable.
func (s *Solver) resolvePropagateConflict(conflict *Rule) bool {
	for conflict != nil {
		if s.level <= 1 {
			s.log.Debug("analyzing unsolvable conflict", "rule", conflict.ID)
			if !s.analyzeUnsolvable(conflict, s.options.DisableRulesOnFail) {
				return false
			}
			conflict = s.propagate()
			continue
		}

		learned, newLevel := s.analyze(conflict)
		s.log.Debug("resolving conflict", "rule", conflict.ID, "learned", learned.ID, "backjump", newLevel)
		s.dm.backtrackTo(newLevel)
		if s.propagateIndex > len(s.dm.decisionQueue) {
			s.propagateIndex = len(s.dm.decisionQueue)
		}
		s.level = newLevel

		if len(learned.Literals) > 0 {
			assertLit := learned.Literals[len(learned.Literals)-1]
			s.dm.push(assertLit, newLevel, learned)
		}

		conflict = s.propagate()
	}
	return true
}
