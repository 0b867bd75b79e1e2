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

// runSat is the solver's main loop (§4.15): propagate to a fixed point,
// then scan job rules, then installed-package update/feature rules, then
// every remaining rule, deciding one candidate set per scan and restarting
// from propagation whenever a decision is made. Each time all four phases
// pass without deciding anything, minimization gets one attempt to shrink
// the decision queue; if it succeeds the loop resumes, otherwise the loop
// declares itself stable. Returns
// false if any phase proves the request unsolvable or the step budget
// (SolverOptions.MaxSteps) is exhausted.
func (s *Solver) runSat() bool {
	for {
		if conflict := s.propagate(); conflict != nil {
			s.log.Debug("propagate conflict", "rule", conflict.ID, "level", s.level)
			if !s.resolvePropagateConflict(conflict) {
				return false
			}
			if s.internalErr != nil {
				return false
			}
			continue
		}
		if s.internalErr != nil {
			return false
		}

		if r := s.runJobPhase(); r != 0 {
			if r < 0 {
				return false
			}
			continue
		}
		if r := s.runInstalledPhase(); r != 0 {
			if r < 0 {
				return false
			}
			continue
		}
		if r := s.runGeneralPhase(); r != 0 {
			if r < 0 {
				return false
			}
			continue
		}

		if s.minimize() {
			s.log.Debug("minimize improved decision queue", "length", len(s.dm.decisionQueue))
			continue
		}
		s.log.Debug("runSat stable", "steps", s.steps, "decisions", len(s.dm.decisionQueue))
		return s.internalErr == nil
	}
}

// runJobPhase decides the first not-yet-satisfied, enabled JOB rule it
// finds. Returns 1 if it decided something, -1 if that decision proved
// unsolvable, 0 if every JOB rule is already satisfied or disabled.
func (s *Solver) runJobPhase() int {
	for rule := range s.rules.ByType(RuleJob) {
		if rule.Disabled || ruleSatisfied(s.dm, rule) {
			continue
		}
		candidates := unsatisfiedPositiveCandidates(s.dm, rule)
		if len(candidates) == 0 {
			continue
		}
		candidates = s.pruneToInstalledOnly(candidates)
		s.log.Debug("job phase", "rule", rule.ID, "candidates", len(candidates))
		if s.selectAndInstall(candidates) == 0 {
			return -1
		}
		return 1
	}
	return 0
}

// runInstalledPhase walks installed packages' update/feature rules in two
// passes (§4.15 step 3) — packages the caller put in updateMap first, then
// everything else — deciding the first unsatisfied rule found in either
// pass. Once both passes find nothing left to decide, cleanDepsMap gets one
// chance to force the removal of an orphaned installed package. Same return
// convention as runJobPhase.
func (s *Solver) runInstalledPhase() int {
	if r := s.runInstalledPass(true); r != 0 {
		return r
	}
	if r := s.runInstalledPass(false); r != 0 {
		return r
	}
	return s.runCleanDepsPass()
}

// runInstalledPass scans every installed package whose updateMap membership
// matches wantUpdateMap, deciding the first unsatisfied update/feature rule
// found.
func (s *Solver) runInstalledPass(wantUpdateMap bool) int {
	for _, pkg := range s.installed.Packages() {
		if s.updateMap[pkg.ID] != wantUpdateMap {
			continue
		}
		for _, rule := range [2]*Rule{s.packageToUpdateRule[pkg.ID], s.packageToFeatureRule[pkg.ID]} {
			if rule == nil || rule.Disabled || ruleSatisfied(s.dm, rule) {
				continue
			}
			candidates := unsatisfiedPositiveCandidates(s.dm, rule)
			if len(candidates) == 0 {
				continue
			}
			s.log.Debug("installed phase", "package", pkg.Name, "rule", rule.ID, "candidates", len(candidates), "updateMapPass", wantUpdateMap)
			if s.selectAndInstall(candidates) == 0 {
				return -1
			}
			return 1
		}
	}
	return 0
}

// runCleanDepsPass forces the removal of one cleanDepsMap-identified
// package, if any, via the normal setPropagateLearn path so the decision
// participates in conflict analysis like any other.
func (s *Solver) runCleanDepsPass() int {
	forced := s.cleanDepsMap()
	if len(forced) == 0 {
		return 0
	}
	for _, pkg := range s.installed.Packages() {
		if !forced[pkg.ID] {
			continue
		}
		s.log.Debug("cleanDepsMap forcing removal", "package", pkg.Name)
		if s.setPropagateLearn(NewLiteral(pkg, false)) == 0 {
			return -1
		}
		return 1
	}
	return 0
}

// cleanDepsMap reports which installed packages are no longer required by
// anything still eligible to remain installed: not protected by fixMap or
// updateMap, not yet decided either way, and with no package that could
// still require it — every requirer is itself already decided to uninstall.
func (s *Solver) cleanDepsMap() map[int]bool {
	required := make(map[int]bool)
	for pkg := range s.pool.Packages() {
		if s.dm.decided(pkg.ID) && !s.dm.satisfies(NewLiteral(pkg, true)) {
			continue
		}
		for _, link := range pkg.Requires {
			for _, provider := range s.pool.WhatProvides(link.Name, link.Constraint) {
				required[provider.ID] = true
			}
		}
	}

	forced := make(map[int]bool)
	for _, pkg := range s.installed.Packages() {
		if s.fixMap[pkg.ID] || s.updateMap[pkg.ID] || s.dm.decided(pkg.ID) {
			continue
		}
		if !required[pkg.ID] {
			forced[pkg.ID] = true
		}
	}
	return forced
}

// runGeneralPhase scans every remaining enabled, non-assertion rule for one
// with at least two still-undecided positive candidates — the point at
// which the solver genuinely has to choose rather than merely confirm a
// forced outcome. Same return convention as runJobPhase.
func (s *Solver) runGeneralPhase() int {
	for rule := range s.rules.All() {
		if rule.Disabled || rule.IsAssertion() || ruleSatisfied(s.dm, rule) {
			continue
		}
		candidates := undecidedPositiveCandidates(s.dm, rule)
		if len(candidates) < 2 {
			continue
		}
		s.log.Debug("general phase", "rule", rule.ID, "candidates", len(candidates))
		if s.selectAndInstall(candidates) == 0 {
			return -1
		}
		return 1
	}
	return 0
}
