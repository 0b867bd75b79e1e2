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

// addRulesForPackage runs a breadth-first traversal of the requires/
// conflicts graph reachable from seed, emitting PACKAGE rules for each edge,
// a same-name exclusion rule against every other version of the same
// package, and marking every visited package processed so a later call is a
// no-op.
func (s *Solver) addRulesForPackage(seed *Package) {
	queue := []*Package{seed}

	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]

		if s.processed[pkg.ID] {
			continue
		}
		s.processed[pkg.ID] = true

		dontFix := s.dontFix(pkg)

		if !dontFix && !s.policy.Installable(pkg) {
			s.addRule(removeRule(pkg, RulePackage, ReasonNotInstallable, Why{}))
			continue
		}

		for _, link := range pkg.Requires {
			providers := s.pool.WhatProvides(link.Name, link.Constraint)
			if dontFix && !s.anyInstalled(providers) {
				continue
			}
			s.addRule(requireRule(pkg, providers, RulePackage, Why{}))
			queue = append(queue, providers...)
		}

		for _, link := range pkg.Conflicts {
			candidates := s.pool.WhatProvides(link.Name, link.Constraint)
			for _, candidate := range candidates {
				if dontFix && s.isInstalled(candidate) {
					continue
				}
				s.addRule(conflictRule(pkg, candidate, Why{}))
			}
		}

		for _, other := range s.pool.PackagesNamed(pkg.Name) {
			s.addRule(sameNameRule(pkg, other, Why{}))
		}

		for _, link := range pkg.Recommends {
			queue = append(queue, s.pool.WhatProvides(link.Name, link.Constraint)...)
		}
		for _, link := range pkg.Suggests {
			queue = append(queue, s.pool.WhatProvides(link.Name, link.Constraint)...)
		}
	}
}

// anyInstalled reports whether any of packages is from the installed
// repository.
func (s *Solver) anyInstalled(packages []*Package) bool {
	for _, p := range packages {
		if s.isInstalled(p) {
			return true
		}
	}
	return false
}

// addRulesForUpdatePackages generates rules for pkg, then for every update
// candidate Policy offers (allowAll permits downgrades).
func (s *Solver) addRulesForUpdatePackages(pkg *Package, allowAll bool) {
	s.addRulesForPackage(pkg)
	for _, candidate := range s.policy.FindUpdatePackages(s.pool, pkg, allowAll) {
		s.addRulesForPackage(candidate)
	}
}
