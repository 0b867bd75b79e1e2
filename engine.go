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

import "log/slog"

// Solver owns rule storage and decision state for exactly one Solve
// invocation (§5: single-threaded, single-use per solve; reset via Solve's
// internal resetSolver between retries, never concurrently).
type Solver struct {
	pool      *Pool
	installed Repository
	policy    Policy
	options   SolverOptions

	rules *RuleSet
	dm    *DecisionMap

	processed map[int]bool // package id -> addRulesForPackage already ran
	fixMap    map[int]bool // package id -> exempted from dontFix pruning
	updateMap map[int]bool // package id -> caller asked to update this one
	updateAll bool         // true once a JobUpdateAll has been processed

	packageToUpdateRule  map[int]*Rule // package id -> its UPDATE rule
	packageToFeatureRule map[int]*Rule

	ruleToJob map[int]*Job // rule id -> originating job, for JOB rules

	propagateIndex int // cursor into dm.decisionQueue, consumed by propagate
	level          int // current decision level, incremented by setPropagateLearn

	steps       int // setPropagateLearn invocations so far, bounded by options.MaxSteps
	internalErr *InternalError

	log *slog.Logger
}

// NewSolver builds a Solver over pool, using installed to determine which
// packages are already present and policy to drive preference decisions.
func NewSolver(pool *Pool, installed Repository, policy Policy, opts ...SolverOption) *Solver {
	options := defaultSolverOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Solver{
		pool:                 pool,
		installed:            installed,
		policy:               policy,
		options:              options,
		rules:                NewRuleSet(),
		dm:                   newDecisionMap(),
		processed:            make(map[int]bool),
		fixMap:               make(map[int]bool),
		updateMap:            make(map[int]bool),
		packageToUpdateRule:  make(map[int]*Rule),
		packageToFeatureRule: make(map[int]*Rule),
		ruleToJob:            make(map[int]*Job),
		log:                  options.Logger,
	}
}

// isInstalled reports whether pkg originates from the installed repository,
// by object identity (§6).
func (s *Solver) isInstalled(pkg *Package) bool {
	return pkg.Repository != nil && pkg.Repository == s.installed
}

// dontFix reports whether pkg should be left alone by rule generation: it
// is installed and the caller did not ask to fix/update it specifically.
func (s *Solver) dontFix(pkg *Package) bool {
	return s.isInstalled(pkg) && !s.fixMap[pkg.ID]
}

// addRule appends rule to the RuleSet via the de-duplicating Add, installs
// its watches if it is not an assertion, and records job provenance for JOB
// rules. A nil rule (tautology, or a construction helper's "no rule needed"
// result) is silently ignored, per §4.5 addRule semantics.
func (s *Solver) addRule(rule *Rule) *Rule {
	if rule == nil {
		return nil
	}
	id, added := s.rules.Add(rule)
	if !added {
		return s.rules.RuleByID(id)
	}
	if len(rule.Literals) >= 2 {
		addWatchesToRule(s.dm, rule)
	}
	if rule.Type == RuleJob && rule.ReasonData.Job != nil {
		s.ruleToJob[rule.ID] = rule.ReasonData.Job
	}
	return rule
}
