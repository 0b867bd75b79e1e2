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

// Solve runs one dependency resolution: build every rule the request, the
// installed set, and the pool imply, seed assertions, then search. It
// returns the Transaction needed to reach a consistent state, or an error —
// *MalformedRequestError for a job that named no real candidates,
// *UnsolvableError for a request that is internally contradictory, or
// *InternalError if the search failed to terminate within its step budget.
func Solve(pool *Pool, installed Repository, policy Policy, req *Request, opts ...SolverOption) (Transaction, error) {
	return NewSolver(pool, installed, policy, opts...).Solve(req)
}

// Solve runs the solver once over req. A Solver is single-use: calling
// Solve twice on the same instance re-adds rules on top of whatever the
// first call already built, which is never what a caller wants, so build a
// fresh Solver per request (§5).
func (s *Solver) Solve(req *Request) (Transaction, error) {
	s.log.Debug("starting solve", "jobs", len(req.Jobs))
	s.addRulesForJobs(req)
	if err := s.checkMalformedJobs(); err != nil {
		return nil, err
	}

	s.addUpdateAndFeatureRules()
	s.makeAssertionRuleDecisions()

	if !s.runSat() {
		if s.internalErr != nil {
			return nil, s.internalErr
		}
		return nil, NewUnsolvableError(s.dm.problems)
	}

	// runSat can reach a stable, conflict-free fixed point by disabling one
	// or more JOB/PACKAGE rule sources along the way (analyzeUnsolvable,
	// reset.go) — the search as a whole succeeded, but not every job the
	// caller asked for was honored. That is still a solve failure from the
	// caller's point of view: report it the same way an unrecoverable
	// conflict would be, rather than silently returning a Transaction that
	// quietly drops part of the request.
	if len(s.dm.problems) > 0 {
		return nil, NewUnsolvableError(s.dm.problems)
	}

	txn := s.extractTransaction()
	s.log.Debug("solve complete", "steps", s.steps, "transaction", len(txn))
	return txn, nil
}

// checkMalformedJobs looks for a JOB rule with zero literals — an empty
// clause the CDCL engine has no way to ever decide, since unit propagation
// needs exactly one literal and watched propagation needs two. This only
// arises from a job whose Packages resolved to nothing (e.g. `install` on a
// name the pool never saw), so it is checked once, up front, rather than
// asked to flow through propagate/analyze machinery built to reason about
// rules with at least one literal.
func (s *Solver) checkMalformedJobs() error {
	for rule := range s.rules.ByType(RuleJob) {
		if rule.IsImpossible() {
			return &MalformedRequestError{Job: rule.ReasonData.Job}
		}
	}
	return nil
}
