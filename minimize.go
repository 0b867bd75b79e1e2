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

import (
	"maps"
	"slices"
)

// decisionSnapshot is a point-in-time copy of every field minimize needs to
// undo a rejected trial decision.
type decisionSnapshot struct {
	level          map[int]int
	queue          []Literal
	why            []*Rule
	branches       []branch
	propagateIndex int
	solverLevel    int
}

func (s *Solver) snapshotDecisions() decisionSnapshot {
	return decisionSnapshot{
		level:          maps.Clone(s.dm.level),
		queue:          slices.Clone(s.dm.decisionQueue),
		why:            slices.Clone(s.dm.decisionQueueWhy),
		branches:       slices.Clone(s.dm.branches),
		propagateIndex: s.propagateIndex,
		solverLevel:    s.level,
	}
}

func (s *Solver) restoreDecisions(snap decisionSnapshot) {
	s.dm.level = snap.level
	s.dm.decisionQueue = snap.queue
	s.dm.decisionQueueWhy = snap.why
	s.dm.branches = snap.branches
	s.propagateIndex = snap.propagateIndex
	s.level = snap.solverLevel
}

// minimize resolves the minimization Open Question (§9/§4.15): for each
// branch saved by a prior selectAndInstall, retry the search from just
// before that decision using the next-preferred alternative instead. The
// trial is adopted only if it reaches a fixed point with no conflict and
// leaves a strictly shorter decision queue than before — fewer decisions is
// the only notion of "better" this solver has, since Policy already ordered
// the original choice ahead of the alternative. Every branch is tried at
// most once per call, bounding the work to len(branches) trial resolves;
// runSat calls this each time every other phase has reached a fixed point,
// and resumes its loop when it reports an improvement.
func (s *Solver) minimize() bool {
	branches := slices.Clone(s.dm.branches)
	if len(branches) == 0 {
		return false
	}

	improved := false
	for _, b := range branches {
		if !s.dm.decided(b.Literal.Package.ID) {
			continue
		}
		if s.dm.decisionLevel(b.Literal.Package.ID) == b.Level {
			continue // this branch's package already carries this exact decision
		}

		baseline := len(s.dm.decisionQueue)
		snap := s.snapshotDecisions()

		s.dm.backtrackTo(b.Level)
		if s.propagateIndex > len(s.dm.decisionQueue) {
			s.propagateIndex = len(s.dm.decisionQueue)
		}
		s.level = b.Level - 1

		newLevel := s.setPropagateLearn(b.Literal)
		if newLevel != 0 && len(s.dm.decisionQueue) < baseline {
			improved = true
			continue
		}

		s.restoreDecisions(snap)
	}
	return improved
}
