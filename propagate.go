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

// propagate drains dm.decisionQueue from s.propagateIndex, using the
// two-watch scheme (§4.11): a freshly decided literal D falsifies D's
// inverse everywhere that inverse is watched, so every rule watching it is
// checked for a replacement watch, a forced propagation, or a conflict.
// Returns the conflicting rule, or nil once the queue is exhausted.
func (s *Solver) propagate() *Rule {
	for s.propagateIndex < len(s.dm.decisionQueue) {
		decided := s.dm.decisionQueue[s.propagateIndex]
		s.propagateIndex++

		inv := decided.Inverted()
		it := newWatchIterator(s.rules, s.dm, inv.ID())

		for {
			rule, slot, prevID := it.next()
			if rule == nil {
				break
			}
			if rule.Disabled {
				continue
			}

			other := rule.Watch1
			if slot == 1 {
				other = rule.Watch2
			}
			otherLit := literalFromID(other, s.pool)

			if s.dm.satisfies(otherLit) {
				continue
			}

			if len(rule.Literals) > 2 {
				if replacement, ok := s.findReplacementWatch(rule, other, inv.ID()); ok {
					moveWatch(s.dm, s.rules, rule, slot, inv.ID(), replacement, prevID)
					// rule has left this list, so the rule before it is now
					// the predecessor of whatever the iterator yields next.
					it.prevID = prevID
					continue
				}
			}

			if s.dm.conflicts(otherLit) {
				return rule
			}

			s.dm.push(otherLit, s.currentLevel(), rule)
		}
	}
	return nil
}

// findReplacementWatch scans rule for a literal other than keepLiteral
// (the rule's other watch) and currentWatch (the watch being vacated) that
// is not currently falsified — a candidate for the new watch.
func (s *Solver) findReplacementWatch(rule *Rule, keepLiteral, currentWatch int) (int, bool) {
	for _, lit := range rule.Literals {
		id := lit.ID()
		if id == keepLiteral || id == currentWatch {
			continue
		}
		if !s.dm.conflicts(lit) {
			return id, true
		}
	}
	return 0, false
}

// currentLevel returns the decision level in-progress propagations and
// forced assignments are attributed to.
func (s *Solver) currentLevel() int {
	if s.level < 1 {
		return 1
	}
	return s.level
}
