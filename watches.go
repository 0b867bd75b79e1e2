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

// addWatchesToRule installs r's two-literal watches. Solver.addRule calls it
// once per non-assertion rule, as that rule is added to the RuleSet: watch1
// becomes literals[0], watch2 becomes literals[1], and r is prepended to the
// intrusive linked list headed by dm.watches[watchN].
//
// Invariant (§4.9): for an enabled non-assertion rule whose outcome is still
// undetermined, both watches point to literals that are either undecided or
// satisfied — never to a falsified literal while the rule could still become
// unit or conflicting.
func addWatchesToRule(dm *DecisionMap, r *Rule) {
	if len(r.Literals) < 2 {
		return
	}
	r.Watch1 = r.Literals[0].ID()
	r.Watch2 = r.Literals[1].ID()

	r.Next1 = dm.watchHead(r.Watch1)
	dm.setWatchHead(r.Watch1, r.ID)

	r.Next2 = dm.watchHead(r.Watch2)
	dm.setWatchHead(r.Watch2, r.ID)
}

// watchIterator walks the linked list of rules watching literal id lid,
// yielding each rule along with which of its two watch slots (1 or 2)
// points at lid — the caller needs this to know which Next field to follow
// and which Watch field to rewrite if it moves the watch elsewhere.
type watchIterator struct {
	rs     *RuleSet
	dm     *DecisionMap
	lid    int
	cur    int
	prevID int // id of the rule preceding `cur` in the list, noNext at the head
}

func newWatchIterator(rs *RuleSet, dm *DecisionMap, lid int) *watchIterator {
	return &watchIterator{rs: rs, dm: dm, lid: lid, cur: dm.watchHead(lid), prevID: noNext}
}

// next returns the next rule in the list, which slot (1 or 2) watches lid,
// and the id of the rule immediately preceding it in the list (noNext if it
// is the head) — the value moveWatch needs to splice it out safely even
// though next() has already advanced past it. At list end returns
// (nil, 0, noNext).
func (it *watchIterator) next() (*Rule, int, int) {
	if it.cur == noNext {
		return nil, 0, noNext
	}
	r := it.rs.RuleByID(it.cur)
	slot := 1
	if r.Watch2 == it.lid {
		slot = 2
	}
	prevID := it.prevID
	it.prevID = it.cur
	if slot == 1 {
		it.cur = r.Next1
	} else {
		it.cur = r.Next2
	}
	return r, slot, prevID
}

// moveWatch relocates rule r's watch slot (1 or 2), currently pointing at
// oldLid, to newLid: unlinks r from watches[oldLid]'s list (splicing around
// it using prevID, the id of the rule immediately before r in that list, or
// noNext if r was the head) and relinks it at the head of watches[newLid].
func moveWatch(dm *DecisionMap, rs *RuleSet, r *Rule, slot int, oldLid, newLid int, prevID int) {
	var next int
	if slot == 1 {
		next = r.Next1
	} else {
		next = r.Next2
	}

	if prevID == noNext {
		dm.setWatchHead(oldLid, next)
	} else {
		prevRule := rs.RuleByID(prevID)
		if prevRule.Watch1 == oldLid {
			prevRule.Next1 = next
		} else {
			prevRule.Next2 = next
		}
	}

	if slot == 1 {
		r.Watch1 = newLid
		r.Next1 = dm.watchHead(newLid)
	} else {
		r.Watch2 = newLid
		r.Next2 = dm.watchHead(newLid)
	}
	dm.setWatchHead(newLid, r.ID)
}
