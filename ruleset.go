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

import "iter"

// RuleSet is the ordered, typed store of rules. Rules are appended, never
// removed — disabling is a flag, not a deletion — and each rule's ID is its
// insertion index across every type, so it also serves as the arena index
// the solver's watch-list next-pointers reference (see Design Notes on
// intrusive linked lists via arena indices).
type RuleSet struct {
	rules  []*Rule
	byType map[RuleType][]*Rule
}

// NewRuleSet creates an empty RuleSet.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		byType: make(map[RuleType][]*Rule),
	}
}

// Add appends rule, assigning it a global id, unless an existing rule (of
// any type) already has the same literal multiset — in which case Add is a
// silent no-op and returns the existing rule's id. A nil rule is ignored and
// Add returns (-1, false).
func (rs *RuleSet) Add(rule *Rule) (id int, added bool) {
	if rule == nil {
		return -1, false
	}
	for _, existing := range rs.rules {
		if existing.equalLiterals(rule) {
			return existing.ID, false
		}
	}
	rule.ID = len(rs.rules)
	rs.rules = append(rs.rules, rule)
	rs.byType[rule.Type] = append(rs.byType[rule.Type], rule)
	return rule.ID, true
}

// RuleByID returns the rule with the given global id, or nil if out of
// range. O(1): ids are dense indices into the backing slice.
func (rs *RuleSet) RuleByID(id int) *Rule {
	if id < 0 || id >= len(rs.rules) {
		return nil
	}
	return rs.rules[id]
}

// Len returns the total number of rules across all types.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// All iterates every rule in insertion order.
func (rs *RuleSet) All() iter.Seq[*Rule] {
	return func(yield func(*Rule) bool) {
		for _, r := range rs.rules {
			if !yield(r) {
				return
			}
		}
	}
}

// ByType iterates rules of exactly one type, in insertion order.
func (rs *RuleSet) ByType(t RuleType) iter.Seq[*Rule] {
	return func(yield func(*Rule) bool) {
		for _, r := range rs.byType[t] {
			if !yield(r) {
				return
			}
		}
	}
}

// ByTypes iterates rules whose type is any of the given types, preserving
// global insertion order (not grouped by type).
func (rs *RuleSet) ByTypes(types ...RuleType) iter.Seq[*Rule] {
	want := make(map[RuleType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	return func(yield func(*Rule) bool) {
		for _, r := range rs.rules {
			if want[r.Type] && !yield(r) {
				return
			}
		}
	}
}
