// Copyright 2024 The University of Queensland
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
	"fmt"
	"iter"
	"slices"
	"strings"
)

// VersionSet is an algebraic set of versions: union, intersection, and
// complement all return a new VersionSet rather than mutating the receiver.
// IntervalSet is the only implementation; ParseVersionRange and the interval
// constructors below are what produce one.
type VersionSet interface {
	Empty() VersionSet
	Full() VersionSet
	Singleton(version Version) VersionSet
	Union(other VersionSet) VersionSet
	Intersection(other VersionSet) VersionSet
	Complement() VersionSet
	Contains(version Version) bool
	IsEmpty() bool
	IsSubset(other VersionSet) bool
	IsDisjoint(other VersionSet) bool
	String() string
}

// IntervalSet implements VersionSet as a sorted slice of disjoint spans,
// keeping set operations linear in the number of spans rather than the
// number of versions.
type IntervalSet struct {
	spans []span
}

// newIntervalSet normalizes spans (sort, merge, drop empties) into an
// IntervalSet.
func newIntervalSet(spans []span) *IntervalSet {
	return &IntervalSet{spans: normalizeSpans(spans)}
}

// intervalSetFromEdges builds a VersionSet from a single lower/upper edge
// pair, or the empty set if the pair describes no versions.
func intervalSetFromEdges(lower, upper edge) VersionSet {
	if s, ok := newSpan(lower, upper); ok {
		return newIntervalSet([]span{s})
	}
	return &IntervalSet{}
}

func (s *IntervalSet) cloneSpans() []span {
	if len(s.spans) == 0 {
		return nil
	}
	cloned := make([]span, len(s.spans))
	copy(cloned, s.spans)
	return cloned
}

// Empty returns the VersionSet containing no versions.
func (s *IntervalSet) Empty() VersionSet { return &IntervalSet{} }

// Full returns the VersionSet containing every version.
func (s *IntervalSet) Full() VersionSet {
	return &IntervalSet{spans: []span{{lower: negInfEdge(), upper: posInfEdge()}}}
}

// Singleton returns a VersionSet containing exactly one version.
func (s *IntervalSet) Singleton(version Version) VersionSet {
	if version == nil {
		return &IntervalSet{}
	}
	if sp, ok := newSpan(newLowerEdge(version, true), newUpperEdge(version, true)); ok {
		return &IntervalSet{spans: []span{sp}}
	}
	return &IntervalSet{}
}

// Union returns every version in either set.
func (s *IntervalSet) Union(other VersionSet) VersionSet {
	o := asIntervalSet(other)
	spans := s.cloneSpans()
	spans = append(spans, o.spans...)
	return newIntervalSet(spans)
}

// Intersection returns every version in both sets, walking both span slices
// in lockstep since each is individually sorted.
func (s *IntervalSet) Intersection(other VersionSet) VersionSet {
	o := asIntervalSet(other)
	if len(s.spans) == 0 || len(o.spans) == 0 {
		return &IntervalSet{}
	}

	result := make([]span, 0, len(s.spans))
	i, j := 0, 0
	for i < len(s.spans) && j < len(o.spans) {
		if sp, ok := intersectSpans(s.spans[i], o.spans[j]); ok {
			result = append(result, sp)
		}
		if compareUpperEdges(s.spans[i].upper, o.spans[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}

	return newIntervalSet(result)
}

func intersectSpans(a, b span) (span, bool) {
	return newSpan(
		maxByCompare(a.lower, b.lower, compareLowerEdges),
		minByCompare(a.upper, b.upper, compareUpperEdges),
	)
}

// Complement returns every version not in the set: the gaps between
// consecutive spans, plus whatever lies before the first and after the
// last.
func (s *IntervalSet) Complement() VersionSet {
	if len(s.spans) == 0 {
		return s.Full()
	}

	gaps := make([]span, 0, len(s.spans)+1)
	lower := negInfEdge()
	for _, sp := range s.spans {
		if gap, ok := newSpan(lower, sp.complementUpperEdge()); ok {
			gaps = append(gaps, gap)
		}
		lower = sp.complementLowerEdge()
	}
	if tail, ok := newSpan(lower, posInfEdge()); ok {
		gaps = append(gaps, tail)
	}

	return newIntervalSet(gaps)
}

// Contains reports whether version falls in any span.
func (s *IntervalSet) Contains(version Version) bool {
	for _, sp := range s.spans {
		if sp.contains(version) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no spans.
func (s *IntervalSet) IsEmpty() bool { return len(s.spans) == 0 }

// IsSubset reports whether every version in s also falls in other, by
// walking both sorted span slices together.
func (s *IntervalSet) IsSubset(other VersionSet) bool {
	if len(s.spans) == 0 {
		return true
	}
	o := asIntervalSet(other)
	if len(o.spans) == 0 {
		return false
	}

	i, j := 0, 0
	for i < len(s.spans) {
		if j >= len(o.spans) {
			return false
		}
		if o.spans[j].covers(s.spans[i]) {
			i++
			continue
		}
		if upperBeforeLower(o.spans[j].upper, s.spans[i].lower) {
			j++
			continue
		}
		return false
	}
	return true
}

// IsDisjoint reports whether s and other share no version.
func (s *IntervalSet) IsDisjoint(other VersionSet) bool {
	if len(s.spans) == 0 {
		return true
	}
	o := asIntervalSet(other)
	if len(o.spans) == 0 {
		return true
	}

	i, j := 0, 0
	for i < len(s.spans) && j < len(o.spans) {
		if s.spans[i].overlaps(o.spans[j]) {
			return false
		}
		if compareUpperEdges(s.spans[i].upper, o.spans[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}
	return true
}

// Spans iterates the set's internal spans in ascending order:
//
//	for sp := range set.Spans() { ... }
func (s *IntervalSet) Spans() iter.Seq[span] {
	return slices.Values(s.spans)
}

// String renders the set using comparison-operator notation; the empty set
// is "∅" and the universal set is "*".
func (s *IntervalSet) String() string {
	if len(s.spans) == 0 {
		return "∅"
	}
	if len(s.spans) == 1 {
		return spanString(s.spans[0])
	}
	parts := make([]string, len(s.spans))
	for i, sp := range s.spans {
		parts[i] = spanString(sp)
	}
	return strings.Join(parts, " || ")
}

func spanString(s span) string {
	if s.lower.isNegInf() && s.upper.isPosInf() {
		return "*"
	}
	if s.lower.isFinite() && s.upper.isFinite() &&
		s.lower.version.Sort(s.upper.version) == 0 && s.lower.inclusive && s.upper.inclusive {
		return fmt.Sprintf("==%s", s.lower.version)
	}

	var parts []string
	if s.lower.isFinite() {
		if s.lower.inclusive {
			parts = append(parts, fmt.Sprintf(">=%s", s.lower.version))
		} else {
			parts = append(parts, fmt.Sprintf(">%s", s.lower.version))
		}
	}
	if s.upper.isFinite() {
		if s.upper.inclusive {
			parts = append(parts, fmt.Sprintf("<=%s", s.upper.version))
		} else {
			parts = append(parts, fmt.Sprintf("<%s", s.upper.version))
		}
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, ", ")
}

// asIntervalSet recovers the concrete IntervalSet backing a VersionSet. The
// panic branch only fires for a hand-rolled VersionSet that isn't empty,
// since IntervalSet is the only implementation this package ships.
func asIntervalSet(set VersionSet) *IntervalSet {
	if set == nil {
		return &IntervalSet{}
	}
	if iv, ok := set.(*IntervalSet); ok {
		return iv
	}
	if set.IsEmpty() {
		return &IntervalSet{}
	}
	panic("depsolve: unsupported VersionSet implementation")
}

// singletonVersion reports the one version a VersionSet contains, if it is
// exactly one closed, degenerate span.
func singletonVersion(set VersionSet) (Version, bool) {
	iv, ok := set.(*IntervalSet)
	if !ok || len(iv.spans) != 1 {
		return nil, false
	}
	sp := iv.spans[0]
	if !sp.lower.isFinite() || !sp.upper.isFinite() {
		return nil, false
	}
	if sp.lower.version.Sort(sp.upper.version) != 0 {
		return nil, false
	}
	if !sp.lower.inclusive || !sp.upper.inclusive {
		return nil, false
	}
	return sp.lower.version, true
}

var _ VersionSet = (*IntervalSet)(nil)
