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

import "testing"

// TestMinimizeAdoptsShorterNonChronologicalRetry drives Solver.minimize
// directly over a hand-built decision history: a branch recorded for a
// package (q) that was later excluded at a level different from the one the
// branch remembers. Retrying it should backtrack past the two decisions
// stacked above it (p and r, neither of which minimize restores) and settle
// on a strictly shorter decision queue, so minimize reports an improvement.
func TestMinimizeAdoptsShorterNonChronologicalRetry(t *testing.T) {
	pool := NewPool()
	installed := NewMemoryRepository("installed")
	solver := NewSolver(pool, installed, NewDefaultPolicy())

	z := &Package{ID: 1, Name: MakeName("z")}
	p := &Package{ID: 2, Name: MakeName("p")}
	r := &Package{ID: 3, Name: MakeName("r")}
	q := &Package{ID: 4, Name: MakeName("q")}

	solver.dm.push(NewLiteral(z, true), 1, nil)
	solver.dm.push(NewLiteral(p, true), 2, nil)
	solver.dm.push(NewLiteral(r, true), 2, nil)
	solver.dm.push(NewLiteral(q, false), 3, nil)
	solver.level = 3
	solver.propagateIndex = len(solver.dm.decisionQueue)
	solver.dm.branches = []branch{{Literal: NewLiteral(q, true), Level: 2}}

	if !solver.minimize() {
		t.Fatal("minimize() = false, want true")
	}

	if got, want := len(solver.dm.decisionQueue), 2; got != want {
		t.Fatalf("decisionQueue length = %d, want %d (z, q)", got, want)
	}
	if !solver.dm.satisfies(NewLiteral(q, true)) {
		t.Error("q should be decided true after the retry")
	}
	if solver.dm.decided(p.ID) || solver.dm.decided(r.ID) {
		t.Error("p and r sat above q's branch level and should not have been restored")
	}
}

// TestMinimizeSkipsUndecidedBranch covers the "nothing to do" case: a branch
// whose package was never decided needs no retry, and minimize must report
// no improvement.
func TestMinimizeSkipsUndecidedBranch(t *testing.T) {
	pool := NewPool()
	installed := NewMemoryRepository("installed")
	solver := NewSolver(pool, installed, NewDefaultPolicy())

	a := &Package{ID: 1, Name: MakeName("a")}

	solver.dm.branches = []branch{{Literal: NewLiteral(a, true), Level: 7}}

	if solver.minimize() {
		t.Fatal("minimize() = true, want false (branch package was never decided)")
	}
}
