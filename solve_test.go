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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// transactionSummary renders a Transaction as "install name-version" /
// "remove name-version" lines, the shape go-cmp diffs in these tests —
// Package itself carries an unexported-field Repository, which a generic
// structural diff cannot safely cross.
func transactionSummary(txn Transaction) []string {
	out := make([]string, len(txn))
	for i, step := range txn {
		out[i] = step.Job.String() + " " + step.Package.String()
	}
	return out
}

// TestSolveInstallNoDependencies covers S1: a single install job for a
// package with no links resolves to exactly one install step.
func TestSolveInstallNoDependencies(t *testing.T) {
	pool := NewPool()
	repo := NewMemoryRepository("main")
	repo.Add(pkg("app", "1.0.0"))
	pool.AddRepository(repo)

	installed := NewMemoryRepository("installed")

	req := NewRequest(NewJob(JobInstall, "app", nil, pool.WhatProvides(MakeName("app"), nil)))
	txn, err := Solve(pool, installed, NewDefaultPolicy(), req)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []string{"install app-1.0.0"}
	if diff := cmp.Diff(want, transactionSummary(txn)); diff != "" {
		t.Errorf("transaction mismatch (-want +got):\n%s", diff)
	}
}

// TestSolveInstallWithDependencyChain covers S2: installing app, which
// requires lib, must install lib before app.
func TestSolveInstallWithDependencyChain(t *testing.T) {
	pool := NewPool()
	repo := NewMemoryRepository("main")
	app := pkg("app", "1.0.0")
	app.Requires = []Link{{Name: MakeName("lib")}}
	repo.Add(app)
	repo.Add(pkg("lib", "1.0.0"))
	pool.AddRepository(repo)

	installed := NewMemoryRepository("installed")

	req := NewRequest(NewJob(JobInstall, "app", nil, pool.WhatProvides(MakeName("app"), nil)))
	txn, err := Solve(pool, installed, NewDefaultPolicy(), req)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []string{"install lib-1.0.0", "install app-1.0.0"}
	if diff := cmp.Diff(want, transactionSummary(txn)); diff != "" {
		t.Errorf("transaction mismatch (-want +got):\n%s", diff)
	}
}

// TestSolveConflictingInstallsIsUnsolvable covers S3: two install jobs
// whose packages conflict with each other cannot both be honored.
func TestSolveConflictingInstallsIsUnsolvable(t *testing.T) {
	pool := NewPool()
	repo := NewMemoryRepository("main")
	a := pkg("a", "1.0.0")
	a.Conflicts = []Link{{Name: MakeName("b")}}
	b := pkg("b", "1.0.0")
	repo.Add(a)
	repo.Add(b)
	pool.AddRepository(repo)

	installed := NewMemoryRepository("installed")

	req := NewRequest(
		NewJob(JobInstall, "a", nil, pool.WhatProvides(MakeName("a"), nil)),
		NewJob(JobInstall, "b", nil, pool.WhatProvides(MakeName("b"), nil)),
	)
	_, err := Solve(pool, installed, NewDefaultPolicy(), req)
	if err == nil {
		t.Fatal("Solve with conflicting installs: got nil error, want *UnsolvableError")
	}
	if _, ok := err.(*UnsolvableError); !ok {
		t.Fatalf("Solve error = %T, want *UnsolvableError", err)
	}
}

// TestSolveRemove covers S5: removing an installed package with no other
// dependents resolves to exactly one remove step.
func TestSolveRemove(t *testing.T) {
	pool := NewPool()
	installed := NewMemoryRepository("installed")
	old := pkg("app", "1.0.0")
	installed.Add(old)
	pool.AddRepository(installed)

	req := NewRequest(NewJob(JobRemove, "app", nil, []*Package{old}))
	txn, err := Solve(pool, installed, NewDefaultPolicy(), req)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []string{"remove app-1.0.0"}
	if diff := cmp.Diff(want, transactionSummary(txn)); diff != "" {
		t.Errorf("transaction mismatch (-want +got):\n%s", diff)
	}
}

// preferNewestPolicy always prefers the highest version over what is
// currently installed, unlike DefaultPolicy's installed-first ordering —
// used to exercise the update path (S4) deterministically.
type preferNewestPolicy struct {
	*DefaultPolicy
}

func (preferNewestPolicy) SelectPreferredPackages(candidates []*Package, installed Repository) []*Package {
	out := slices.Clone(candidates)
	slices.SortStableFunc(out, func(a, b *Package) int {
		return b.Version.Sort(a.Version)
	})
	return out
}

// TestSolveUpdate covers S4: an update job for an installed package moves
// it to the newest available version when Policy prefers that outcome.
func TestSolveUpdate(t *testing.T) {
	pool := NewPool()
	installed := NewMemoryRepository("installed")
	oldApp := pkg("app", "1.0.0")
	installed.Add(oldApp)
	pool.AddRepository(installed)

	repo := NewMemoryRepository("main")
	repo.Add(pkg("app", "2.0.0"))
	pool.AddRepository(repo)

	req := NewRequest(NewJob(JobUpdate, "app", nil, []*Package{oldApp}))
	txn, err := Solve(pool, installed, preferNewestPolicy{DefaultPolicy: NewDefaultPolicy()}, req)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []string{"remove app-1.0.0", "install app-2.0.0"}
	if diff := cmp.Diff(want, transactionSummary(txn)); diff != "" {
		t.Errorf("transaction mismatch (-want +got):\n%s", diff)
	}
}

// TestAnalyzeLearnsNonChronologicalBackjump drives Solver.analyze directly
// over a hand-built decision history spanning four levels: a conflict
// between the level-2 and level-4 decisions must learn a two-literal clause
// and compute a backjump past level 3's unrelated decision straight to
// level 2, the second-highest level referenced by the conflict — the
// non-chronological backtracking (§4.12) the S1-S6 examples never force,
// since none of them stack more than one real branch.
func TestAnalyzeLearnsNonChronologicalBackjump(t *testing.T) {
	pool := NewPool()
	installed := NewMemoryRepository("installed")
	solver := NewSolver(pool, installed, NewDefaultPolicy())

	s0 := &Package{ID: 1, Name: MakeName("s0")}
	q := &Package{ID: 2, Name: MakeName("q")}
	r := &Package{ID: 3, Name: MakeName("r")}
	p := &Package{ID: 4, Name: MakeName("p")}

	solver.dm.push(NewLiteral(s0, true), 1, nil)
	solver.dm.push(NewLiteral(q, true), 2, nil)
	solver.dm.push(NewLiteral(r, true), 3, nil)
	solver.dm.push(NewLiteral(p, true), 4, nil)
	solver.level = 4

	conflict := conflictRule(p, q, Why{})

	learned, newLevel := solver.analyze(conflict)

	if newLevel != 2 {
		t.Fatalf("backjump level = %d, want 2 (level 3's decision is unrelated to the conflict and must be skipped)", newLevel)
	}
	if len(learned.Literals) != 2 {
		t.Fatalf("learned clause has %d literals, want 2: %v", len(learned.Literals), learned)
	}
	var sawP, sawQ bool
	for _, lit := range learned.Literals {
		switch lit.Package.ID {
		case p.ID:
			sawP = !lit.Wanted
		case q.ID:
			sawQ = !lit.Wanted
		}
	}
	if !sawP || !sawQ {
		t.Fatalf("learned clause = %v, want (-p | -q)", learned)
	}

	var learnedCount int
	for range solver.rules.ByType(RuleLearned) {
		learnedCount++
	}
	if learnedCount != 1 {
		t.Fatalf("RuleLearned count = %d, want 1", learnedCount)
	}
}
