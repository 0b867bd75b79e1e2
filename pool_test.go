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

func pkg(name string, version string) *Package {
	return &Package{Name: MakeName(name), Version: NewSemanticVersion(parseTriple(version))}
}

func parseTriple(v string) (int, int, int) {
	sv, err := ParseSemanticVersion(v)
	if err != nil {
		panic(err)
	}
	return sv.Major, sv.Minor, sv.Patch
}

func TestPoolWhatProvidesMatchesOwnName(t *testing.T) {
	repo := NewMemoryRepository("main")
	a := pkg("a", "1.0.0")
	repo.Add(a)

	pool := NewPool()
	pool.AddRepository(repo)

	got := pool.WhatProvides(MakeName("a"), nil)
	if len(got) != 1 || got[0] != a {
		t.Fatalf("WhatProvides(a) = %v, want [a]", got)
	}
}

func TestPoolWhatProvidesMatchesProvidesAndReplaces(t *testing.T) {
	repo := NewMemoryRepository("main")
	provider := pkg("impl", "1.0.0")
	provider.Provides = []Link{{Name: MakeName("iface")}}
	replacer := pkg("newname", "2.0.0")
	replacer.Replaces = []Link{{Name: MakeName("oldname")}}
	repo.Add(provider)
	repo.Add(replacer)

	pool := NewPool()
	pool.AddRepository(repo)

	if got := pool.WhatProvides(MakeName("iface"), nil); len(got) != 1 || got[0] != provider {
		t.Fatalf("WhatProvides(iface) = %v, want [impl]", got)
	}
	if got := pool.WhatProvides(MakeName("oldname"), nil); len(got) != 1 || got[0] != replacer {
		t.Fatalf("WhatProvides(oldname) = %v, want [newname]", got)
	}
}

func TestPoolWhatProvidesFiltersByConstraint(t *testing.T) {
	repo := NewMemoryRepository("main")
	v1 := pkg("a", "1.0.0")
	v2 := pkg("a", "2.0.0")
	repo.Add(v1)
	repo.Add(v2)

	pool := NewPool()
	pool.AddRepository(repo)

	set, err := ParseVersionRange(">=2.0.0")
	if err != nil {
		t.Fatal(err)
	}
	got := pool.WhatProvides(MakeName("a"), NewIntervalConstraint(set))
	if len(got) != 1 || got[0] != v2 {
		t.Fatalf("WhatProvides(a, >=2.0.0) = %v, want [a-2.0.0]", got)
	}
}

// TestPoolMemoizationInvalidatesOnNewRepository covers S6: a WhatProvides
// answer cached before a new repository is registered must not survive
// registration of a package that would change the answer.
func TestPoolMemoizationInvalidatesOnNewRepository(t *testing.T) {
	pool := NewPool()
	repo1 := NewMemoryRepository("first")
	repo1.Add(pkg("a", "1.0.0"))
	pool.AddRepository(repo1)

	first := pool.WhatProvides(MakeName("a"), nil)
	if len(first) != 1 {
		t.Fatalf("expected 1 match before second repository, got %d", len(first))
	}

	repo2 := NewMemoryRepository("second")
	repo2.Add(pkg("a", "2.0.0"))
	pool.AddRepository(repo2)

	second := pool.WhatProvides(MakeName("a"), nil)
	if len(second) != 2 {
		t.Fatalf("expected 2 matches after second repository registered, got %d", len(second))
	}
}

func TestPoolPackageIDsAreDenseAndPositive(t *testing.T) {
	pool := NewPool()
	repo := NewMemoryRepository("main")
	repo.Add(pkg("a", "1.0.0"))
	repo.Add(pkg("b", "1.0.0"))
	pool.AddRepository(repo)

	if pool.MaxID() != 2 {
		t.Fatalf("MaxID() = %d, want 2", pool.MaxID())
	}
	for id := 1; id <= pool.MaxID(); id++ {
		if pool.PackageByID(id) == nil {
			t.Fatalf("PackageByID(%d) = nil", id)
		}
	}
}
