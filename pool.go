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
)

// Pool is the union index across every registered Repository. It assigns
// each Package a stable, dense, positive id on first sight and answers
// WhatProvides lookups with a deterministic, memoized result.
//
// Packages are returned in repository registration order, then in-repository
// order — the same order on every call, which is what makes a given
// (pool, installed, request, policy) tuple reproducible end to end.
type Pool struct {
	repositories []Repository
	byID         []*Package // index 0 unused; ids start at 1
	byName       map[Name][]*Package
	nameIndexed  bool

	cache      map[whatProvidesKey][]*Package
	generation int
}

type whatProvidesKey struct {
	name   Name
	digest string
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{
		byID:   make([]*Package, 1, 64),
		byName: make(map[Name][]*Package),
		cache:  make(map[whatProvidesKey][]*Package),
	}
}

// AddRepository registers r's packages, assigning each a fresh id in
// repository order. Any previously memoized WhatProvides result is
// invalidated: a later lookup always reflects every registered repository.
func (p *Pool) AddRepository(r Repository) {
	p.repositories = append(p.repositories, r)
	for _, pkg := range r.Packages() {
		pkg.ID = len(p.byID)
		pkg.Repository = r
		p.byID = append(p.byID, pkg)
	}
	p.nameIndexed = false
	p.invalidateCache()
}

// invalidateCache drops every memoized WhatProvides answer by replacing the
// cache map, and bumps the generation counter alongside it.
func (p *Pool) invalidateCache() {
	p.generation++
	p.cache = make(map[whatProvidesKey][]*Package)
}

// ensureNameIndex lazily builds the name → packages index the first time
// WhatProvides is called after a registration.
func (p *Pool) ensureNameIndex() {
	if p.nameIndexed {
		return
	}
	p.byName = make(map[Name][]*Package)
	for _, repo := range p.repositories {
		for _, pkg := range repo.Packages() {
			p.indexPackageNames(pkg)
		}
	}
	p.nameIndexed = true
}

// indexPackageNames registers pkg under its own name and every name it
// provides or replaces, so WhatProvides needs only a name-keyed scan rather
// than a linear walk of all packages.
func (p *Pool) indexPackageNames(pkg *Package) {
	seen := map[Name]bool{pkg.Name: true}
	p.byName[pkg.Name] = append(p.byName[pkg.Name], pkg)
	for _, link := range pkg.Provides {
		if !seen[link.Name] {
			seen[link.Name] = true
			p.byName[link.Name] = append(p.byName[link.Name], pkg)
		}
	}
	for _, link := range pkg.Replaces {
		if !seen[link.Name] {
			seen[link.Name] = true
			p.byName[link.Name] = append(p.byName[link.Name], pkg)
		}
	}
}

// PackagesNamed returns every registered package whose own Name equals name,
// in registration order — unlike WhatProvides, it never follows a provides
// or replaces link, so it names exactly the set of versions a same-name
// exclusion rule must cover.
func (p *Pool) PackagesNamed(name Name) []*Package {
	p.ensureNameIndex()
	var out []*Package
	for _, pkg := range p.byName[name] {
		if pkg.Name == name {
			out = append(out, pkg)
		}
	}
	return out
}

// WhatProvides returns every package whose own name, provides, or replaces
// entries match name and whose version satisfies constraint. A nil
// constraint matches every version. Results are memoized by (name,
// constraint digest) until the next AddRepository call.
func (p *Pool) WhatProvides(name Name, constraint Constraint) []*Package {
	p.ensureNameIndex()

	digest := "*"
	if constraint != nil {
		digest = constraint.String()
	}
	key := whatProvidesKey{name: name, digest: digest}
	if cached, ok := p.cache[key]; ok {
		return cached
	}

	candidates := p.byName[name]
	matches := make([]*Package, 0, len(candidates))
	for _, pkg := range candidates {
		if pkg.Matches(name, constraint) {
			matches = append(matches, pkg)
		}
	}

	p.cache[key] = matches
	return matches
}

// packageByID resolves a package by its Pool-assigned id.
func (p *Pool) packageByID(id int) *Package {
	if id <= 0 || id >= len(p.byID) {
		return nil
	}
	return p.byID[id]
}

// PackageByID resolves a package by its Pool-assigned id, or returns nil if
// id is out of range.
func (p *Pool) PackageByID(id int) *Package {
	return p.packageByID(id)
}

// Packages iterates every package the Pool has assigned an id to, in
// repository registration order, then in-repository order.
func (p *Pool) Packages() iter.Seq[*Package] {
	return func(yield func(*Package) bool) {
		for _, pkg := range p.byID[1:] {
			if !yield(pkg) {
				return
			}
		}
	}
}

// MaxID returns the highest assigned package id (0 if the Pool is empty).
func (p *Pool) MaxID() int {
	return len(p.byID) - 1
}

// String renders the pool's repository and package counts, for diagnostics.
func (p *Pool) String() string {
	return fmt.Sprintf("Pool(%d repositories, %d packages)", len(p.repositories), p.MaxID())
}
