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

import "slices"

// Policy is the pluggable preference layer the solver consults for anything
// that is not a hard constraint: whether a package may be installed at all,
// which update candidates exist, and in what order to try them.
// Implementations are interchangeable and must be deterministic — the same
// inputs must always yield the same outputs (§5).
type Policy interface {
	// Installable reports whether pkg may be installed, independent of its
	// dependency links (architecture/platform filters and similar).
	Installable(pkg *Package) bool

	// FindUpdatePackages returns pkg's update candidates from the pool,
	// including pkg itself. When allowDowngrade is false, candidates with a
	// lower version than pkg are excluded.
	FindUpdatePackages(pool *Pool, pkg *Package, allowDowngrade bool) []*Package

	// SelectPreferredPackages orders candidates so the first element is the
	// one the solver should try first; the remainder become branch
	// alternatives for later minimization. installed is the repository the
	// solver is resolving against, so implementations can prefer whatever
	// is already installed.
	SelectPreferredPackages(candidates []*Package, installed Repository) []*Package

	// AllowUninstall reports whether update/feature rules should be
	// registered as weak (silently disable-able) rather than strong.
	AllowUninstall() bool
}

// DefaultPolicy is a straightforward Policy: everything is installable
// unless InstallableFunc says otherwise, updates prefer the highest version,
// and uninstalling an explicitly-installed package is not allowed.
type DefaultPolicy struct {
	// InstallableFunc, when set, overrides the default "always installable"
	// behavior.
	InstallableFunc func(pkg *Package) bool

	// Uninstall controls AllowUninstall's return value.
	Uninstall bool
}

// NewDefaultPolicy returns a DefaultPolicy with AllowUninstall()==false and
// every package installable.
func NewDefaultPolicy() *DefaultPolicy {
	return &DefaultPolicy{}
}

// Installable defers to InstallableFunc when set, else returns true.
func (p *DefaultPolicy) Installable(pkg *Package) bool {
	if p.InstallableFunc != nil {
		return p.InstallableFunc(pkg)
	}
	return true
}

// FindUpdatePackages returns every pool package sharing pkg's name (or
// providing/replacing it), excluding lower versions unless allowDowngrade.
// pkg itself is always included so "no update available" is representable.
func (p *DefaultPolicy) FindUpdatePackages(pool *Pool, pkg *Package, allowDowngrade bool) []*Package {
	candidates := pool.WhatProvides(pkg.Name, nil)
	out := make([]*Package, 0, len(candidates))
	for _, c := range candidates {
		if c == pkg {
			out = append(out, c)
			continue
		}
		if !allowDowngrade && c.Version.Sort(pkg.Version) < 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SelectPreferredPackages sorts candidates: already-installed first (stable
// within that group), then by descending version, then by name for
// determinism when versions tie.
func (p *DefaultPolicy) SelectPreferredPackages(candidates []*Package, installed Repository) []*Package {
	out := slices.Clone(candidates)
	slices.SortStableFunc(out, func(a, b *Package) int {
		aInstalled, bInstalled := a.Repository == installed, b.Repository == installed
		if aInstalled != bInstalled {
			if aInstalled {
				return -1
			}
			return 1
		}
		if cmp := b.Version.Sort(a.Version); cmp != 0 {
			return cmp
		}
		return compareNames(a.Name, b.Name)
	})
	return out
}

// AllowUninstall reports the configured uninstall policy.
func (p *DefaultPolicy) AllowUninstall() bool {
	return p.Uninstall
}

func compareNames(a, b Name) int {
	if a == b {
		return 0
	}
	av, bv := a.Value(), b.Value()
	if av < bv {
		return -1
	}
	return 1
}
