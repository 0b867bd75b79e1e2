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

import "fmt"

// Link is one edge out of a Package: a target name plus the constraint any
// provider of that name must satisfy.
type Link struct {
	Name       Name
	Constraint Constraint
}

// String renders as "name <constraint>", omitting the constraint when it is
// the unconstrained AnyConstraint.
func (l Link) String() string {
	if l.Constraint == nil {
		return l.Name.Value()
	}
	if _, ok := l.Constraint.(AnyConstraint); ok {
		return l.Name.Value()
	}
	return fmt.Sprintf("%s %s", l.Name.Value(), l.Constraint.String())
}

// Package is an immutable value object: a concrete name+version pulled from
// a Repository, with its dependency links. Pool assigns ID and Repository on
// registration; every other field is set at construction and never mutated.
//
// Equal identity is by ID (a dense positive integer Pool hands out), not by
// field-by-field value comparison — two Packages with identical name and
// version but sourced from different repositories are different Packages.
type Package struct {
	ID         int
	Name       Name
	Version    Version
	Repository Repository

	Requires   []Link
	Conflicts  []Link
	Provides   []Link
	Replaces   []Link
	Recommends []Link
	Suggests   []Link
}

// String renders as "name-version", the notation the spec's scenarios use.
func (p *Package) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s-%s", p.Name.Value(), p.Version.String())
}

// Matches reports whether this package's own name, or any of its provides or
// replaces links, satisfies (name, constraint) — the predicate Pool's
// WhatProvides filters repository contents with.
func (p *Package) Matches(name Name, constraint Constraint) bool {
	if constraint == nil {
		constraint = AnyConstraint{}
	}
	if p.Name == name && constraint.Matches(p.Version) {
		return true
	}
	for _, link := range p.Provides {
		if link.Name == name && linkSatisfies(link, constraint, p.Version) {
			return true
		}
	}
	for _, link := range p.Replaces {
		if link.Name == name && linkSatisfies(link, constraint, p.Version) {
			return true
		}
	}
	return false
}

// linkSatisfies reports whether a provides/replaces link is compatible with
// the constraint a requirer is asking for. The link names the version it
// provides; when that version is exact (the common case: "provides: foo 2.0")
// the requester's constraint is tested directly against it. A link with no
// constraint (nil or AnyConstraint) satisfies every requested constraint. A
// link with any other constraint is taken to provide the owning package's
// own version, and the requester's constraint is tested against that.
func linkSatisfies(link Link, requested Constraint, pkgVersion Version) bool {
	if exact, ok := link.Constraint.(ExactConstraint); ok {
		return requested.Matches(exact.Version)
	}
	if link.Constraint == nil {
		return true
	}
	if _, ok := link.Constraint.(AnyConstraint); ok {
		return true
	}
	return requested.Matches(pkgVersion)
}
