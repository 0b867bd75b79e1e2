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

// Repository is a collection of Packages. Pool unions an ordered list of
// Repositories; the solver distinguishes "installed" from "candidate"
// packages purely by comparing a Package's Repository against the installed
// Repository's identity (object identity, per the spec's §6 rule), never by
// value.
type Repository interface {
	// Packages returns every package the repository holds, in a stable,
	// deterministic order.
	Packages() []*Package

	// Name identifies the repository for diagnostics; it plays no role in
	// solving semantics.
	Name() string
}

// MemoryRepository is an in-memory, insertion-ordered Repository. It is the
// Repository implementation Pool tests and the installed-set fixture use.
type MemoryRepository struct {
	name     string
	packages []*Package
}

// NewMemoryRepository creates an empty, named MemoryRepository.
func NewMemoryRepository(name string) *MemoryRepository {
	return &MemoryRepository{name: name}
}

// Add appends a package to the repository, preserving insertion order.
func (r *MemoryRepository) Add(pkg *Package) {
	r.packages = append(r.packages, pkg)
}

// Packages returns the repository's packages in insertion order.
func (r *MemoryRepository) Packages() []*Package {
	return r.packages
}

// Name returns the repository's diagnostic name.
func (r *MemoryRepository) Name() string {
	return r.name
}

var _ Repository = (*MemoryRepository)(nil)
