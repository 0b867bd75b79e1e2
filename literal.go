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

// Literal is a signed reference to a package: wanted=true means "install
// this package", wanted=false means "do not install it". Its canonical
// integer id is +Package.ID when wanted, -Package.ID otherwise; id is never
// zero because Pool assigns package ids starting at 1.
type Literal struct {
	Package *Package
	Wanted  bool
}

// NewLiteral builds a Literal asserting pkg should (or should not) be
// installed.
func NewLiteral(pkg *Package, wanted bool) Literal {
	return Literal{Package: pkg, Wanted: wanted}
}

// ID returns the canonical signed integer identifying this literal.
func (l Literal) ID() int {
	if l.Wanted {
		return l.Package.ID
	}
	return -l.Package.ID
}

// Inverted returns the negation of this literal (same package, flipped sign).
func (l Literal) Inverted() Literal {
	return Literal{Package: l.Package, Wanted: !l.Wanted}
}

// String renders as "+name-version" or "-name-version".
func (l Literal) String() string {
	sign := "+"
	if !l.Wanted {
		sign = "-"
	}
	return fmt.Sprintf("%s%s", sign, l.Package.String())
}

// literalFromID resolves a signed literal id back to a Literal using the
// Pool's id→Package index.
func literalFromID(id int, pool *Pool) Literal {
	if id > 0 {
		return Literal{Package: pool.packageByID(id), Wanted: true}
	}
	return Literal{Package: pool.packageByID(-id), Wanted: false}
}
