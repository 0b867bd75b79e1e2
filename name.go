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

import "unique"

// Name is an interned package name: two Names built from equal strings
// compare equal by pointer, not by walking the bytes, and the resolver
// compares names on every WhatProvides/addRule call (§4.3, §4.5).
type Name = unique.Handle[string]

// MakeName interns s.
func MakeName(s string) Name {
	return unique.Make(s)
}

// EmptyName is the interned empty string, used as a placeholder root name
// where no real package is being named.
func EmptyName() Name {
	return unique.Make("")
}
