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

// requireRule builds (¬P ∨ Q1 ∨ … ∨ Qn) for package p requiring one of
// providers. Returns nil (tautological) if p is among its own providers.
func requireRule(p *Package, providers []*Package, typ RuleType, why Why) *Rule {
	literals := make([]Literal, 0, len(providers)+1)
	literals = append(literals, NewLiteral(p, false))
	for _, provider := range providers {
		literals = append(literals, NewLiteral(provider, true))
	}
	return newRule(literals, typ, ReasonPackageRequires, why)
}

// updateRule builds (P ∨ U1 ∨ … ∨ Um): stay on P, or move to one of its
// update candidates.
func updateRule(p *Package, candidates []*Package, typ RuleType, reason RuleReason, why Why) *Rule {
	literals := make([]Literal, 0, len(candidates)+1)
	literals = append(literals, NewLiteral(p, true))
	for _, c := range candidates {
		if c == p {
			continue
		}
		literals = append(literals, NewLiteral(c, true))
	}
	return newRule(literals, typ, reason, why)
}

// installRule builds the unit clause (P).
func installRule(p *Package, typ RuleType, reason RuleReason, why Why) *Rule {
	return newRule([]Literal{NewLiteral(p, true)}, typ, reason, why)
}

// installOneOfRule builds (P1 ∨ … ∨ Pn); an empty candidate list yields the
// impossible (empty) rule, which deterministically renders the request
// unsolvable.
func installOneOfRule(candidates []*Package, typ RuleType, reason RuleReason, why Why) *Rule {
	literals := make([]Literal, len(candidates))
	for i, p := range candidates {
		literals[i] = NewLiteral(p, true)
	}
	return newRule(literals, typ, reason, why)
}

// removeRule builds the unit clause (¬P).
func removeRule(p *Package, typ RuleType, reason RuleReason, why Why) *Rule {
	return newRule([]Literal{NewLiteral(p, false)}, typ, reason, why)
}

// conflictRule builds (¬A ∨ ¬B). Returns nil when a and b are the same
// package (a package cannot conflict with itself).
func conflictRule(a, b *Package, why Why) *Rule {
	if a == b {
		return nil
	}
	return newRule([]Literal{NewLiteral(a, false), NewLiteral(b, false)}, RulePackage, ReasonPackageConflicts, why)
}

// sameNameRule builds (¬A ∨ ¬B) for two distinct packages sharing one real
// name: two versions of the same package can never both be installed, even
// absent an explicit conflicts link. Returns nil when a and b are identical.
func sameNameRule(a, b *Package, why Why) *Rule {
	if a == b {
		return nil
	}
	return newRule([]Literal{NewLiteral(a, false), NewLiteral(b, false)}, RulePackage, ReasonPackageSameName, why)
}

// impossibleRule builds the empty clause: unconditionally unsatisfiable.
func impossibleRule(typ RuleType, reason RuleReason, why Why) *Rule {
	return &Rule{Type: typ, Reason: reason, ReasonData: why, Watch1: noNext, Watch2: noNext, Next1: noNext, Next2: noNext}
}
