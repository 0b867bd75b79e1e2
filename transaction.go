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

// JobKind distinguishes the two concrete actions a TransactionStep can ask
// for — not to be confused with JobCmd, which is the caller-facing request
// vocabulary; a single JobCmd (e.g. update) can produce both an install and
// a remove step.
type JobKind int

const (
	StepInstall JobKind = iota
	StepRemove
)

func (k JobKind) String() string {
	if k == StepRemove {
		return "remove"
	}
	return "install"
}

// TransactionStep is one concrete action the solver decided on: install a
// package not currently present, or remove one that is.
type TransactionStep struct {
	Job     JobKind
	Package *Package
}

// Transaction is the ordered plan Solve returns on success: every step that
// must actually change the installed set, in dependency-safe order (a
// dependency is installed before whatever requires it; a dependent is
// removed before whatever it depends on).
type Transaction []TransactionStep

// extractTransaction reads the solver's final decisionQueue into a
// Transaction (§4.16). decisionQueue records decisions in the order they
// were made — a requiring package before the dependency propagation forced
// on it — so the execution order is the reverse of that. Decisions that
// agree with the status quo (installing what is already installed, leaving
// absent packages absent) produce no step.
func (s *Solver) extractTransaction() Transaction {
	var steps Transaction
	for i := len(s.dm.decisionQueue) - 1; i >= 0; i-- {
		lit := s.dm.decisionQueue[i]
		installed := s.isInstalled(lit.Package)
		switch {
		case lit.Wanted && !installed:
			steps = append(steps, TransactionStep{Job: StepInstall, Package: lit.Package})
		case !lit.Wanted && installed:
			steps = append(steps, TransactionStep{Job: StepRemove, Package: lit.Package})
		}
	}
	return steps
}
