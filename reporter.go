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
	"strings"
)

// Problem is a minimal set of user/update rules whose simultaneous
// enablement caused unsatisfiability: a list of Why entries (each either a
// Job or a Rule, per §6).
type Problem []Why

// Problems is the solver's failure output: one Problem per independent
// conflict group accumulated across reset cycles.
type Problems []Problem

// Reporter renders Problems into a human-readable explanation.
type Reporter interface {
	Report(problems Problems) string
}

// DefaultReporter renders each problem as an indented, numbered list of its
// causes — verbose but traceable back to the exact job/rule involved.
type DefaultReporter struct{}

// Report implements Reporter.
func (DefaultReporter) Report(problems Problems) string {
	if len(problems) == 0 {
		return "no problems"
	}
	var b strings.Builder
	for i, problem := range problems {
		fmt.Fprintf(&b, "Problem %d:\n", i+1)
		for _, why := range problem {
			fmt.Fprintf(&b, "  - %s\n", why.String())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// CollapsedReporter renders each problem as a single flattened line chained
// with "and because", the terser form suited to single-line log output.
type CollapsedReporter struct{}

// Report implements Reporter.
func (CollapsedReporter) Report(problems Problems) string {
	if len(problems) == 0 {
		return "no problems"
	}
	lines := make([]string, 0, len(problems))
	for _, problem := range problems {
		lines = append(lines, collapseProblem(problem))
	}
	return strings.Join(lines, "; ")
}

func collapseProblem(problem Problem) string {
	parts := make([]string, 0, len(problem))
	for _, why := range problem {
		parts = append(parts, why.String())
	}
	return strings.Join(parts, " and because ")
}

var (
	_ Reporter = DefaultReporter{}
	_ Reporter = CollapsedReporter{}
)
