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

// UnsolvableError is returned by Solve when runSat finds no satisfying
// assignment, or reaches one only after disabling rule sources and recording
// Problems along the way. It is not exceptional —
// it is the request's normal failure mode — and carries the causal Problems
// a Reporter can render for a user.
type UnsolvableError struct {
	Problems Problems
	Reporter Reporter
}

// NewUnsolvableError wraps problems with the default reporter.
func NewUnsolvableError(problems Problems) *UnsolvableError {
	return &UnsolvableError{Problems: problems, Reporter: DefaultReporter{}}
}

// WithReporter returns a copy of the error using r to render Error().
func (e *UnsolvableError) WithReporter(r Reporter) *UnsolvableError {
	return &UnsolvableError{Problems: e.Problems, Reporter: r}
}

func (e *UnsolvableError) Error() string {
	reporter := e.Reporter
	if reporter == nil {
		reporter = DefaultReporter{}
	}
	return reporter.Report(e.Problems)
}

// MalformedRequestError reports a job that resolved to zero candidate
// packages where candidates were required (e.g. `install` naming a package
// the pool has never heard of). The job becomes an impossible rule, and Solve
// returns this error as soon as rule generation finds it, before the search
// starts and without recording Problems, so callers can distinguish "no
// candidates" from a genuine version conflict.
type MalformedRequestError struct {
	Job *Job
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("depsolve: job %s resolved to no candidate packages", e.Job)
}

// InternalError marks an invariant the solver expected to hold but found
// broken — a bug in the engine, not a property of the input. Solve aborts on
// it rather than continuing via rule-disabling. It is raised when the search
// exceeds SolverOptions.MaxSteps.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "depsolve: internal: " + e.Message
}

func newInternalError(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

var (
	_ error = (*UnsolvableError)(nil)
	_ error = (*MalformedRequestError)(nil)
	_ error = (*InternalError)(nil)
)
