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

// JobCmd is the closed set of user-level requests a Job can carry.
type JobCmd int

const (
	JobInstall JobCmd = iota
	JobRemove
	JobUpdate
	JobUpdateAll
	JobFix
	JobFixAll
	JobLock
)

func (c JobCmd) String() string {
	switch c {
	case JobInstall:
		return "install"
	case JobRemove:
		return "remove"
	case JobUpdate:
		return "update"
	case JobUpdateAll:
		return "update-all"
	case JobFix:
		return "fix"
	case JobFixAll:
		return "fix-all"
	case JobLock:
		return "lock"
	default:
		return "unknown"
	}
}

// Job is one user-declared request. PackageName is the (optional) name the
// caller asked about; Packages is the resolved candidate list the caller
// produced by querying the Pool with PackageName+Constraint before handing
// the Request to the solver — the solver itself never resolves names.
type Job struct {
	Cmd         JobCmd
	PackageName string
	Constraint  Constraint
	Packages    []*Package
}

// NewJob builds a Job for cmd against the resolved candidate packages.
func NewJob(cmd JobCmd, name string, constraint Constraint, packages []*Package) Job {
	return Job{Cmd: cmd, PackageName: name, Constraint: constraint, Packages: packages}
}

// String renders as "install foo" or similar, for diagnostics.
func (j *Job) String() string {
	if j == nil {
		return "<nil job>"
	}
	if j.PackageName == "" {
		return j.Cmd.String()
	}
	return fmt.Sprintf("%s %s", j.Cmd.String(), j.PackageName)
}

// Request is the ordered sequence of jobs a Solve call processes.
type Request struct {
	Jobs []Job
}

// NewRequest builds a Request from an ordered job list.
func NewRequest(jobs ...Job) *Request {
	return &Request{Jobs: jobs}
}
