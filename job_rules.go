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

// addRulesForJobs walks every job in the request, generating package rules
// for its resolved candidates and emitting the job's own rule per §4.8.
// update/update-all/fix/fix-all carry no rule of their own; they only
// populate updateMap/fixMap, consulted later by addUpdateAndFeatureRules and
// addRulesForPackage's dontFix check.
func (s *Solver) addRulesForJobs(req *Request) {
	for i := range req.Jobs {
		job := &req.Jobs[i]

		for _, pkg := range job.Packages {
			s.addRulesForPackage(pkg)
		}

		switch job.Cmd {
		case JobInstall:
			rule := installOneOfRule(job.Packages, RuleJob, ReasonJobInstall, WhyJob(job))
			s.addRule(rule)

		case JobRemove:
			for _, pkg := range job.Packages {
				s.addRule(removeRule(pkg, RuleJob, ReasonJobRemove, WhyJob(job)))
			}

		case JobLock:
			for _, pkg := range job.Packages {
				if s.isInstalled(pkg) {
					s.addRule(installRule(pkg, RuleJob, ReasonJobLock, WhyJob(job)))
				} else {
					s.addRule(removeRule(pkg, RuleJob, ReasonJobLock, WhyJob(job)))
				}
			}

		case JobUpdate:
			for _, pkg := range job.Packages {
				s.updateMap[pkg.ID] = true
				s.fixMap[pkg.ID] = true
				s.addRulesForUpdatePackages(pkg, true)
			}

		case JobUpdateAll:
			s.updateAll = true
			for _, pkg := range s.installed.Packages() {
				s.updateMap[pkg.ID] = true
				s.fixMap[pkg.ID] = true
				s.addRulesForUpdatePackages(pkg, true)
			}

		case JobFix:
			for _, pkg := range job.Packages {
				s.fixMap[pkg.ID] = true
				s.addRulesForPackage(pkg)
			}

		case JobFixAll:
			for _, pkg := range s.installed.Packages() {
				s.fixMap[pkg.ID] = true
			}
		}
	}
}
