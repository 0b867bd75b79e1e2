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

// Package depsolve resolves a set of install/remove/update/lock requests
// against a pool of package repositories into a concrete Transaction, using
// a conflict-driven clause-learning (CDCL) satisfiability search over rules
// generated from package dependency links.
//
// A typical caller builds a Pool, registers one or more Repositories,
// resolves job candidates against it, and calls Solve:
//
//	pool := depsolve.NewPool()
//	pool.AddRepository(repo)
//	req := depsolve.NewRequest(depsolve.NewJob(depsolve.JobInstall, "app", nil, pool.WhatProvides(name, nil)))
//	txn, err := depsolve.Solve(pool, installed, depsolve.NewDefaultPolicy(), req)
//
// Internally, rules are generated from every reachable package's Requires,
// Conflicts, Provides and Replaces links (rules_gen.go), from the request's
// jobs (job_rules.go), and from each installed package's update and feature
// options (update_feature_rules.go). A two-watched-literal propagation loop
// (propagate.go) drives unit rules to their forced decisions; a conflict
// triggers 1-UIP clause learning and back-jumping (analyze.go), or, at
// decision level 1, disables an offending rule source and retries
// (analyzeUnsolvable, reset.go). runsat.go's main loop alternates
// propagation with scans for rules the search still needs to decide, and
// finishes with one bounded minimization pass over alternatives the Policy
// ranked lower than what was actually chosen.
package depsolve
