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

import "log/slog"

// defaultMaxSteps bounds the number of setPropagateLearn iterations runSat
// will perform before giving up with an internal error, guarding against a
// non-terminating search caused by an engine bug rather than the input.
const defaultMaxSteps = 100_000

// SolverOptions configures a Solver. Use the With* functions rather than
// constructing this directly.
type SolverOptions struct {
	MaxSteps           int
	Logger             *slog.Logger
	TrackLearnedRules  bool
	DisableRulesOnFail bool
}

// SolverOption mutates a SolverOptions during construction.
type SolverOption func(*SolverOptions)

func defaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxSteps:           defaultMaxSteps,
		Logger:             slog.New(slog.DiscardHandler),
		DisableRulesOnFail: true,
	}
}

// WithMaxSteps overrides the iteration bound; 0 disables the bound entirely.
func WithMaxSteps(n int) SolverOption {
	return func(o *SolverOptions) { o.MaxSteps = n }
}

// WithLogger attaches a structured logger the solver emits debug records to
// at each runSat phase transition.
func WithLogger(logger *slog.Logger) SolverOption {
	return func(o *SolverOptions) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithTrackLearnedRules controls whether a learned rule that mediates an
// unsolvable conflict is reported as a Problem entry in its own right,
// alongside the JOB/PACKAGE roots analyzeUnsolvable resolves it to. Learned
// rules are always walked back to those roots regardless of this setting —
// disabling it only trims the learned rule itself out of the reported
// Problem, for callers who want root causes without the derivation noise.
func WithTrackLearnedRules(track bool) SolverOption {
	return func(o *SolverOptions) { o.TrackLearnedRules = track }
}

// WithDisableRulesOnFail controls whether analyzeUnsolvable is permitted to
// disable conflicting rule sources and retry (the default) or must report
// the first unsolvable conflict immediately.
func WithDisableRulesOnFail(enabled bool) SolverOption {
	return func(o *SolverOptions) { o.DisableRulesOnFail = enabled }
}
