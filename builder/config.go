// SPDX-License-Identifier: MIT
// Package: sigil/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • buildConfig is the single source of truth for all Build knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuildConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • curve = Straight
//   • dash  = DashAlphabet
//   • seed  = "" (fixed stream; callers normally pass name+layout)

package builder

// buildConfig aggregates all knobs used by Build.
// It is passed by VALUE to helpers (immutable to callers).
type buildConfig struct {
	curve CurveMode // geometry per segment
	dash  DashMode  // dash-pattern policy
	seed  string    // style-stream seed
}

// newBuildConfig constructs a config with deterministic defaults and
// applies all options in order. Complexity: O(len(opts)).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		curve: Straight,
		dash:  DashAlphabet,
		seed:  "",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
