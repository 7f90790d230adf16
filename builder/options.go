// SPDX-License-Identifier: MIT
// Package: sigil/builder
//
// options.go — functional options for Build.
//
// Contract (strict):
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Build itself MUST NOT panic or error at runtime.
//   • Determinism is explicit: the dash stream is seeded via WithSeed
//     only; no hidden entropy, no globals.
//
// AI-Hints:
//   • Seed the stream with the full input name plus the layout id so the
//     same name always restyles identically; see the codec package for
//     the canonical seed composition.
//   • Options apply in order, last-wins.

package builder

// Option customizes Build by mutating a buildConfig before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*buildConfig)

// WithCurveMode selects the per-segment geometry (Straight, Quadratic or
// CatmullRom). Panics on an out-of-range mode to surface programmer error
// early. Complexity: O(1).
func WithCurveMode(m CurveMode) Option {
	if m < Straight || m > CatmullRom {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithCurveMode(out of range)")
	}
	return func(c *buildConfig) {
		c.curve = m
	}
}

// WithDashMode selects the dash-pattern policy (DashAlphabet or
// DashLegacy). Panics on an out-of-range mode. Complexity: O(1).
func WithDashMode(m DashMode) Option {
	if m < DashAlphabet || m > DashLegacy {
		panic("builder: WithDashMode(out of range)")
	}
	return func(c *buildConfig) {
		c.dash = m
	}
}

// WithSeed sets the seed string of the style-selection stream. The empty
// string is a valid (fixed) seed, so any value is accepted.
// Complexity: O(1).
func WithSeed(seed string) Option {
	return func(c *buildConfig) {
		c.seed = seed
	}
}
