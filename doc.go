// Package sigil turns any name (letters, digits, underscore) into a
// reproducible, stylized path over a keyboard-key grid — and into a
// compact canonical record ("codec") that lets two independently produced
// signatures be verified as matching.
//
// 🚀 What is sigil?
//
//	A deterministic, zero-entropy pipeline:
//		• layout/   — character → key-position tables (qwerty, azerty, YAML-loadable)
//		• classify/ — the five-class pair classifier driving style & codec features
//		• stream/   — FNV-1a-style 32-bit hash + seeded xorshift stream
//		• builder/  — resolved points → styled segments (direction, length bin,
//		  dash pattern, color, straight/quadratic/Catmull-Rom geometry)
//		• codec/    — the canonical record: encode, YAML text form, SVG-embeddable
//		  form, structural matching
//		• verify/   — DTW similarity scoring between two codecs
//		• render/   — SVG assembly with the codec embedded in <metadata>
//
// ✨ Why choose sigil?
//
//   - Reproducible – same name, layout and options ⇒ byte-identical output,
//     across runs and across implementations
//   - Styling-independent codec – colors and curves never leak into the record
//   - Pure – no I/O, no globals, no hidden entropy; every build is a full,
//     independent recomputation
//   - Extensible – add a keyboard layout as data (Go or YAML), nothing else
//     changes
//
// Quick start:
//
//	tbl := layout.New()
//	segs, rec, err := sigil.Signature(tbl, "Ab_3", layout.Qwerty,
//	    builder.CatmullRom, builder.DashAlphabet)
//
// Dive into each package's doc.go for contracts, invariants and examples.
package sigil
