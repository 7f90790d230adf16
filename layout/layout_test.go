package layout_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sigil/layout"
)

//----------------------------------------------------------------------------//
// Resolve / ResolveAll Tests
//----------------------------------------------------------------------------//

// TestResolve_CaseInsensitiveLetters verifies 'A' and 'a' share one key.
func TestResolve_CaseInsensitiveLetters(t *testing.T) {
	tbl := layout.New()
	upper, okU := tbl.Resolve(layout.Qwerty, 'A')
	lower, okL := tbl.Resolve(layout.Qwerty, 'a')
	if !okU || !okL {
		t.Fatal("letter resolution failed on qwerty")
	}
	if upper != lower {
		t.Errorf("Resolve('A') = %+v, Resolve('a') = %+v; want identical", upper, lower)
	}
}

// TestResolve_DigitsAndUnderscoreAsIs verifies non-letter lookups.
func TestResolve_DigitsAndUnderscoreAsIs(t *testing.T) {
	tbl := layout.New()
	for _, ch := range "1234567890_" {
		if _, ok := tbl.Resolve(layout.Qwerty, ch); !ok {
			t.Errorf("Resolve(%q) not found on qwerty", ch)
		}
	}
}

// TestResolve_Unknowns covers unsupported characters and unknown layouts.
func TestResolve_Unknowns(t *testing.T) {
	tbl := layout.New()
	if _, ok := tbl.Resolve(layout.Qwerty, '!'); ok {
		t.Error("Resolve('!') succeeded; want ok=false")
	}
	if _, ok := tbl.Resolve("colemak", 'a'); ok {
		t.Error("Resolve on unregistered layout succeeded; want ok=false")
	}
}

// TestResolveAll_DropsUnsupported checks skip-not-substitute semantics and
// case preservation of the source characters.
func TestResolveAll_DropsUnsupported(t *testing.T) {
	tbl := layout.New()
	points := tbl.ResolveAll("A!b 3", layout.Qwerty)
	if len(points) != 3 {
		t.Fatalf("ResolveAll(\"A!b 3\") resolved %d points; want 3", len(points))
	}
	want := []rune{'A', 'b', '3'}
	for i, p := range points {
		if p.Char != want[i] {
			t.Errorf("point %d char = %q; want %q (as typed)", i, p.Char, want[i])
		}
	}
}

// TestResolveAll_Empty covers fully-unsupported and empty names.
func TestResolveAll_Empty(t *testing.T) {
	tbl := layout.New()
	if got := tbl.ResolveAll("!@# $%", layout.Qwerty); len(got) != 0 {
		t.Errorf("unsupported-only name resolved %d points; want 0", len(got))
	}
	if got := tbl.ResolveAll("", layout.Qwerty); len(got) != 0 {
		t.Errorf("empty name resolved %d points; want 0", len(got))
	}
}

//----------------------------------------------------------------------------//
// Registration / Bounds Tests
//----------------------------------------------------------------------------//

// TestRegister_Sentinels exercises every registration error class.
func TestRegister_Sentinels(t *testing.T) {
	tbl := layout.New()
	valid := map[rune]layout.Position{'a': {X: 0, Y: 0}}
	cases := []struct {
		name string
		id   layout.LayoutID
		keys map[rune]layout.Position
		err  error
	}{
		{"EmptyID", "", valid, layout.ErrEmptyLayout},
		{"EmptyTable", "custom", nil, layout.ErrEmptyLayout},
		{"Duplicate", layout.Qwerty, valid, layout.ErrDuplicateLayout},
		{"UppercaseKey", "custom", map[rune]layout.Position{'A': {}}, layout.ErrBadEntry},
		{"SymbolKey", "custom", map[rune]layout.Position{'!': {}}, layout.ErrBadEntry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tbl.Register(tc.id, tc.keys); !errors.Is(err, tc.err) {
				t.Errorf("Register(%q) error = %v; want %v", tc.id, err, tc.err)
			}
		})
	}
}

// TestRegister_DeepCopies ensures callers cannot alias internal storage.
func TestRegister_DeepCopies(t *testing.T) {
	tbl := layout.New()
	keys := map[rune]layout.Position{'a': {X: 1, Y: 2}}
	if err := tbl.Register("custom", keys); err != nil {
		t.Fatalf("Register: %v", err)
	}
	keys['a'] = layout.Position{X: 99, Y: 99}
	pos, ok := tbl.Resolve("custom", 'a')
	if !ok || pos != (layout.Position{X: 1, Y: 2}) {
		t.Errorf("Resolve after caller mutation = %+v; want the registered copy", pos)
	}
}

// TestBounds_Qwerty checks the tight box over the shipped qwerty table.
func TestBounds_Qwerty(t *testing.T) {
	tbl := layout.New()
	minX, minY, maxX, maxY, err := tbl.Bounds(layout.Qwerty)
	if err != nil {
		t.Fatalf("Bounds: %v", err)
	}
	if minX != 0 || minY != 0 {
		t.Errorf("Bounds min = (%v,%v); want (0,0)", minX, minY)
	}
	// '_' at the hyphen slot is the rightmost key; zxcvbnm row the lowest.
	if maxX != 400 || maxY != 120 {
		t.Errorf("Bounds max = (%v,%v); want (400,120)", maxX, maxY)
	}
	if _, _, _, _, err = tbl.Bounds("colemak"); !errors.Is(err, layout.ErrUnknownLayout) {
		t.Errorf("Bounds(colemak) error = %v; want ErrUnknownLayout", err)
	}
}

//----------------------------------------------------------------------------//
// YAML Loader Tests
//----------------------------------------------------------------------------//

const customYAML = `
id: tiny
keys:
  a: {x: 0, y: 0}
  b: {x: 40, y: 0}
  "1": {x: 0, y: 40}
  _: {x: 40, y: 40}
`

// TestLoadYAML_RoundRegistration loads a custom layout and resolves on it.
func TestLoadYAML_RoundRegistration(t *testing.T) {
	tbl := layout.New()
	id, err := tbl.LoadYAML([]byte(customYAML))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if id != "tiny" {
		t.Errorf("LoadYAML id = %q; want %q", id, "tiny")
	}
	if pos, ok := tbl.Resolve(id, 'B'); !ok || pos != (layout.Position{X: 40, Y: 0}) {
		t.Errorf("Resolve('B') on tiny = (%+v,%v); want ({40 0},true)", pos, ok)
	}
}

// TestLoadYAML_Errors covers malformed documents and bad keys.
func TestLoadYAML_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"MultiRuneKey", "id: bad\nkeys:\n  ab: {x: 0, y: 0}\n", layout.ErrBadEntry},
		{"UppercaseKey", "id: bad\nkeys:\n  A: {x: 0, y: 0}\n", layout.ErrBadEntry},
		{"NoKeys", "id: bad\n", layout.ErrEmptyLayout},
		{"DuplicateID", "id: qwerty\nkeys:\n  a: {x: 0, y: 0}\n", layout.ErrDuplicateLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := layout.New()
			if _, err := tbl.LoadYAML([]byte(tc.doc)); !errors.Is(err, tc.err) {
				t.Errorf("LoadYAML error = %v; want %v", err, tc.err)
			}
		})
	}
	tbl := layout.New()
	if _, err := tbl.LoadYAML([]byte("id: [broken")); err == nil {
		t.Error("LoadYAML accepted malformed YAML")
	}
}
