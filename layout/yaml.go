// SPDX-License-Identifier: MIT
// Package: sigil/layout
//
// yaml.go — YAML loader for user-provided layout tables.
//
// File format (one complete layout per document):
//
//	id: dvorak
//	keys:
//	  a: {x: 30, y: 80}
//	  "1": {x: 0, y: 0}
//	  _: {x: 400, y: 0}
//
// Contract:
//   • Keys are single-character strings from the supported alphabet
//     (lowercase letters, digits, underscore); anything else → ErrBadEntry.
//   • The loaded layout goes through Register, so the usual sentinels
//     (ErrEmptyLayout, ErrDuplicateLayout) apply unchanged.
//
// AI-Hints:
//   • YAML was chosen over a bespoke format because the codec's text form
//     already uses it; one serializer for the whole repo.

package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// methodLoadYAML tags loader errors with their origin.
const methodLoadYAML = "LoadYAML"

// yamlLayout mirrors the on-disk document structure.
type yamlLayout struct {
	ID   string                  `yaml:"id"`
	Keys map[string]yamlPosition `yaml:"keys"`
}

// yamlPosition mirrors one key entry.
type yamlPosition struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadYAML parses one layout document and registers it in t.
// Returns the registered LayoutID on success.
// Errors: yaml syntax errors (wrapped), ErrBadEntry for multi-rune or
// unsupported keys, plus all Register sentinels.
// Complexity: O(len(data) + len(keys)).
func (t *Table) LoadYAML(data []byte) (LayoutID, error) {
	var doc yamlLayout
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("%s: %w", methodLoadYAML, err)
	}

	keys := make(map[rune]Position, len(doc.Keys))
	for k, p := range doc.Keys {
		runes := []rune(k)
		if len(runes) != 1 {
			return "", fmt.Errorf("%s: key %q is not a single character: %w",
				methodLoadYAML, k, ErrBadEntry)
		}
		keys[runes[0]] = Position{X: p.X, Y: p.Y}
	}

	id := LayoutID(doc.ID)
	if err := t.Register(id, keys); err != nil {
		return "", fmt.Errorf("%s: %w", methodLoadYAML, err)
	}

	return id, nil
}
