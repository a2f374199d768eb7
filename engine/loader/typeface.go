package loader

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Glyph is one character of a typeface in font units.
type Glyph struct {
	Advance float32 `json:"ha"`
	XMin    float32 `json:"x_min"`
	XMax    float32 `json:"x_max"`
	Outline string  `json:"o"`
}

// BoundingBox is the font-wide glyph bounding box in font units.
type BoundingBox struct {
	XMin float32 `json:"xMin"`
	XMax float32 `json:"xMax"`
	YMin float32 `json:"yMin"`
	YMax float32 `json:"yMax"`
}

// Typeface is a parsed typeface JSON document as produced by facetype.js.
type Typeface struct {
	FamilyName         string           `json:"familyName"`
	Glyphs             map[string]Glyph `json:"glyphs"`
	Resolution         float32          `json:"resolution"`
	BoundingBox        BoundingBox      `json:"boundingBox"`
	UnderlineThickness float32          `json:"underlineThickness"`
}

// ParseTypeface decodes a typeface JSON document.
//
// Parameters:
//   - data: the JSON payload
//
// Returns:
//   - *Typeface: the parsed typeface
//   - error: error if the payload is not a usable typeface
func ParseTypeface(data []byte) (*Typeface, error) {
	tf := &Typeface{}
	if err := json.Unmarshal(data, tf); err != nil {
		return nil, fmt.Errorf("failed to decode typeface: %w", err)
	}
	if tf.Resolution <= 0 {
		return nil, fmt.Errorf("typeface has invalid resolution %v", tf.Resolution)
	}
	if len(tf.Glyphs) == 0 {
		return nil, fmt.Errorf("typeface has no glyphs")
	}
	return tf, nil
}

// Glyph looks up the glyph for r, substituting '?' when r is missing.
//
// Parameters:
//   - r: the character to look up
//
// Returns:
//   - Glyph: the glyph
//   - bool: false when neither r nor '?' exists
func (t *Typeface) Glyph(r rune) (Glyph, bool) {
	if g, ok := t.Glyphs[string(r)]; ok {
		return g, true
	}
	g, ok := t.Glyphs["?"]
	return g, ok
}

// LineHeight returns the distance between baselines for text of the given size.
func (t *Typeface) LineHeight(size float32) float32 {
	scale := size / t.Resolution
	return (t.BoundingBox.YMax - t.BoundingBox.YMin + t.UnderlineThickness) * scale
}

// Measure computes the half-extents of the text geometry built from text at the
// given size and extrusion depth, once centered on its bounding box.
//
// Parameters:
//   - text: the text, lines separated by '\n'
//   - size: the em size in world units
//   - depth: the extrusion depth in world units
//
// Returns:
//   - [3]float32: half of the width, height, and depth
func (t *Typeface) Measure(text string, size, depth float32) [3]float32 {
	scale := size / t.Resolution

	lines := strings.Split(text, "\n")
	var width float32
	for _, line := range lines {
		var advance float32
		for _, r := range line {
			if g, ok := t.Glyph(r); ok {
				advance += g.Advance * scale
			}
		}
		width = max(width, advance)
	}

	top := t.BoundingBox.YMax * scale
	bottom := -float32(len(lines)-1)*t.LineHeight(size) + t.BoundingBox.YMin*scale
	height := top - bottom

	return [3]float32{width / 2, height / 2, depth / 2}
}
