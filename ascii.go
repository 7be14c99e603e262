// Package ascii renders raster images as colored text in a terminal.
//
// The package is built around one shared artifact, the brightness
// Profile: a per-font mapping from printable character to a measured
// coverage score. ProfileFont builds a profile by rasterizing every
// usable glyph of a font and normalizing the measurements onto a
// common scale, Cache persists profiles so a font is only measured
// once, and Render maps an image onto a character grid by picking the
// profile entry nearest each cell's brightness.
package ascii

import (
	"encoding/json"
	"fmt"
)

const (
	// MaxBrightness is the upper bound of the profile scale, the
	// product of the two maximum 8-bit channel values (luma and alpha)
	// that a pixel measurement multiplies together.
	MaxBrightness = 255 * 255

	// Inclusive bounds of the character domain. Whitespace and
	// control code points inside the range are excluded by charset.
	charFirst = 0x20
	charLast  = 0x7F
)

// Brightness is a font-relative measure of how much ink a glyph
// covers when rendered at the font's strike size, normalized onto
// [0, MaxBrightness].
type Brightness uint16

// Profile maps each usable printable character of one font to its
// brightness. Characters the font has no glyph for are absent. A
// profile is computed once and never mutated afterwards.
type Profile map[rune]Brightness

// MarshalJSON encodes the profile as a flat object keyed by
// single-character strings, the on-disk cache format.
func (p Profile) MarshalJSON() ([]byte, error) {
	m := make(map[string]uint16, len(p))
	for c, b := range p {
		m[string(c)] = uint16(b)
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the cache format written by MarshalJSON.
// Keys longer than one character are rejected so a mangled cache file
// surfaces as a parse error instead of a silently wrong profile.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var m map[string]uint16
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(Profile, len(m))
	for k, v := range m {
		runes := []rune(k)
		if len(runes) != 1 {
			return fmt.Errorf("profile key %q is not a single character", k)
		}
		out[runes[0]] = Brightness(v)
	}
	*p = out
	return nil
}

// RGB is an 8-bit-per-channel color triple, used to carry a cell's
// original color through to emission.
type RGB struct {
	R, G, B uint8
}

// luma returns the perceptual grayscale value of a straight-alpha
// color sample, using the same Rec. 601 weights as image/color's
// GrayModel.
func luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000)
}
