package ascii

import (
	"errors"
	"reflect"
	"testing"
)

// solidRaster builds a w×h raster of one repeated straight-alpha RGBA
// sample.
func solidRaster(w, h int, r, g, b, a uint8) glyphRaster {
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return glyphRaster{width: w, height: h, pix: pix}
}

func TestCharsetExcludesWhitespaceAndControl(t *testing.T) {
	for _, c := range charset() {
		if c == ' ' {
			t.Error("charset must not contain the space character")
		}
		if c == 0x7F {
			t.Error("charset must not contain DEL")
		}
		if c < 0x20 || c > 0x7F {
			t.Errorf("charset contains out-of-range character %q", c)
		}
	}
	chars := charset()
	found := map[rune]bool{}
	for _, c := range chars {
		found[c] = true
	}
	if !found['@'] || !found['A'] || !found['~'] {
		t.Errorf("charset is missing expected printable characters: %q", chars)
	}
}

func TestProfileWithSyntheticGlyphs(t *testing.T) {
	rasterize := func(c rune) (glyphRaster, bool) {
		switch c {
		case '#':
			// Fully covered 2x2 glyph.
			return solidRaster(2, 2, 255, 255, 255, 255), true
		case '.':
			// One opaque pixel out of four.
			raster := solidRaster(2, 2, 0, 0, 0, 0)
			raster.pix[0], raster.pix[1], raster.pix[2], raster.pix[3] = 255, 255, 255, 255
			return raster, true
		}
		return glyphRaster{}, false
	}

	profile := profileWith(rasterize)

	if len(profile) != 2 {
		t.Fatalf("expected 2 profile entries, got %d: %v", len(profile), profile)
	}
	if profile['#'] != MaxBrightness {
		t.Errorf("full glyph should normalize to %d, got %d", MaxBrightness, profile['#'])
	}
	// Raw value 65025/4 = 16256 (truncated); the scale is exactly 1.
	if profile['.'] != 16256 {
		t.Errorf("quarter glyph should measure 16256, got %d", profile['.'])
	}
	if _, ok := profile['A']; ok {
		t.Error("characters without glyphs must be omitted from the profile")
	}
}

func TestProfileWithNoGlyphsIsEmpty(t *testing.T) {
	profile := profileWith(func(rune) (glyphRaster, bool) {
		return glyphRaster{}, false
	})
	if len(profile) != 0 {
		t.Errorf("expected empty profile, got %v", profile)
	}
}

func TestProfileZeroScaleKeepsRawValues(t *testing.T) {
	// Every glyph rasterizes but covers nothing, so the global maximum
	// and therefore the normalization scale are zero. The guard keeps
	// the raw (all zero) values instead of dividing by zero.
	profile := profileWith(func(rune) (glyphRaster, bool) {
		return solidRaster(3, 3, 0, 0, 0, 0), true
	})
	if len(profile) != len(charset()) {
		t.Fatalf("expected %d entries, got %d", len(charset()), len(profile))
	}
	for c, b := range profile {
		if b != 0 {
			t.Errorf("expected zero brightness for %q, got %d", c, b)
		}
	}
}

func TestProfileValuesWithinRange(t *testing.T) {
	rasterize := func(c rune) (glyphRaster, bool) {
		// Vary coverage by character so normalization has real work.
		alpha := uint8(c % 251)
		return solidRaster(4, 4, 255, 255, 255, alpha), true
	}
	profile := profileWith(rasterize)
	for c, b := range profile {
		if b > MaxBrightness {
			t.Errorf("brightness of %q exceeds MaxBrightness: %d", c, b)
		}
	}
	var maxValue Brightness
	for _, b := range profile {
		if b > maxValue {
			maxValue = b
		}
	}
	// Integer truncation may land the maximum slightly under the cap,
	// but never more than one unit under it.
	if maxValue < MaxBrightness-1 {
		t.Errorf("maximum normalized brightness too low: %d", maxValue)
	}
}

func TestProfileDeterministic(t *testing.T) {
	rasterize := func(c rune) (glyphRaster, bool) {
		if c%3 == 0 {
			return glyphRaster{}, false
		}
		return solidRaster(int(c%5)+1, int(c%7)+1, 200, 180, 160, uint8(c)), true
	}
	first := profileWith(rasterize)
	second := profileWith(rasterize)
	if !reflect.DeepEqual(first, second) {
		t.Error("profiling the same glyphs twice must yield identical profiles")
	}
}

func TestProfileFontRejectsGarbage(t *testing.T) {
	_, err := ProfileFont("bogus", []byte("definitely not a font program"))
	if !errors.Is(err, ErrInvalidFont) {
		t.Errorf("expected ErrInvalidFont, got %v", err)
	}
}

func TestSumBrightnessMatchesSerial(t *testing.T) {
	// Large enough to split into several parallel chunks.
	pixels := brightnessChunk*3 + 17
	pix := make([]uint8, pixels*4)
	for i := range pix {
		pix[i] = uint8(i * 31)
	}

	var want uint64
	for i := 0; i+3 < len(pix); i += 4 {
		want += uint64(luma(pix[i], pix[i+1], pix[i+2])) * uint64(pix[i+3])
	}

	if got := sumBrightness(pix); got != want {
		t.Errorf("parallel sum %d != serial sum %d", got, want)
	}
}

func TestLuma(t *testing.T) {
	if luma(255, 255, 255) != 255 {
		t.Errorf("white luma should be 255, got %d", luma(255, 255, 255))
	}
	if luma(0, 0, 0) != 0 {
		t.Errorf("black luma should be 0, got %d", luma(0, 0, 0))
	}
	if g, b := luma(0, 255, 0), luma(0, 0, 255); g <= b {
		t.Errorf("green (%d) must weigh more than blue (%d)", g, b)
	}
}
