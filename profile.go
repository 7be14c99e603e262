package ascii

import (
	"errors"
	"fmt"
	"runtime"
	"unicode"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidFont reports that font bytes could not be parsed by any
// rasterization back-end. There is no fallback past this point.
var ErrInvalidFont = errors.New("invalid font data")

// charset returns the fixed alphabet of usable output characters:
// printable ASCII with whitespace and control code points removed.
func charset() []rune {
	chars := make([]rune, 0, charLast-charFirst+1)
	for c := rune(charFirst); c <= charLast; c++ {
		if unicode.IsSpace(c) || unicode.IsControl(c) {
			continue
		}
		chars = append(chars, c)
	}
	return chars
}

// ProfileFont rasterizes every usable printable character of the font
// and returns a brightness profile normalized onto [0, MaxBrightness].
//
// Characters the font cannot map are omitted rather than failing the
// whole font, and a font that produces no glyphs at all yields an
// empty profile with a nil error. Persisting the result is the
// cache's job, not this function's.
func ProfileFont(name string, data []byte) (Profile, error) {
	scaler, err := newGlyphScaler(data)
	if err != nil {
		return nil, fmt.Errorf("profiling font %q: %w", name, err)
	}
	return profileWith(scaler.rasterize), nil
}

// profileWith runs the profiling pipeline over an arbitrary rasterize
// function. Split from ProfileFont so tests can feed synthetic glyphs
// without a real font program.
func profileWith(rasterize func(rune) (glyphRaster, bool)) Profile {
	chars := charset()
	rasters := make([]glyphRaster, len(chars))
	found := make([]bool, len(chars))

	// Each character rasterizes independently on a fixed-size pool;
	// the scaler's own lock covers the shared state.
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range chars {
		group.Go(func() error {
			rasters[i], found[i] = rasterize(c)
			return nil
		})
	}
	group.Wait()

	// The normalization denominator is shared across the whole font:
	// the largest raster dimensions any character produced.
	var maxWidth, maxHeight int
	for i := range rasters {
		if !found[i] {
			continue
		}
		maxWidth = max(maxWidth, rasters[i].width)
		maxHeight = max(maxHeight, rasters[i].height)
	}
	pixelsPerCell := uint64(maxWidth) * uint64(maxHeight)
	if pixelsPerCell == 0 {
		return Profile{}
	}

	raw := make([]uint64, len(chars))
	for i := range chars {
		if !found[i] {
			continue
		}
		group.Go(func() error {
			raw[i] = sumBrightness(rasters[i].pix) / pixelsPerCell
			return nil
		})
	}
	group.Wait()

	// Normalization needs the global maximum, so it only starts after
	// every per-character task has completed.
	var maxRaw uint64
	for i := range chars {
		if found[i] && raw[i] > maxRaw {
			maxRaw = raw[i]
		}
	}
	scale := float64(maxRaw) / float64(MaxBrightness)

	profile := make(Profile, len(chars))
	for i, c := range chars {
		if !found[i] {
			continue
		}
		value := raw[i]
		if scale > 0 {
			// Truncating here can leave the maximum slightly under
			// MaxBrightness; accepted in exchange for integer values.
			value = uint64(float64(value) / scale)
		}
		profile[c] = Brightness(value)
	}
	return profile
}

// brightnessChunk is the number of pixels each parallel accumulation
// task covers.
const brightnessChunk = 4096

// sumBrightness accumulates luma×alpha over a straight-alpha RGBA
// buffer. Large buffers are split into fixed-size chunks reduced in
// parallel and joined afterwards.
func sumBrightness(pix []uint8) uint64 {
	pixels := len(pix) / 4
	chunks := (pixels + brightnessChunk - 1) / brightnessChunk
	if chunks <= 1 {
		return sumBrightnessRange(pix)
	}

	partial := make([]uint64, chunks)
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < chunks; i++ {
		lo := i * brightnessChunk * 4
		hi := min(lo+brightnessChunk*4, len(pix))
		group.Go(func() error {
			partial[i] = sumBrightnessRange(pix[lo:hi])
			return nil
		})
	}
	group.Wait()

	var total uint64
	for _, p := range partial {
		total += p
	}
	return total
}

func sumBrightnessRange(pix []uint8) uint64 {
	var sum uint64
	for i := 0; i+3 < len(pix); i += 4 {
		sum += uint64(luma(pix[i], pix[i+1], pix[i+2])) * uint64(pix[i+3])
	}
	return sum
}
