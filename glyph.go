package ascii

import (
	"image"
	"image/draw"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// strikeSize is the pixel size glyphs are rasterized at while
// profiling. Brightness is normalized per font, so the exact size only
// needs to be consistent, not tuned per face.
const strikeSize = 64

// glyphRaster is the transient pixel output for one character: a
// straight-alpha RGBA buffer plus its dimensions. Only the brightness
// derived from it outlives profiling.
type glyphRaster struct {
	width, height int
	pix           []uint8 // RGBA samples, straight alpha
}

// glyphSource rasterizes a single character, reporting ok=false when
// the font has no usable glyph for it.
type glyphSource interface {
	rasterize(c rune) (glyphRaster, bool)
}

// freetypeSource rasterizes through the FreeType outline scaler with
// full hinting. Preferred source: it matches how most terminals shape
// TrueType glyphs.
type freetypeSource struct {
	font *truetype.Font
	face font.Face
}

func newFreetypeSource(data []byte) (*freetypeSource, bool) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, false
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    strikeSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &freetypeSource{font: f, face: face}, true
}

func (s *freetypeSource) rasterize(c rune) (glyphRaster, bool) {
	// Index 0 is .notdef; the character is unmapped in this font.
	if s.font.Index(c) == 0 {
		return glyphRaster{}, false
	}
	return rasterizeFace(s.face, c)
}

// opentypeSource rasterizes through x/image's sfnt scaler, which
// accepts OpenType/CFF font programs the FreeType parser rejects.
type opentypeSource struct {
	font *sfnt.Font
	face font.Face
}

func newOpentypeSource(data []byte) (*opentypeSource, bool) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, false
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: strikeSize,
		DPI:  72,
	})
	if err != nil {
		return nil, false
	}
	return &opentypeSource{font: f, face: face}, true
}

func (s *opentypeSource) rasterize(c rune) (glyphRaster, bool) {
	var buf sfnt.Buffer
	index, err := s.font.GlyphIndex(&buf, c)
	if err != nil || index == 0 {
		return glyphRaster{}, false
	}
	return rasterizeFace(s.face, c)
}

// rasterizeFace draws one glyph as opaque white over transparent
// black, cropped to the glyph's own bounding box, so the alpha channel
// carries pure antialiasing coverage.
func rasterizeFace(face font.Face, c rune) (glyphRaster, bool) {
	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, c)
	if !ok || dr.Empty() {
		return glyphRaster{}, false
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.DrawMask(dst, dst.Bounds(), image.White, image.Point{}, mask, maskp, draw.Over)
	return glyphRaster{width: dr.Dx(), height: dr.Dy(), pix: dst.Pix}, true
}

// glyphScaler is the shared rasterization context: an ordered chain of
// glyph sources where the first one producing a glyph wins. Font faces
// reuse internal scratch buffers and are not safe for concurrent use,
// so the scaler is mutex-guarded; the lock is held for one glyph at a
// time so the profiling pool is never serialized longer than a single
// rasterization.
type glyphScaler struct {
	mu      sync.Mutex
	sources []glyphSource
}

func newGlyphScaler(data []byte) (*glyphScaler, error) {
	var sources []glyphSource
	if s, ok := newFreetypeSource(data); ok {
		sources = append(sources, s)
	}
	if s, ok := newOpentypeSource(data); ok {
		sources = append(sources, s)
	}
	if len(sources) == 0 {
		return nil, ErrInvalidFont
	}
	return &glyphScaler{sources: sources}, nil
}

func (g *glyphScaler) rasterize(c rune) (glyphRaster, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, s := range g.sources {
		if raster, ok := s.rasterize(c); ok {
			return raster, true
		}
	}
	return glyphRaster{}, false
}
