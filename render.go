package ascii

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"sort"

	"github.com/jaxydog/ascii/imageutil"
)

// Cell is one draw instruction: a character positioned at a row and
// column of the output grid, carrying the source pixel's color for
// color-enabled emission.
type Cell struct {
	Row, Col int
	Char     rune
	Color    RGB
}

// MapImage rescales img onto a cols×rows character grid and maps every
// surviving pixel to the profile character nearest its brightness.
//
// The rescale happens in two steps: first the image is stretched to
// twice its pixel width to compensate for character cells being about
// twice as tall as they are wide, then the stretched image is resized
// to exactly the grid dimensions. Both steps use the triangle filter;
// the intermediate stretch changes the sampling footprint of the
// second resize, which a single combined resize would not reproduce.
//
// Fully transparent pixels produce no cell at all. Against an empty
// profile every surviving cell maps to a space. Cells are returned in
// row-major order.
func MapImage(img image.Image, profile Profile, cols, rows int) []Cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	src := imageutil.FromImage(img)
	stretched := imageutil.Resize(src, src.Width()*2, src.Height(), imageutil.Triangle)
	scaled := imageutil.Resize(stretched, cols, rows, imageutil.Triangle)

	entries := profile.sorted()
	cells := make([]Cell, 0, cols*rows)
	for y := 0; y < scaled.Height(); y++ {
		for x := 0; x < scaled.Width(); x++ {
			px := scaled.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			brightness := uint16(luma(px.R, px.G, px.B)) * uint16(px.A)
			cells = append(cells, Cell{
				Row:   y,
				Col:   x,
				Char:  entries.nearest(brightness),
				Color: RGB{R: px.R, G: px.G, B: px.B},
			})
		}
	}
	return cells
}

// Render draws img as a cols×rows character frame on w. The surface is
// cleared first, every cell is positioned explicitly rather than
// relying on cursor advancement, and the stream is flushed before
// returning so no partial frame is left buffered. With useColor set,
// each cell's color is emitted immediately before its character.
func Render(w io.Writer, img image.Image, profile Profile, cols, rows int, useColor bool) error {
	out := bufio.NewWriter(w)
	clearAll(out)

	row := -1
	for _, cell := range MapImage(img, profile, cols, rows) {
		if cell.Row != row {
			row = cell.Row
			moveToRow(out, row)
		}
		if useColor {
			setForeground(out, cell.Color)
		}
		moveToColumn(out, cell.Col)
		out.WriteRune(cell.Char)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}

type profileEntry struct {
	char  rune
	value Brightness
}

type profileEntries []profileEntry

// sorted returns the profile as a slice in ascending code-point order.
// Scanning that slice with a strict less-than makes nearest searches
// reproducible: brightness ties resolve to the lowest code point.
func (p Profile) sorted() profileEntries {
	entries := make(profileEntries, 0, len(p))
	for c, b := range p {
		entries = append(entries, profileEntry{char: c, value: b})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].char < entries[j].char
	})
	return entries
}

// nearest returns the character whose brightness has the smallest
// absolute difference from target, or a space when the profile is
// empty.
func (e profileEntries) nearest(target uint16) rune {
	best := ' '
	bestDist := -1
	for _, entry := range e {
		dist := int(entry.value) - int(target)
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = entry.char, dist
		}
	}
	return best
}
