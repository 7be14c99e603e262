package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Filter specifies the interpolation method for resizing.
type Filter int

const (
	// Triangle is bilinear interpolation. The rendering pipeline uses
	// it for both the aspect-correction stretch and the final grid
	// scale.
	Triangle Filter = iota

	// CatmullRom is a higher-quality cubic filter.
	CatmullRom

	// Nearest is nearest-neighbor interpolation. Fastest but lowest
	// quality.
	Nearest
)

// Resize resizes an image to the specified dimensions using the given
// interpolation filter. The alpha channel is scaled along with the
// color channels, so fully transparent regions stay transparent.
func Resize(img *Image, width, height int, filter Filter) *Image {
	dst := New(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch filter {
	case CatmullRom:
		scaler = draw.CatmullRom
	case Nearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.BiLinear
	}

	scaler.Scale(dst.NRGBA, dstRect, img.NRGBA, img.Bounds(), draw.Src, nil)
	return dst
}
