// Package imageutil provides the pure Go image plumbing for the
// renderer: a straight-alpha RGBA wrapper, file decoding, and
// filtered resizing.
package imageutil

import (
	"image"
	"image/draw"
)

// Image wraps image.NRGBA with convenience accessors. NRGBA is used
// deliberately: its samples are straight (non-premultiplied) alpha, so
// a pixel's luma and alpha can be read and multiplied independently.
type Image struct {
	*image.NRGBA
}

// New creates an empty Image with the specified dimensions.
func New(width, height int) *Image {
	return &Image{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// FromImage converts any image.Image to an Image, reusing the backing
// pixels when the source already has the right representation.
func FromImage(img image.Image) *Image {
	switch src := img.(type) {
	case *Image:
		return src
	case *image.NRGBA:
		return &Image{NRGBA: src}
	}
	bounds := img.Bounds()
	dst := New(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.NRGBA, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width.
func (img *Image) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *Image) Height() int {
	return img.Bounds().Dy()
}

// Clone creates a deep copy of the image.
func (img *Image) Clone() *Image {
	clone := New(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
