package makewallpaperlib

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/disintegration/imaging"
)

// NewCanvas allocates the composite canvas, filled edge to edge with the
// opaque background colour. This is also the fallback output when no
// candidate image decodes.
func NewCanvas(cs CanvasSpec, background color.NRGBA) *image.NRGBA {
	background.A = 0xff
	return imaging.New(cs.Width, cs.Height, background)
}

// CombineImages paints one transformed image per strip onto the canvas, in
// strip index order. Source-over painting flattens any source transparency
// onto the opaque background already in the canvas, so the result never
// carries an alpha channel worth of information.
//
// Assumes len(images) == len(strips). Each decoded image is released as soon
// as its strip has been painted.
func CombineImages(
	canvas *image.NRGBA,
	strips []Strip,
	images []image.Image,
	filter imaging.ResampleFilter) {

	for i := range strips {
		s := &strips[i]
		log.Printf("Painting strip %d of %d\n", i+1, len(strips))

		tile := TransformImage(images[i], s, filter)
		images[i] = nil

		r := s.Bounds()
		draw.Draw(canvas, r, tile, image.Point{}, draw.Over)
	}
}
