package makewallpaperlib

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// TransformImage cover-resizes img to fill the strip's bounding rectangle,
// scaling uniformly so the smaller relative dimension matches and
// center-cropping the overflow on the other axis. Upscaling arbitrarily
// small sources is fine. For sheared strips, every pixel outside the strip
// polygon is cleared to fully transparent so painting it onto the canvas
// leaves neighbouring strips untouched.
func TransformImage(img image.Image, s *Strip, filter imaging.ResampleFilter) *image.NRGBA {
	r := s.Bounds()
	if r.Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}

	out := imaging.Fill(img, r.Dx(), r.Dy(), imaging.Center, filter)
	if !s.sheared() {
		return out
	}

	var clear color.NRGBA
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			if !s.Contains(r.Min.X+x, r.Min.Y+y) {
				out.SetNRGBA(x, y, clear)
			}
		}
	}
	return out
}
