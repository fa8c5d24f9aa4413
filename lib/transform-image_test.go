package makewallpaperlib

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestTransformCoversStripBounds(t *testing.T) {
	tests := []struct {
		srcW, srcH int
	}{
		{200, 50},
		{50, 200},
		{100, 100},
		{1, 1},
	}

	strips := LayoutStrips(CanvasSpec{Width: 100, Height: 100}, 1)
	for _, tt := range tests {
		src := solidNRGBA(tt.srcW, tt.srcH, color.NRGBA{R: 0xff, A: 0xff})
		out := TransformImage(src, &strips[0], imaging.Lanczos)
		if b := out.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
			t.Errorf("source %dx%d: output bounds %v, want 100x100",
				tt.srcW, tt.srcH, b)
		}
	}
}

func TestTransformUpscalesTinySource(t *testing.T) {
	src := solidNRGBA(1, 1, color.NRGBA{R: 0xff, A: 0xff})
	strips := LayoutStrips(CanvasSpec{Width: 50, Height: 80}, 1)

	out := TransformImage(src, &strips[0], imaging.Lanczos)
	for _, pt := range [][2]int{{0, 0}, {25, 40}, {49, 79}} {
		c := out.NRGBAAt(pt[0], pt[1])
		if c.R != 0xff || c.A != 0xff {
			t.Fatalf("pixel %v = %+v, want solid red", pt, c)
		}
	}
}

// Cover-resizing a wide source into a narrow strip crops the overflow at the
// center rather than squashing the image.
func TestTransformPreservesAspect(t *testing.T) {
	src := solidNRGBA(100, 100, color.NRGBA{R: 0xff, A: 0xff})
	for y := 0; y < 100; y++ {
		for x := 50; x < 100; x++ {
			src.SetNRGBA(x, y, color.NRGBA{B: 0xff, A: 0xff})
		}
	}

	strips := LayoutStrips(CanvasSpec{Width: 50, Height: 100}, 1)
	out := TransformImage(src, &strips[0], imaging.NearestNeighbor)

	left := out.NRGBAAt(5, 50)
	right := out.NRGBAAt(44, 50)
	if left.R != 0xff || left.B != 0 {
		t.Errorf("left side = %+v, want red", left)
	}
	if right.B != 0xff || right.R != 0 {
		t.Errorf("right side = %+v, want blue", right)
	}
}

func TestTransformMasksOutsidePolygon(t *testing.T) {
	cs := CanvasSpec{Width: 100, Height: 100, Angle: 45}
	strips := LayoutStrips(cs, 2)
	src := solidNRGBA(10, 10, color.NRGBA{G: 0xff, A: 0xff})

	for i := range strips {
		s := &strips[i]
		out := TransformImage(src, s, imaging.Lanczos)
		r := s.Bounds()
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				c := out.NRGBAAt(x, y)
				inside := s.Contains(r.Min.X+x, r.Min.Y+y)
				if inside && c.A != 0xff {
					t.Fatalf("strip %d: inside pixel (%d,%d) not opaque: %+v", i, x, y, c)
				}
				if !inside && c.A != 0 {
					t.Fatalf("strip %d: outside pixel (%d,%d) not transparent: %+v", i, x, y, c)
				}
			}
		}
	}
}
