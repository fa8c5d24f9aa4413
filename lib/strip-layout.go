package makewallpaperlib

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
)

// CanvasSpec describes the output canvas: dimensions in pixels and the tilt
// of the strip boundaries in degrees from vertical. An angle of 0 produces
// straight vertical strips.
type CanvasSpec struct {
	Width  int
	Height int
	Angle  float64
}

// ParseCanvasSpec parses a "<width>x<height>" resolution string and a
// decimal angle in degrees. Both dimensions must be positive integers.
func ParseCanvasSpec(resolution, angle string) (CanvasSpec, error) {
	ws, hs, ok := strings.Cut(resolution, "x")
	if !ok {
		return CanvasSpec{},
			fmt.Errorf("Resolution [%s] is not in the form <width>x<height>", resolution)
	}

	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return CanvasSpec{}, fmt.Errorf("Invalid width [%s]", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return CanvasSpec{}, fmt.Errorf("Invalid height [%s]", hs)
	}

	a, err := strconv.ParseFloat(angle, 64)
	if err != nil {
		return CanvasSpec{}, fmt.Errorf("Invalid angle [%s]", angle)
	}

	return CanvasSpec{Width: w, Height: h, Angle: a}, nil
}

func (cs CanvasSpec) rect() image.Rectangle {
	return image.Rect(0, 0, cs.Width, cs.Height)
}

// Strip is one region of the canvas assigned to a single source image. For a
// zero angle it is an axis-aligned full-height rectangle, otherwise a
// parallelogram clipped back to the canvas. Strips partition the canvas
// exactly: every pixel belongs to one strip.
type Strip struct {
	Index int

	// Baseline interval [left, right) at y=0, before shearing.
	left, right float64
	tan         float64
	canvas      image.Rectangle
	// The outermost strips absorb the overdraw margin beyond the canvas
	// edges so no pixel is left unowned at any angle.
	openLeft, openRight bool
}

// LayoutStrips divides the canvas into n strips of baseline width
// Width/n, with the last strip absorbing the integer remainder so the widths
// sum to exactly Width. n must be at least 1; for n == 1 the strip is the
// whole canvas and no shear is applied.
func LayoutStrips(cs CanvasSpec, n int) []Strip {
	if n < 1 {
		return nil
	}

	tan := math.Tan(cs.Angle * math.Pi / 180)
	if n == 1 {
		tan = 0
	}

	base := cs.Width / n
	strips := make([]Strip, n)
	for i := range strips {
		strips[i] = Strip{
			Index:     i,
			left:      float64(i * base),
			right:     float64((i + 1) * base),
			tan:       tan,
			canvas:    cs.rect(),
			openLeft:  i == 0,
			openRight: i == n-1,
		}
	}
	strips[n-1].right = float64(cs.Width)

	return strips
}

func (s *Strip) sheared() bool {
	return s.tan != 0
}

// Contains reports whether the canvas pixel (x, y) falls inside the strip's
// polygon. The boundary between strip i and i+1 belongs to strip i+1.
func (s *Strip) Contains(x, y int) bool {
	if !(image.Point{x, y}).In(s.canvas) {
		return false
	}
	skew := float64(x) - float64(y)*s.tan
	return (s.openLeft || skew >= s.left) && (s.openRight || skew < s.right)
}

// Bounds is the strip polygon's bounding box clipped to the canvas.
func (s *Strip) Bounds() image.Rectangle {
	shear := float64(s.canvas.Max.Y-1) * s.tan
	minX := int(math.Floor(s.left + math.Min(0, shear)))
	maxX := int(math.Ceil(s.right + math.Max(0, shear)))

	r := image.Rect(minX, s.canvas.Min.Y, maxX, s.canvas.Max.Y)
	if s.openLeft {
		r.Min.X = s.canvas.Min.X
	}
	if s.openRight {
		r.Max.X = s.canvas.Max.X
	}
	return r.Intersect(s.canvas)
}
