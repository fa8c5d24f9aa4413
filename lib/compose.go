package makewallpaperlib

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
)

// Options for a single composition run.
type Options struct {
	OutputPath string
	Canvas     CanvasSpec
	// Candidate source paths, order-significant, duplicates allowed.
	Paths []string
	// Destination for per-input skip warnings. Defaults to os.Stderr.
	Warnings io.Writer
	// nil means DefaultConfig().
	Config *Config
}

// Compose runs the whole pipeline: decode every candidate, warn about and
// skip the failures, lay out one strip per valid image, paint them onto the
// canvas and encode it to OutputPath.
//
// Individual decode failures never abort the run; with zero valid images the
// output is the solid background canvas. Only an encode/write failure is
// returned as an error.
func Compose(o Options) error {
	c := o.Config
	if c == nil {
		c = DefaultConfig()
	}
	warnings := o.Warnings
	if warnings == nil {
		warnings = os.Stderr
	}

	outcomes := LoadImages(o.Paths, c.DecodeJobs)

	images := make([]image.Image, 0, len(outcomes))
	for _, out := range outcomes {
		if out.Failure != nil {
			fmt.Fprintf(warnings, "Warning: %s\n", out.Failure)
			continue
		}
		images = append(images, out.Image)
	}

	canvas := NewCanvas(o.Canvas, c.background)
	if len(images) == 0 {
		log.Printf("No valid images, writing the fallback canvas to [%s]\n",
			o.OutputPath)
	} else {
		strips := LayoutStrips(o.Canvas, len(images))
		CombineImages(canvas, strips, images, c.filter)
	}

	return EncodeImage(canvas, o.OutputPath, c.format)
}
