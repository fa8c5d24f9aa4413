package makewallpaperlib

import (
	"fmt"
	"image/color"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Config holds the optional settings read from a TOML file. Every field has
// a usable default; running without any config file is the normal case.
type Config struct {
	// Encode format used when the output path's extension is missing or not
	// recognized. One of png, jpg, gif, tif, bmp.
	DefaultFormat string
	// Colour used for the fallback canvas and for flattening transparency,
	// in hex notation. Defaults to black.
	Background string
	// Resampling filter for cover-resizing: lanczos, linear, or nearest.
	Filter string
	// Number of concurrent decode workers. 1 disables concurrent decoding,
	// which changes nothing about the output.
	DecodeJobs int
	// Progress logging destination. Empty disables progress logging so the
	// only stderr output is the per-input warnings.
	LogFile string

	format     imaging.Format
	background color.NRGBA
	filter     imaging.ResampleFilter
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	c := &Config{
		DefaultFormat: "png",
		Background:    "#000000",
		Filter:        "lanczos",
		DecodeJobs:    runtime.NumCPU(),
	}
	// The defaults always validate.
	_ = c.validate()
	return c
}

// LoadConfig reads the TOML config at path over the defaults. An empty path
// means defaults only.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("Error reading config [%s]: %s", path, err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	f, err := imaging.FormatFromExtension(c.DefaultFormat)
	if err != nil {
		return fmt.Errorf("Unsupported DefaultFormat [%s]", c.DefaultFormat)
	}
	c.format = f

	switch strings.ToLower(c.Filter) {
	case "lanczos":
		c.filter = imaging.Lanczos
	case "linear":
		c.filter = imaging.Linear
	case "nearest":
		c.filter = imaging.NearestNeighbor
	default:
		return fmt.Errorf("Unsupported Filter [%s]", c.Filter)
	}

	hex := c.Background
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("Invalid Background colour [%s]", c.Background)
	}
	r, g, b := col.RGB255()
	c.background = color.NRGBA{R: r, G: g, B: b, A: 0xff}

	if c.DecodeJobs < 1 {
		return fmt.Errorf("DecodeJobs must be greater than 0")
	}

	return nil
}
