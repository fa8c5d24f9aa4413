package makewallpaperlib

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// EncodeImage serializes the finished canvas to outFile. The encoding is
// chosen from the file extension; an unrecognized or missing extension falls
// back to the default format, still written at the exact requested path.
//
// The canvas is encoded to a work file in the destination directory and
// renamed into place, so a failed write never leaves a truncated file at
// outFile.
func EncodeImage(canvas image.Image, outFile string, defaultFormat imaging.Format) error {
	format, err := imaging.FormatFromFilename(outFile)
	if err != nil {
		format = defaultFormat
	}

	if err = createMissingDirectories(outFile); err != nil {
		return fmt.Errorf(
			"Error creating directories for [%s]: %s", outFile, err)
	}

	f, err := os.CreateTemp(filepath.Dir(outFile), filepath.Base(outFile)+"-wip-*")
	if err != nil {
		return fmt.Errorf("Error creating output file for [%s]: %s", outFile, err)
	}
	wipFile := f.Name()

	err = imaging.Encode(f, canvas, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(wipFile)
		return fmt.Errorf("Error encoding [%s]: %s", outFile, err)
	}

	// Renaming should be atomic enough for our purposes
	if err = os.Rename(wipFile, outFile); err != nil {
		_ = os.Remove(wipFile)
		return fmt.Errorf("Error writing [%s]: %s", outFile, err)
	}
	return nil
}

func createMissingDirectories(outFile string) error {
	return os.MkdirAll(filepath.Dir(outFile), 0755)
}
