package makewallpaperlib

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sync"

	// Decoders are selected by sniffing file content, never by extension.
	// GIFs decode as their first frame.
	_ "github.com/jbuchbinder/gopnm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeFailure is the recoverable reason a candidate path was skipped.
// These are expected outcomes, not errors that abort the run.
type DecodeFailure struct {
	Path   string
	Reason string
}

func (f *DecodeFailure) Error() string {
	return fmt.Sprintf("Skipping [%s]: %s", f.Path, f.Reason)
}

// Outcome is the result of one decode attempt. Exactly one of Image and
// Failure is set.
type Outcome struct {
	Path    string
	Image   image.Image
	Failure *DecodeFailure
}

// LoadImages decodes every candidate path with up to jobs concurrent
// workers. The returned outcomes are always in input order and identical
// regardless of the worker count.
func LoadImages(paths []string, jobs int) []Outcome {
	outcomes := make([]Outcome, len(paths))

	if jobs > len(paths) {
		jobs = len(paths)
	}
	if jobs <= 1 {
		for i, p := range paths {
			outcomes[i] = loadImage(p)
		}
		return outcomes
	}

	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p string) {
			defer wg.Done()
			outcomes[i] = loadImage(p)
			<-sem
		}(i, p)
	}
	wg.Wait()

	return outcomes
}

func loadImage(path string) Outcome {
	log.Printf("Loading [%s]\n", path)

	in, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return failure(path, "file does not exist")
		case os.IsPermission(err):
			return failure(path, "permission denied")
		default:
			return failure(path, err.Error())
		}
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return failure(path, err.Error())
	}
	if !fi.Mode().IsRegular() {
		return failure(path, "not a regular file")
	}
	if fi.Size() == 0 {
		return failure(path, "file is empty")
	}

	img, _, err := image.Decode(in)
	if err != nil {
		return failure(path, fmt.Sprintf("cannot decode: %s", err))
	}

	return Outcome{Path: path, Image: img}
}

func failure(path, reason string) Outcome {
	return Outcome{
		Path:    path,
		Failure: &DecodeFailure{Path: path, Reason: reason},
	}
}
