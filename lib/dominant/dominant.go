// Package dominant computes the representative color of a still image
package dominant

import (
	"fmt"
	"image"

	"github.com/cenkalti/dominantcolor"
	"github.com/disintegration/imaging"
	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/lib/stage"
)

// Fallback is used for motion kinds and when extraction fails
const Fallback = "#fff"

// ColorExtractionError is returned when the image can't be decoded
type ColorExtractionError struct {
	Path string
	Err  error
}

func (e *ColorExtractionError) Error() string {
	return fmt.Sprintf("couldn't extract dominant color from %q: %v", e.Path, e.Err)
}

func (e *ColorExtractionError) Unwrap() error {
	return e.Err
}

// Hex formats the dominant color of img as #rrggbb
func Hex(img image.Image) string {
	c := dominantcolor.Find(img)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Extract returns the dominant color of the file at path.
//
// Motion kinds are never decoded and always give Fallback.
func Extract(path string, kind fs.Kind) (string, error) {
	if kind.IsMotion() {
		return Fallback, nil
	}
	img, err := imaging.Open(path)
	if err != nil {
		return "", &ColorExtractionError{Path: path, Err: err}
	}
	return Hex(img), nil
}

// Stage runs Extract as an enrichment step. Motion kinds are Skipped.
func Stage(path string, kind fs.Kind) stage.Result[string] {
	if kind.IsMotion() {
		return stage.Skip[string]()
	}
	return stage.From(Extract(path, kind))
}
