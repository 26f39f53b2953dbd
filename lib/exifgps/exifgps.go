// Package exifgps reads the GPS position embedded in a photo's EXIF
// block and prints it in the sexagesimal form understood by lib/dms.
package exifgps

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ErrNoPosition is returned when the file carries no usable GPS tags
var ErrNoPosition = errors.New("no GPS position in EXIF data")

// Reader produces the raw position string for a file
type Reader interface {
	Position(path string) (string, error)
}

// FileReader reads positions from files on disk
type FileReader struct{}

// Position opens path and returns its position string
func (FileReader) Position(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Decode reads the EXIF block from r and returns a position like
//
//	52 deg 18' 41.04" N, 4 deg 48' 57.60" E
func Decode(r io.Reader) (string, error) {
	x, err := exif.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decoding exif: %w", err)
	}
	lat, err := coordinate(x, exif.GPSLatitude, exif.GPSLatitudeRef)
	if err != nil {
		return "", err
	}
	lng, err := coordinate(x, exif.GPSLongitude, exif.GPSLongitudeRef)
	if err != nil {
		return "", err
	}
	return lat + ", " + lng, nil
}

func coordinate(x *exif.Exif, field, refField exif.FieldName) (string, error) {
	tag, err := x.Get(field)
	if err != nil {
		return "", ErrNoPosition
	}
	ref, err := x.Get(refField)
	if err != nil {
		return "", ErrNoPosition
	}
	var parts [3]float64
	for i := range parts {
		parts[i], err = rational(tag, i)
		if err != nil {
			return "", fmt.Errorf("%s: %w", field, err)
		}
	}
	hemisphere, err := ref.StringVal()
	if err != nil {
		return "", fmt.Errorf("%s: %w", refField, err)
	}
	return Format(parts[0], parts[1], parts[2], strings.TrimRight(hemisphere, "\x00 ")), nil
}

func rational(tag *tiff.Tag, i int) (float64, error) {
	num, den, err := tag.Rat2(i)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, nil
	}
	return float64(num) / float64(den), nil
}

// Format prints one coordinate the way exiftool does.
//
// Receivers may store fractional degrees or minutes (52/1 1868/100 0/1)
// so the parts are carried down into whole degrees and minutes first.
func Format(degrees, minutes, seconds float64, hemisphere string) string {
	dd := degrees + minutes/60 + seconds/3600
	d := math.Floor(dd)
	m := math.Floor((dd - d) * 60)
	s := (dd - d - m/60) * 3600
	if s < 0 || math.Round(s*100) >= 6000 {
		s = 0
		m++
	}
	if m >= 60 {
		m -= 60
		d++
	}
	return fmt.Sprintf(`%d deg %d' %.2f" %s`, int(d), int(m), s, hemisphere)
}
