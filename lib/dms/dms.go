// Package dms converts sexagesimal degrees/minutes/seconds
// coordinates, as printed by EXIF readers, into decimal degrees.
package dms

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedCoordinateError is returned when a coordinate string can't
// be parsed.  Callers should treat the coordinate as absent.
type MalformedCoordinateError struct {
	Input  string
	Reason string
}

func (e *MalformedCoordinateError) Error() string {
	return fmt.Sprintf("malformed coordinate %q: %s", e.Input, e.Reason)
}

// tokens stripped before splitting into fields
var stripper = strings.NewReplacer("deg", " ", "'", " ", `"`, " ")

// ToDecimal converts degrees, minutes and seconds into signed decimal
// degrees.  The result is negative for the S and W hemispheres.
func ToDecimal(degrees, minutes, seconds float64, hemisphere string) float64 {
	dd := degrees + minutes/60 + seconds/3600
	switch strings.ToUpper(hemisphere) {
	case "S", "W":
		dd = -dd
	}
	return dd
}

// Parse converts a string like
//
//	52 deg 18' 41.04" N
//
// into decimal degrees.
func Parse(input string) (float64, error) {
	fields := strings.Fields(stripper.Replace(input))
	if len(fields) < 4 {
		return 0, &MalformedCoordinateError{Input: input, Reason: fmt.Sprintf("need 4 fields, found %d", len(fields))}
	}
	var parts [3]float64
	for i := range parts {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, &MalformedCoordinateError{Input: input, Reason: fmt.Sprintf("bad number %q", fields[i])}
		}
		parts[i] = v
	}
	hemisphere := strings.ToUpper(fields[3])
	switch hemisphere {
	case "N", "S", "E", "W":
	default:
		return 0, &MalformedCoordinateError{Input: input, Reason: fmt.Sprintf("bad hemisphere %q", fields[3])}
	}
	return ToDecimal(parts[0], parts[1], parts[2], hemisphere), nil
}

// ParsePosition parses a "<lat>, <lng>" position string as produced by
// the EXIF reader into a latitude and longitude.
func ParsePosition(position string) (lat, lng float64, err error) {
	latText, lngText, found := strings.Cut(position, ",")
	if !found {
		return 0, 0, &MalformedCoordinateError{Input: position, Reason: "no comma between latitude and longitude"}
	}
	lat, err = Parse(latText)
	if err != nil {
		return 0, 0, err
	}
	lng, err = Parse(lngText)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}
