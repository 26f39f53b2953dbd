// Package folder recovers the location and date recorded in the name
// of the folder a media file was filed under.
//
// Folder names look like one of
//
//	25 March 2016
//	Amsterdam - Oud-West - Jacob van Lennepstraat, 18 February 2019
//	Beirut, Beirut - Younas Gebayli Street, 13 October 2017
//
// Addresses may contain commas but the trailing date never does, so
// the text after the last comma is the date and everything before it
// is the location.
package folder

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Metadata is what the folder name says about the files in it.
// Fields with Has* false are unknown, not empty.
type Metadata struct {
	Location    string
	HasLocation bool
	Date        string // raw date text, unparsed
	HasDate     bool
}

// Name returns the folder segment of rel which carries metadata, or ""
// if rel is a file in the root.
//
// rel is a path relative to the ingestion root.  Only the first
// directory below the root is meaningful; deeper nesting is ignored.
func Name(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.Trim(rel, "/")
	rel = strings.TrimPrefix(rel, "./")
	segments := strings.Split(rel, "/")
	if len(segments) < 2 {
		return ""
	}
	return segments[0]
}

// ParseName splits a folder name into location and date
//
// The result is NFC normalised since macOS reports names decomposed.
func ParseName(name string) (m Metadata) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return m
	}
	breakChar := strings.LastIndex(name, ",")
	date := name
	if breakChar >= 0 {
		date = name[breakChar+1:]
		m.Location = strings.TrimSpace(name[:breakChar])
		m.HasLocation = m.Location != ""
	}
	m.Date = strings.TrimSpace(date)
	m.HasDate = m.Date != ""
	return m
}

// Parse returns the folder metadata for the file at rel, a path
// relative to the ingestion root.  Files in the root have no metadata.
func Parse(rel string) Metadata {
	return ParseName(Name(rel))
}
