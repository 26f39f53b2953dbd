// Package ingest publishes a tree of local media files to the asset
// store, enriching each with the metadata recovered from its folder
// name, its EXIF position and its pixels.
package ingest

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/fs/folder"
	"github.com/photocat/photocat/lib/dms"
	"github.com/photocat/photocat/lib/dominant"
	"github.com/photocat/photocat/lib/exifgps"
	"github.com/photocat/photocat/lib/geocode"
	"github.com/photocat/photocat/lib/identity"
	"github.com/photocat/photocat/lib/stage"
)

// State of a file in the pipeline
type State byte

// States in the order a file passes through them
const (
	Discovered State = iota
	MetadataExtracted
	MediaTransformed
	Published
	Counted
	Failed
)

var stateToString = []string{
	Discovered:        "discovered",
	MetadataExtracted: "metadata extracted",
	MediaTransformed:  "media transformed",
	Published:         "published",
	Counted:           "counted",
	Failed:            "failed",
}

func (s State) String() string {
	if int(s) >= len(stateToString) {
		return "unknown"
	}
	return stateToString[s]
}

// Transformer produces the bytes to publish for a file
type Transformer interface {
	Transform(ctx context.Context, path string, kind fs.Kind) ([]byte, error)
}

// Geocoder resolves coordinates as an optional step
type Geocoder interface {
	Stage(ctx context.Context, c *geocode.Coordinate) stage.Result[geocode.Place]
}

// Ingester runs the pipeline. Store and Media must be set; the
// enrichment collaborators default to the real implementations.
type Ingester struct {
	Store    fs.Uploader
	Media    Transformer
	Exif     exifgps.Reader
	Geocoder Geocoder // nil disables geocoding
	Color    func(path string, kind fs.Kind) stage.Result[string]

	// Folder is the destination folder in the store
	Folder string
}

// metadata is what is known about a file before it is transformed
type metadata struct {
	folder  folder.Metadata
	coord   *geocode.Coordinate
	place   geocode.Place
	created time.Time
}

// Run discovers the media under root and publishes each file in turn.
// Failures are recorded in the error log at errLogPath and don't stop
// the batch.
//
// The returned error is only non nil if the run couldn't start.
func (in *Ingester) Run(ctx context.Context, root, errLogPath string) (run *Run, err error) {
	files, err := Discover(ctx, root)
	if err != nil {
		return nil, err
	}
	run = NewRun(errLogPath)
	defer func() {
		if closeErr := run.Close(); closeErr != nil {
			fs.Errorf(errLogPath, "failed to close error log: %v", closeErr)
		}
	}()
	run.Total = len(files)
	fs.Logf(nil, "%d media files found in %s (and its subfolders)", len(files), root)
	for i, f := range files {
		state, failure := in.Process(ctx, f)
		if state == Failed {
			fs.Errorf(f, "failed to %s: %v", failure.Stage, failure.Err)
			run.Fail(failure)
			continue
		}
		run.Succeeded() // Counted
		fs.Logf(f, "uploaded (%d/%d)", i+1, len(files))
	}
	return run, nil
}

// Process takes one file through the pipeline returning the final
// state, which is Published on success or Failed with the failure.
// Counting a published file is left to the caller.
func (in *Ingester) Process(ctx context.Context, f File) (State, Failure) {
	md := in.extract(ctx, f) // MetadataExtracted

	color := in.color(f)
	data, err := in.Media.Transform(ctx, f.Path, f.Kind)
	if err != nil {
		return Failed, Failure{File: f.Rel, Stage: StageTransform, Err: err}
	}

	req := &fs.UploadRequest{
		Data:     data,
		Identity: identity.OfRel(f.Rel),
		Folder:   in.Folder,
		Context:  buildContext(md, color),
		Kind:     f.Kind,
	}
	if f.Kind.IsMotion() {
		req.MaxDimension = fs.GetConfig(ctx).MaxVideoDimension
	}
	res, err := in.Store.Upload(ctx, req)
	if err != nil {
		return Failed, Failure{File: f.Rel, Stage: StagePublish, Err: err}
	}
	fs.Debugf(f, "%v as %q (%dx%d %s)", Published, res.Identity, res.Width, res.Height, res.Format)
	return Published, Failure{}
}

// extract gathers the metadata of f. Nothing here can fail the file.
func (in *Ingester) extract(ctx context.Context, f File) metadata {
	md := metadata{
		folder:  folder.Parse(f.Rel),
		created: f.Created,
	}
	md.coord = in.position(f)
	res := in.geocoder().Stage(ctx, md.coord)
	if res.State == stage.Failed {
		fs.Infof(f, "couldn't geocode position: %v", res.Err)
	}
	md.place = res.ValueOr(geocode.Place{})
	return md
}

func (in *Ingester) geocoder() Geocoder {
	if in.Geocoder == nil {
		return (*geocode.Resolver)(nil)
	}
	return in.Geocoder
}

// position reads the coordinate of f or returns nil
func (in *Ingester) position(f File) *geocode.Coordinate {
	reader := in.Exif
	if reader == nil {
		reader = exifgps.FileReader{}
	}
	pos, err := reader.Position(f.Path)
	if err != nil {
		if errors.Is(err, exifgps.ErrNoPosition) || f.Kind.IsMotion() {
			fs.Debugf(f, "no GPS data: %v", err)
		} else {
			fs.Infof(f, "couldn't get GPS data: %v", err)
		}
		return nil
	}
	lat, lng, err := dms.ParsePosition(pos)
	if err != nil {
		fs.Infof(f, "couldn't parse GPS data: %v", err)
		return nil
	}
	return &geocode.Coordinate{Lat: lat, Lng: lng}
}

// color returns the dominant color of f, or the fallback
func (in *Ingester) color(f File) string {
	extract := in.Color
	if extract == nil {
		extract = dominant.Stage
	}
	res := extract(f.Path, f.Kind)
	if res.State == stage.Failed {
		fs.Infof(f, "using fallback color: %v", res.Err)
	}
	return res.ValueOr(dominant.Fallback)
}

// buildContext assembles the context bag. Every value is a string and
// absent values are empty.
func buildContext(md metadata, color string) map[string]string {
	bag := map[string]string{
		fs.ContextLocation:      md.folder.Location,
		fs.ContextDate:          md.folder.Date,
		fs.ContextCreated:       "",
		fs.ContextLat:           "",
		fs.ContextLng:           "",
		fs.ContextNeighbourhood: md.place.Neighbourhood,
		fs.ContextCity:          md.place.City,
		fs.ContextCountry:       md.place.Country,
		fs.ContextStreetName:    md.place.StreetName,
		fs.ContextDominantColor: color,
	}
	if !md.created.IsZero() {
		bag[fs.ContextCreated] = md.created.UTC().Format(time.RFC3339Nano)
	}
	if md.coord != nil {
		bag[fs.ContextLat] = strconv.FormatFloat(md.coord.Lat, 'f', -1, 64)
		bag[fs.ContextLng] = strconv.FormatFloat(md.coord.Lng, 'f', -1, 64)
	}
	return bag
}
