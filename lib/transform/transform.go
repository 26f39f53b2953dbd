// Package transform prepares media bytes for upload, bounding stills
// by resizing and optionally bounding videos by transcoding.
package transform

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/photocat/photocat/fs"
)

// Resizer shrinks a still image to fit within max x max
type Resizer interface {
	Resize(path string, max int) ([]byte, error)
}

// Transcoder re-encodes a video to fit within max x max
type Transcoder interface {
	Transcode(ctx context.Context, path string, max int) ([]byte, error)
}

// Media transforms a source file into the bytes to publish
type Media struct {
	Resizer    Resizer
	Transcoder Transcoder

	MaxImageDimension int
	MaxVideoDimension int
	Transcode         bool // transcode videos before upload
}

// New makes a Media transform using imaging and ffmpeg configured from ctx
func New(ctx context.Context, transcode bool) *Media {
	ci := fs.GetConfig(ctx)
	return &Media{
		Resizer:           Imaging{},
		Transcoder:        FFmpeg{},
		MaxImageDimension: ci.MaxImageDimension,
		MaxVideoDimension: ci.MaxVideoDimension,
		Transcode:         transcode,
	}
}

// Transform returns the bytes to publish for the file at path
func (m *Media) Transform(ctx context.Context, path string, kind fs.Kind) ([]byte, error) {
	switch kind {
	case fs.KindImage:
		return m.Resizer.Resize(path, m.MaxImageDimension)
	case fs.KindVideo:
		if m.Transcode {
			return m.Transcoder.Transcode(ctx, path, m.MaxVideoDimension)
		}
	case fs.KindAnimation:
	default:
		return nil, fmt.Errorf("can't transform %q: unsupported kind %v", path, kind)
	}
	// motion kinds are bounded by the store on upload
	return os.ReadFile(path)
}

// Imaging resizes with github.com/disintegration/imaging
type Imaging struct{}

// Resize fits the image inside max x max preserving aspect ratio. It
// never upscales.
func (Imaging) Resize(path string, max int) ([]byte, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	if max > 0 {
		img = imaging.Fit(img, max, max, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(95)); err != nil {
		return nil, fmt.Errorf("resize: encode: %w", err)
	}
	return buf.Bytes(), nil
}
