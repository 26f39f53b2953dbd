package transform

import (
	"context"
	"fmt"
	"os"

	"github.com/photocat/photocat/fs"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FFmpeg transcodes to H.264 mp4 with ffmpeg-go. The ffmpeg binary
// must be on the PATH.
type FFmpeg struct{}

// Transcode converts the video at path via a temporary file which is
// always removed.
func (FFmpeg) Transcode(ctx context.Context, path string, max int) (out []byte, err error) {
	tmp, err := os.CreateTemp("", "photocat-*.mp4")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	defer func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			fs.Debugf(tmpName, "failed to remove temporary file: %v", rmErr)
		}
	}()

	fs.Debugf(path, "transcoding video")
	err = ffmpeg.Input(path).
		Output(tmpName, outputArgs(max)).
		OverWriteOutput().
		Silent(fs.GetConfig(ctx).LogLevel < fs.LogLevelDebug).
		Run()
	if err != nil {
		return nil, fmt.Errorf("transcode: %w", err)
	}
	return os.ReadFile(tmpName)
}

func outputArgs(max int) ffmpeg.KwArgs {
	args := ffmpeg.KwArgs{
		"c:v": "libx264",
		"b:v": "5000k",
		"b:a": "128k",
	}
	if max > 0 {
		args["vf"] = fmt.Sprintf("scale=w='min(%d,iw)':h='min(%d,ih)':force_original_aspect_ratio=decrease:force_divisible_by=2", max, max)
	}
	return args
}
