// Package upload provides the upload command.
package upload

import (
	"context"

	"github.com/photocat/photocat/backend/cloudinary"
	"github.com/photocat/photocat/backend/memory"
	"github.com/photocat/photocat/cmd"
	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/fs/config"
	"github.com/photocat/photocat/fs/ingest"
	"github.com/photocat/photocat/lib/exifgps"
	"github.com/photocat/photocat/lib/geocode"
	"github.com/photocat/photocat/lib/transform"
	"github.com/spf13/cobra"
)

// Options for the upload command
type Options struct {
	Folder    string
	ErrorLog  string
	Transcode bool
}

// Opt is the options set on the command line
var Opt = Options{
	ErrorLog: "upload-log.txt",
}

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	cmdFlags.StringVarP(&Opt.Folder, "folder", "", Opt.Folder, "Cloudinary folder to upload into")
	cmdFlags.StringVarP(&Opt.ErrorLog, "error-log", "", Opt.ErrorLog, "Append failed files to this log")
	cmdFlags.BoolVarP(&Opt.Transcode, "transcode", "", Opt.Transcode, "Transcode videos to H.264 with ffmpeg before upload")
}

var commandDefinition = &cobra.Command{
	Use:   "upload <root>",
	Short: `Upload the photos and videos under root.`,
	Long: `Walks root and uploads every png, jpg, jpeg, gif, mov and mp4 file
to Cloudinary, replacing any earlier upload of the same path.

The first directory below root is read as "<address>, <date>" and
stored with each file it contains, for example

    root/Amsterdam - Oud-West, 18 February 2019/DSCF0310.jpg

gets location "Amsterdam - Oud-West" and date "18 February 2019".
Files directly in root get no location or date.

GPS positions are read from the EXIF data and, if google_api is set,
resolved into the neighbourhood, street, city and country.

Images are resized to fit within --max-image-dimension. A file which
fails to transform or upload is appended to --error-log and the run
carries on with the next one. The exit code is 9 if any file failed.
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(1, 1, command, args)
		root := args[0]
		cmd.Run(command, func(ctx context.Context) error {
			return Upload(ctx, root, Opt)
		})
	},
}

// newStore returns the store to upload to
func newStore(ctx context.Context) (fs.Uploader, error) {
	ci := fs.GetConfig(ctx)
	if ci.DryRun {
		return memory.New(), nil
	}
	if err := config.RequireStore(ci); err != nil {
		return nil, err
	}
	return cloudinary.New(ctx)
}

// Upload publishes the media under root
func Upload(ctx context.Context, root string, opt Options) error {
	store, err := newStore(ctx)
	if err != nil {
		return err
	}
	in := &ingest.Ingester{
		Store:  store,
		Media:  transform.New(ctx, opt.Transcode),
		Exif:   exifgps.FileReader{},
		Folder: opt.Folder,
	}
	resolver, err := geocode.NewFromConfig(ctx)
	if err != nil {
		return err
	}
	if resolver != nil {
		in.Geocoder = resolver
	} else {
		fs.Infof(nil, "No %s key set, skipping geocoding", config.KeyGeocodeAPI)
	}
	run, err := in.Run(ctx, root, opt.ErrorLog)
	if err != nil {
		return err
	}
	run.Summary()
	return run.Err()
}
