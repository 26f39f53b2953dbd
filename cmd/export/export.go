// Package export provides the export command.
package export

import (
	"context"

	"github.com/photocat/photocat/backend/cloudinary"
	"github.com/photocat/photocat/cmd"
	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/fs/catalog"
	"github.com/photocat/photocat/fs/config"
	"github.com/spf13/cobra"
)

// Options for the export command
type Options struct {
	Folder       string
	Out          string
	AllowPartial bool
}

// Opt is the options set on the command line
var Opt = Options{
	Out: "./output.json",
}

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	cmdFlags.StringVarP(&Opt.Folder, "folder", "", Opt.Folder, "Cloudinary folder to export")
	cmdFlags.StringVarP(&Opt.Out, "out", "o", Opt.Out, "Write the catalog to this file")
	cmdFlags.BoolVarP(&Opt.AllowPartial, "allow-partial", "", Opt.AllowPartial, "Write the catalog even if listing some resource types failed")
}

var commandDefinition = &cobra.Command{
	Use:   "export",
	Short: `Export the published assets as a JSON catalog.`,
	Long: `Lists every image and video in --folder and writes a flat JSON array
with one record per asset:

    {"id":"...","url":"https://res.cloudinary.com/<cloud>/image/upload/h_{{HEIGHT}}/v1/<id>.jpg",
     "created":1550483723000,"lat":"52.3114","lng":"4.816",
     "location":"Amsterdam - Oud-West","date":1550448000000,
     "neighbourhood":"","city":"Amsterdam","country":"Netherlands",
     "streetName":"","dominantColor":"#a4b1c2","aspectRatio":1.778}

created and date are milliseconds since the epoch, or "" if unknown.

If listing images or videos fails no file is written unless
--allow-partial is set.
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 0, command, args)
		cmd.CheckFlags(command, "out")
		cmd.Run(command, func(ctx context.Context) error {
			ci := fs.GetConfig(ctx)
			if err := config.RequireStore(ci); err != nil {
				return err
			}
			store, err := cloudinary.New(ctx)
			if err != nil {
				return err
			}
			return Export(ctx, store, Opt)
		})
	},
}

// Export writes the catalog of the assets listed from lister
func Export(ctx context.Context, lister fs.Lister, opt Options) error {
	e := &catalog.Exporter{Lister: lister, Folder: opt.Folder}
	records, err := e.Export(ctx)
	if err != nil {
		if !opt.AllowPartial {
			return cmd.ErrorCatalogIncomplete(err)
		}
		fs.Errorf(nil, "Writing partial catalog: %v", err)
	}
	if err := catalog.WriteFile(opt.Out, records); err != nil {
		return err
	}
	fs.Logf(nil, "Generated catalog of %d items: %s", len(records), opt.Out)
	return nil
}
