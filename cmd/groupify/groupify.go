// Package groupify provides the groupify command.
package groupify

import (
	"context"

	"github.com/photocat/photocat/cmd"
	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/fs/catalog"
	"github.com/spf13/cobra"
)

// Options for the groupify command
type Options struct {
	In  string
	Out string
	By  catalog.Field
}

// Opt is the options set on the command line
var Opt = Options{
	By: catalog.ByDate,
}

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	cmdFlags.StringVarP(&Opt.In, "in", "", Opt.In, "Catalog file written by export")
	cmdFlags.StringVarP(&Opt.Out, "out", "", Opt.Out, "Write the grouped catalog to this file")
	cmdFlags.VarP(&Opt.By, "by", "", "Date field to sort and group by: date|created")
}

var commandDefinition = &cobra.Command{
	Use:   "groupify --in input.json --out output.json",
	Short: `Sort a catalog by date and group it by day.`,
	Long: `Reads a catalog written by export, sorts it oldest first by --by and
writes it as an array of days

    [{"date":"2019-03-01","items":[...]},{"date":"2019-03-02","items":[...]}]

Records on the same day keep their order from the input. Records with
no date go last, in a group with date "".
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 0, command, args)
		cmd.CheckFlags(command, "in", "out")
		cmd.Run(command, func(ctx context.Context) error {
			return Groupify(ctx, Opt)
		})
	},
}

// Groupify reads opt.In and writes the grouped catalog to opt.Out
func Groupify(ctx context.Context, opt Options) error {
	records, err := catalog.ReadRecords(opt.In)
	if err != nil {
		return err
	}
	groups := catalog.Reconcile(records, opt.By)
	if err := catalog.WriteFile(opt.Out, groups); err != nil {
		return err
	}
	fs.Logf(nil, "Sorted %d items by %s into %d days: %s", len(records), opt.By, len(groups), opt.Out)
	return nil
}
