// Package cmd implements the photocat command
//
// It is in a sub package so it's internals can be re-used elsewhere
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/fs/config"
	"github.com/photocat/photocat/fs/config/configflags"
	fslog "github.com/photocat/photocat/fs/log"
	"github.com/photocat/photocat/fs/log/logflags"
	"github.com/photocat/photocat/lib/exitcode"
	"github.com/spf13/cobra"
)

// Globals
var (
	// Errors
	errorNotEnoughArguments = errors.New("not enough arguments")
	errorTooManyArguments   = errors.New("too many arguments")
	errorCatalogIncomplete  = errors.New("catalog incomplete")

	// run at exit, last added first
	finalisers []func() error
)

// Root is the main photocat command
var Root = &cobra.Command{
	Use:   "photocat",
	Short: "Publish a photo library to Cloudinary and build its gallery catalog",
	Long: `
Photocat uploads a tree of photos and videos to Cloudinary. Folder names
of the form "<address>, <date>" are recorded against each file together
with its GPS position, the place it was taken and its dominant color.

The published assets can then be exported into a flat JSON catalog and
grouped by day for a gallery renderer.
`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

func init() {
	ci := fs.GetConfig(context.Background())
	configflags.AddFlags(ci, Root.PersistentFlags())
	logflags.AddFlags(Root.PersistentFlags())
	cobra.OnInitialize(initConfig)
}

// ShowVersion prints the version to stdout
func ShowVersion() {
	fmt.Printf("photocat %s\n", fs.Version)
	fmt.Printf("- os/type: %s\n", runtime.GOOS)
	fmt.Printf("- os/arch: %s\n", runtime.GOARCH)
	fmt.Printf("- go/version: %s\n", runtime.Version())
}

// ErrorCatalogIncomplete marks an export that produced only part of
// the catalog
func ErrorCatalogIncomplete(err error) error {
	return fmt.Errorf("%w: %w", errorCatalogIncomplete, err)
}

// Run the function f and exit with a code describing its error
func Run(cmd *cobra.Command, f func(ctx context.Context) error) {
	ctx := context.Background()
	cmdErr := f(ctx)
	if cmdErr != nil {
		fs.Errorf(nil, "Failed to %s: %v", cmd.Name(), cmdErr)
	}
	resolveExitCode(cmdErr)
}

// CheckArgs checks there are enough arguments and prints a message if not
func CheckArgs(MinArgs, MaxArgs int, cmd *cobra.Command, args []string) {
	if len(args) < MinArgs {
		_ = cmd.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %d arguments minimum: you provided %d non flag arguments: %q\n", cmd.Name(), MinArgs, len(args), args)
		resolveExitCode(errorNotEnoughArguments)
	} else if len(args) > MaxArgs {
		_ = cmd.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %d arguments maximum: you provided %d non flag arguments: %q\n", cmd.Name(), MaxArgs, len(args), args)
		resolveExitCode(errorTooManyArguments)
	}
}

// CheckFlags checks every named flag has been given a non empty
// value and prints a message if not
func CheckFlags(cmd *cobra.Command, names ...string) {
	var missing []string
	for _, name := range names {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || strings.TrimSpace(flag.Value.String()) == "" {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		_ = cmd.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %s\n", cmd.Name(), strings.Join(missing, ", "))
		resolveExitCode(fmt.Errorf("%w: %s", fs.ErrorMissingArgument, strings.Join(missing, ", ")))
	}
}

// initConfig is run by cobra after initialising the flags
func initConfig() {
	ctx := context.Background()
	ci := fs.GetConfig(ctx)

	// Finish parsing any command line flags
	if err := configflags.SetFlags(ci); err != nil {
		log.Printf("Invalid flags: %v", err)
		os.Exit(exitcode.UsageError)
	}

	// Start the logger
	closeLog, err := fslog.InitLogging(ctx)
	if err != nil {
		log.Fatalf("Failed to start logging: %v", err)
	}
	finalisers = append(finalisers, closeLog)

	// Load the credentials
	if err := config.Load(ci); err != nil {
		fs.Errorf(nil, "Failed to load config: %v", err)
		resolveExitCode(err)
	}

	// Write the args for debug purposes
	fs.Debugf("photocat", "Version %q starting with parameters %q", fs.Version, os.Args)
	if ci.DryRun {
		fs.Logf(nil, "Dry run: nothing will be uploaded to the remote store")
	}
}

// exitCode chooses the process exit status for err
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, errorNotEnoughArguments),
		errors.Is(err, errorTooManyArguments),
		errors.Is(err, fs.ErrorMissingArgument):
		return exitcode.UsageError
	case errors.Is(err, fs.ErrorRootNotReadable):
		return exitcode.DirNotFound
	case errors.Is(err, fs.ErrorUnitsFailed):
		return exitcode.UnitsFailed
	case errors.Is(err, fs.ErrorNoCredentials),
		errors.Is(err, errorCatalogIncomplete):
		return exitcode.FatalError
	default:
		return exitcode.UncategorizedError
	}
}

func resolveExitCode(err error) {
	for i := len(finalisers) - 1; i >= 0; i-- {
		if closeErr := finalisers[i](); closeErr != nil {
			log.Printf("Failed to close: %v", closeErr)
		}
	}
	finalisers = nil
	os.Exit(exitCode(err))
}

// Main runs photocat interpreting flags and commands out of os.Args
func Main() {
	if err := Root.Execute(); err != nil {
		log.Printf("Fatal error: %v", err)
		resolveExitCode(fmt.Errorf("%w: %v", fs.ErrorMissingArgument, err))
	}
}
