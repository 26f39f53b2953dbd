// Package configflags defines the flags used by photocat.  It is
// decoupled into a separate package so it can be replaced.
package configflags

// Options set by command line flags
import (
	"fmt"

	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/fs/config"
	"github.com/spf13/pflag"
)

var (
	// these will get interpreted into fs.ConfigInfo via SetFlags() below
	verbose  int
	quiet    bool
	logLevel string
)

// AddFlags adds the non command specific flags to the command
func AddFlags(ci *fs.ConfigInfo, flagSet *pflag.FlagSet) {
	// NB defaults which aren't the zero for the type should be set in fs/config.go NewConfig
	flagSet.CountVarP(&verbose, "verbose", "v", "Print lots more stuff (repeat for more)")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "Print as little stuff as possible")
	flagSet.StringVarP(&logLevel, "log-level", "", "", "Log level DEBUG|INFO|NOTICE|ERROR")
	flagSet.BoolVarP(&ci.DryRun, "dry-run", "n", ci.DryRun, "Do a trial run using an in memory store")
	flagSet.BoolVarP(&ci.UseJSONLog, "use-json-log", "", ci.UseJSONLog, "Use json log format")
	flagSet.StringVarP(&config.EnvFile, "env-file", "", config.EnvFile, "Read credentials from this dotenv file if it exists")
	flagSet.IntVarP(&ci.MaxImageDimension, "max-image-dimension", "", ci.MaxImageDimension, "Resize images to fit inside this many pixels")
	flagSet.IntVarP(&ci.MaxVideoDimension, "max-video-dimension", "", ci.MaxVideoDimension, "Bound videos to this many pixels")
	flagSet.IntVarP(&ci.ListPageSize, "list-page-size", "", ci.ListPageSize, "Number of assets to request per listing call (max 500)")
}

// SetFlags converts any flags into config which weren't straight forward
func SetFlags(ci *fs.ConfigInfo) error {
	if verbose >= 2 {
		ci.LogLevel = fs.LogLevelDebug
	} else if verbose >= 1 {
		ci.LogLevel = fs.LogLevelInfo
	}
	if quiet {
		if verbose > 0 {
			return fmt.Errorf("can't set -v and -q")
		}
		ci.LogLevel = fs.LogLevelError
	}
	if logLevel != "" {
		if verbose > 0 || quiet {
			return fmt.Errorf("can't set -v or -q with --log-level")
		}
		if err := ci.LogLevel.Set(logLevel); err != nil {
			return err
		}
	}
	if ci.MaxImageDimension <= 0 || ci.MaxVideoDimension <= 0 {
		return fmt.Errorf("media dimensions must be positive")
	}
	if ci.ListPageSize <= 0 {
		return fmt.Errorf("--list-page-size must be positive")
	}
	return nil
}
