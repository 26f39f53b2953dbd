// Package logflags implements command line flags to set up the log
package logflags

import (
	"github.com/photocat/photocat/fs/log"
	"github.com/spf13/pflag"
)

// AddFlags adds the log flags to the flagSet
func AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&log.Opt.File, "log-file", "", log.Opt.File, "Log everything to this file")
	flagSet.IntVarP(&log.Opt.MaxSizeMiB, "log-file-max-size", "", log.Opt.MaxSizeMiB, "Maximum size in MiB of the log file before it's rotated (0 to disable)")
	flagSet.IntVarP(&log.Opt.MaxBackups, "log-file-max-backups", "", log.Opt.MaxBackups, "Maximum number of old log files to retain")
	flagSet.IntVarP(&log.Opt.MaxAgeDays, "log-file-max-age", "", log.Opt.MaxAgeDays, "Maximum number of days to retain old log files")
	flagSet.BoolVarP(&log.Opt.Compress, "log-file-compress", "", log.Opt.Compress, "If set, compress rotated log files using gzip")
}
