// Package log provides logging setup for photocat
package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/photocat/photocat/fs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options contains options for controlling the logging
type Options struct {
	File       string // Log everything to this file
	MaxSizeMiB int    // Max size of log file before rotation, 0 disables rotation
	MaxBackups int    // Max backups of log file
	MaxAgeDays int    // Max age of of log file
	Compress   bool   // Set to compress rotated log files
}

// Opt is the options for the logger
var Opt Options

// InitLogging start the logging as per the command line flags
//
// It returns a function which closes the log file, if one was opened.
func InitLogging(ctx context.Context) (closeLog func() error, err error) {
	ci := fs.GetConfig(ctx)
	fs.SetJSONLog(ci.UseJSONLog)
	closeLog = func() error { return nil }

	if Opt.File == "" {
		return closeLog, nil
	}
	w, err := openLogFile(Opt)
	if err != nil {
		return closeLog, err
	}
	fs.SetLogOutput(w)
	return func() error {
		fs.SetLogOutput(os.Stderr)
		return w.Close()
	}, nil
}

func openLogFile(opt Options) (io.WriteCloser, error) {
	if opt.MaxSizeMiB <= 0 {
		// No log rotation - just open the file as normal
		f, err := os.OpenFile(opt.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0640)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, nil
	}
	return &lumberjack.Logger{
		Filename:   opt.File,
		MaxSize:    opt.MaxSizeMiB,
		MaxBackups: opt.MaxBackups,
		MaxAge:     opt.MaxAgeDays,
		Compress:   opt.Compress,
		LocalTime:  true, // format log file names in localtime
	}, nil
}
