package ingest

import (
	"os"
	"time"

	"github.com/photocat/photocat/fs"
	"github.com/sirupsen/logrus"
)

// ErrorLog is the append only on disk record of failed files. One
// JSON object is written per failure, like
//
//	{"file":"a/b.jpg","msg":"upload failed: ...","providerCode":420,"stage":"publish","time":"..."}
//
// The file is only created when the first failure is recorded.
type ErrorLog struct {
	path string
	f    *os.File
	log  *logrus.Logger
}

// NewErrorLog returns an ErrorLog which appends to path
func NewErrorLog(path string) *ErrorLog {
	return &ErrorLog{path: path}
}

// Path returns the file name of the log
func (l *ErrorLog) Path() string {
	return l.path
}

func (l *ErrorLog) open() error {
	if l.log != nil {
		return nil
	}
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o640)
	if err != nil {
		return err
	}
	l.f = f
	l.log = logrus.New()
	l.log.Out = f
	l.log.Formatter = &logrus.JSONFormatter{TimestampFormat: time.RFC3339}
	return nil
}

// Record appends failure to the log
func (l *ErrorLog) Record(failure Failure) error {
	if err := l.open(); err != nil {
		return err
	}
	fields := logrus.Fields{
		"file":  failure.File,
		"stage": failure.Stage,
	}
	if code := fs.ProviderCodeOf(failure.Err); code != 0 {
		fields["providerCode"] = code
	}
	l.log.WithFields(fields).Error(failure.Reason())
	return nil
}

// Close the log file if it was opened. It is safe to call more than
// once.
func (l *ErrorLog) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	l.log = nil
	return err
}
