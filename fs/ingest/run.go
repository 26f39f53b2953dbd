package ingest

import (
	"fmt"

	"github.com/photocat/photocat/fs"
)

// Stages a file can fail in
const (
	StageTransform = "transform"
	StagePublish   = "publish"
)

// Failure records why a file wasn't published
type Failure struct {
	File  string // path relative to the root
	Stage string
	Err   error
}

// Reason returns the failure message
func (f Failure) Reason() string {
	if f.Err == nil {
		return "unknown error"
	}
	return f.Err.Error()
}

func (f Failure) String() string {
	if code := fs.ProviderCodeOf(f.Err); code != 0 {
		return fmt.Sprintf("%s - %s. HTTP code: %d", f.File, f.Reason(), code)
	}
	return fmt.Sprintf("%s - %s", f.File, f.Reason())
}

// Run is the state of one ingestion pass: counters, the failure list
// and the error log handle.
type Run struct {
	Total    int
	Success  int
	Failures []Failure

	errLog *ErrorLog
}

// NewRun makes a Run which records failures in the error log at
// errLogPath. Close must be called when the run is finished.
func NewRun(errLogPath string) *Run {
	return &Run{errLog: NewErrorLog(errLogPath)}
}

// Succeeded counts a published file
func (r *Run) Succeeded() {
	r.Success++
}

// Fail records a failed file in memory and in the error log
func (r *Run) Fail(failure Failure) {
	r.Failures = append(r.Failures, failure)
	if err := r.errLog.Record(failure); err != nil {
		fs.Errorf(r.errLog.Path(), "failed to write error log: %v", err)
	}
}

// Close releases the error log
func (r *Run) Close() error {
	return r.errLog.Close()
}

// Summary logs the end of run report
func (r *Run) Summary() {
	fs.Logf(nil, "%d/%d items uploaded successfully", r.Success, r.Total)
	if len(r.Failures) == 0 {
		return
	}
	fs.Errorf(nil, "%d files failed to upload, see log file %s", len(r.Failures), r.errLog.Path())
	for _, failure := range r.Failures {
		fs.Errorf(nil, "%v", failure)
	}
}

// Err returns an error wrapping fs.ErrorUnitsFailed if any file failed
func (r *Run) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", fs.ErrorUnitsFailed, len(r.Failures), r.Total)
}
