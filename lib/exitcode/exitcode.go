// Package exitcode exports photocat's exit status numbers.
package exitcode

const (
	// Success is returned when photocat finished without error.
	Success = 0
	// UsageError is returned when there was a syntax or usage error in the arguments.
	UsageError = 1
	// UncategorizedError is returned for any error not categorised otherwise.
	UncategorizedError = 2
	// DirNotFound is returned when the root directory can't be read.
	DirNotFound = 3
	// FatalError is returned when the run couldn't start or its output
	// would be incomplete, e.g. missing credentials or a failed listing.
	FatalError = 7
	// UnitsFailed is returned when the run completed but some files
	// failed to upload.
	UnitsFailed = 9
)
