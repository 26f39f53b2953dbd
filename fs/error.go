// Errors and error handling

package fs

import (
	"errors"
	"fmt"
)

// Globals
var (
	ErrorMissingArgument = errors.New("missing required argument")
	ErrorRootNotReadable = errors.New("root directory is not readable")
	ErrorNoCredentials   = errors.New("remote store credentials are not configured")
	ErrorUnitsFailed     = errors.New("some files failed to upload")
)

// ProviderCoder is an optional interface for errors which carry a
// status code from a remote provider
type ProviderCoder interface {
	error
	ProviderCode() int
}

// ProviderError is returned when the remote store rejects a request
type ProviderError struct {
	Op      string // operation, e.g. "upload" or "list"
	Code    int    // provider status code, 0 if unknown
	Message string
}

// Error satisfies the error interface
func (e *ProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s failed: %s (HTTP code %d)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

// ProviderCode returns the provider status code
func (e *ProviderError) ProviderCode() int {
	return e.Code
}

// Check interface
var _ ProviderCoder = (*ProviderError)(nil)

// ProviderCodeOf returns the first provider code found in the error
// chain of err, or 0 if there is none
func ProviderCodeOf(err error) int {
	var pc ProviderCoder
	if errors.As(err, &pc) {
		return pc.ProviderCode()
	}
	return 0
}
