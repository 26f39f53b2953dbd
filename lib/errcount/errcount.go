// Package errcount counts the failures of a batch and summarises them
// as a single error naming the most recent one.
package errcount

import (
	"fmt"
	"sync"
)

// ErrCount collects the errors of a batch.
type ErrCount struct {
	mu   sync.Mutex
	errs []error
}

// New makes a new error counter
func New() *ErrCount {
	return new(ErrCount)
}

// Add records err. A nil err is ignored.
//
// Thread safe.
func (ec *ErrCount) Add(err error) {
	if err == nil {
		return
	}
	ec.mu.Lock()
	ec.errs = append(ec.errs, err)
	ec.mu.Unlock()
}

// Count returns the number of errors recorded so far
func (ec *ErrCount) Count() int {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return len(ec.errs)
}

// Errors returns a copy of the recorded errors in the order added
func (ec *ErrCount) Errors() []error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return append([]error(nil), ec.errs...)
}

// Err returns the summary so far, which is nil when nothing failed.
//
// txt is put in front of the summary
//
//	txt: %d errors: last error: %w
//
// or this if only one error
//
//	txt: %w
func (ec *ErrCount) Err(txt string) error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	n := len(ec.errs)
	switch n {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s: %w", txt, ec.errs[0])
	}
	return fmt.Errorf("%s: %d errors: last error: %w", txt, n, ec.errs[n-1])
}
