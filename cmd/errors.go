package cmd

import (
	"errors"
	"fmt"
)

const (
	exitFailure      = 1
	exitChecksErrors = 2
)

// ChecksFileError reports a definitions file that could not be loaded.
type ChecksFileError struct {
	Path string
	Err  error
}

func (e *ChecksFileError) Error() string {
	return fmt.Sprintf("checks file %s:\n%v", e.Path, e.Err)
}

func (e *ChecksFileError) Unwrap() error { return e.Err }

// RunFailedError signals that a run finished but some checks errored.
type RunFailedError struct {
	Errored int
	Total   int
}

func (e *RunFailedError) Error() string {
	return fmt.Sprintf("%d of %d checks errored", e.Errored, e.Total)
}

func exitCode(err error) int {
	var runErr *RunFailedError
	if errors.As(err, &runErr) {
		return exitChecksErrors
	}
	return exitFailure
}
