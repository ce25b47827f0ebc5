package cli

import (
	"errors"

	"github.com/benedict2310/robotsctl/internal/generate"
)

const (
	exitUsage       = 2
	exitQueryFailed = 3
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func exitCodeError(code int, err error) error {
	if code <= 0 {
		return err
	}
	return &ExitError{Code: code, Err: err}
}

// classify tags metadata query failures with their own exit code.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var queryErr *generate.QueryError
	if errors.As(err, &queryErr) {
		return exitCodeError(exitQueryFailed, err)
	}
	return err
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded *ExitError
	if errors.As(err, &coded) && coded.Code > 0 {
		return coded.Code
	}
	return 1
}
