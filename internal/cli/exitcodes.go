package cli

import (
	stderrors "errors"

	"github.com/kbukum/httpkit/httpclient"
)

// Exit codes returned by the httpkit binary.
const (
	// ExitSuccess indicates the request completed with a 2xx status.
	ExitSuccess = 0

	// ExitFailure covers any failure without a more specific code.
	ExitFailure = 1

	// ExitUsage indicates invalid arguments or flags.
	ExitUsage = 2

	// ExitConfigError indicates the configuration could not be loaded or
	// failed validation.
	ExitConfigError = 3

	// ExitUnreachable indicates a connection failure or timeout, and a HEAD
	// probe that did not succeed.
	ExitUnreachable = 4

	// ExitHTTPStatus indicates the server answered with a non-2xx status.
	ExitHTTPStatus = 5
)

// exitError carries a specific exit code. A nil err exits silently.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCodeFor maps err to the process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if stderrors.As(err, &ee) {
		return ee.code
	}
	switch {
	case httpclient.IsConnection(err), httpclient.IsTimeout(err):
		return ExitUnreachable
	case httpclient.StatusCode(err) != 0:
		return ExitHTTPStatus
	default:
		return ExitFailure
	}
}
