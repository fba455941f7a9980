package fspath

import (
	"errors"
)

var (
	ErrEnvironment   = errors.New("environment error")
	ErrFilesystem    = errors.New("filesystem error")
	ErrMalformedPath = errors.New("malformed path")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newEnvironmentError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrEnvironment,
		msg:        msg,
		cause:      cause,
	}
}

func newFilesystemError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrFilesystem,
		msg:        msg,
		cause:      cause,
	}
}

func newMalformedPathError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrMalformedPath,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
