package fspath

import (
	"github.com/spf13/afero"
)

// This file is part of the package tests (package fspath) and provides
// helpers that allow tests in the external package to access internal
// package constructs. Helpers are exported so `fspath_test` can call them
// via the module import path.

// SetFs swaps the filesystem backend used by predicates and ReadDir and
// returns a function restoring the previous backend.
func SetFs(backend afero.Fs) (restore func()) {
	prev := fsys
	fsys = backend
	return func() { fsys = prev }
}

// NewEnvironmentError constructs an environment-wrapped error using the package-internal constructor.
func NewEnvironmentError(msg string, cause error) error {
	return newEnvironmentError(msg, cause)
}

// NewFilesystemError constructs a filesystem-wrapped error using the package-internal constructor.
func NewFilesystemError(msg string, cause error) error {
	return newFilesystemError(msg, cause)
}

// NewMalformedPathError constructs a malformed-path-wrapped error using the package-internal constructor.
func NewMalformedPathError(msg string, cause error) error {
	return newMalformedPathError(msg, cause)
}
