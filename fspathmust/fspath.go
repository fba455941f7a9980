// Package fspathmust wraps the fspath package with panic-based error handling.
//
// It provides the same path operations as the root-level fspath package, but
// instead of returning errors, all exported functions panic on failure. It
// exists for callers that treat environment and filesystem failures as
// unrecoverable and do not want error plumbing at every call site.
package fspathmust

import (
	"github.com/Jumpaku/go-fspath"
)

// Getwd returns the process's current working directory as a Path.
// The directory is read from the OS at call time, never cached.
//
// It panics if the OS refuses to report the working directory.
func Getwd() (p fspath.Path) {
	return must1(fspath.Getwd())
}

// Home returns the current user's home directory as a Path.
// The directory is resolved by the OS at call time, never cached.
//
// It panics if the OS cannot resolve a home directory for the current user.
func Home() (p fspath.Path) {
	return must1(fspath.Home())
}

// Extension returns the extension of p's basename, with the same
// basename-fallback behavior as fspath.Path.Extension.
//
// It panics if p has no basename at all (the underlying error would be
// ErrMalformedPath).
func Extension(p fspath.Path) (ext string) {
	return must1(p.Extension())
}

// ReadDir opens the directory at p and returns a lazy enumerator over its
// direct children.
//
// It panics if the path does not exist, is not a directory, or the OS denies
// access (the underlying error would be ErrFilesystem).
func ReadDir(p fspath.Path) (d *fspath.Dir) {
	return must1(p.ReadDir())
}
