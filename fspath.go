// Package fspath wraps the host operating system's native path representation
// in a single value type. A Path owns a plain string buffer and supports
// join/split/rename-style manipulation, filesystem predicate checks, directory
// enumeration, and conversion to and from plain strings.
package fspath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Path represents a filesystem path as an owned string buffer.
//
// The zero value is an empty path, meaning "no path set". Two Paths are equal
// iff their buffers are equal as strings; no normalization is applied before
// comparison, so "/a/b" and "/a/b/" are distinct. Path is comparable, ordered
// lexicographically, and usable as a map key.
//
// All manipulation methods are pure and return a new Path. The pointer
// receiver methods Append and Clear are the in-place secondary API for
// callers that want to extend or reset an existing value.
type Path string

// fsys is the filesystem backend used by the predicate methods and ReadDir.
// Tests swap it for an in-memory filesystem.
var fsys afero.Fs = afero.NewOsFs()

// New allocates an empty Path.
func New() Path {
	return ""
}

// From creates a Path from a string-like value: a plain string, a Path, or
// any string-derived path type. The input is copied verbatim; any string is
// accepted, including empty or malformed paths, and the filesystem is not
// consulted.
func From[S ~string](s S) Path {
	return Path(s)
}

// Getwd returns the process's current working directory as a Path.
// The directory is read from the OS at call time, never cached, since the
// working directory can change between calls.
func Getwd() (p Path, err error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", newEnvironmentError("failed to get working directory", err)
	}
	return Path(wd), nil
}

// Home returns the current user's home directory as a Path.
// The directory is resolved by the OS at call time, never cached.
func Home() (p Path, err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", newEnvironmentError("failed to get home directory", err)
	}
	return Path(home), nil
}

// Join appends a single segment to the path with platform-correct separator
// insertion and returns the combined Path. The buffer is extended verbatim,
// without cleaning, and the existence of the result is not checked. An
// absolute segment replaces the path entirely; an empty segment appends only
// the separator, leaving the path with a trailing separator.
func (p Path) Join(segment string) Path {
	if filepath.IsAbs(segment) {
		return Path(segment)
	}
	if p == "" {
		return Path(segment)
	}
	if strings.HasSuffix(string(p), string(filepath.Separator)) {
		return p + Path(segment)
	}
	return p + Path(filepath.Separator) + Path(segment)
}

// JoinAll applies Join sequentially for each segment, in order, and returns
// the combined Path.
func (p Path) JoinAll(segments ...string) Path {
	joined := p
	for _, segment := range segments {
		joined = joined.Join(segment)
	}
	return joined
}

// Append joins the segments onto p in place. It is the in-place variant of
// JoinAll.
func (p *Path) Append(segments ...string) {
	*p = p.JoinAll(segments...)
}

// Clear resets the buffer to empty, equivalent to a fresh New().
func (p *Path) Clear() {
	*p = ""
}

// Basename returns the final component of the path, typically a filename.
// Trailing separators and trailing "." components are skipped, so
// "foo/." has basename "foo". When the path has no final component (empty,
// root, or ending in ".."), it returns the empty string.
func (p Path) Basename() string {
	s := string(p)
	end := len(s)
	for end > 0 {
		for end > 0 && s[end-1] == filepath.Separator {
			end--
		}
		start := end
		for start > 0 && s[start-1] != filepath.Separator {
			start--
		}
		component := s[start:end]
		if component == "." {
			end = start
			continue
		}
		if component == "" || component == ".." {
			return ""
		}
		return component
	}
	return ""
}

// WithBasename returns a new Path whose final component is replaced by name,
// preserving all parent components.
func (p Path) WithBasename(name string) Path {
	return p.Dirname().Join(name)
}

// Dirname returns the parent path: the buffer with its final component and
// the separator(s) before it sliced off verbatim. The retained components
// are not cleaned, so "." and ".." segments and repeated separators in the
// parent survive unchanged. For a root or single-component path the result
// is deterministic: the root itself, or "." for a bare component. An empty
// path yields an empty Path.
func (p Path) Dirname() Path {
	if p == "" {
		return ""
	}
	s := string(p)
	end := len(s)
	for end > 0 && s[end-1] == filepath.Separator {
		end--
	}
	if end == 0 {
		return Path(filepath.Separator)
	}
	i := strings.LastIndex(s[:end], string(filepath.Separator))
	if i < 0 {
		return "."
	}
	for i > 0 && s[i-1] == filepath.Separator {
		i--
	}
	if i == 0 {
		return Path(filepath.Separator)
	}
	return Path(s[:i])
}

// WithDirname returns a new Path combining parent with the original
// basename.
func (p Path) WithDirname(parent string) Path {
	return From(parent).Join(p.Basename())
}

// Extension returns the extension of the basename, the substring after the
// last '.'. When the basename contains no '.', the basename itself is
// returned; this fallback is preserved for compatibility with existing
// callers and is not an error. A path with no basename at all (empty or
// root) yields ErrMalformedPath.
func (p Path) Extension() (ext string, err error) {
	base := p.Basename()
	if base == "" {
		return "", newMalformedPathError("no basename to take an extension from", nil)
	}
	if i := strings.LastIndex(base, "."); i >= 0 {
		return base[i+1:], nil
	}
	return base, nil
}

// Expand resolves the path to its canonical absolute form, normalizing
// intermediate components and resolving symbolic links. Resolution requires
// the target to exist on the filesystem; when it does not, or resolution
// fails for any other reason, the original Path is returned unchanged.
func (p Path) Expand() Path {
	if p == "" {
		return p
	}
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return p
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return p
	}
	return Path(resolved)
}

// ReadDir opens the directory and returns a lazy enumerator over its direct
// children. It fails when the path does not exist, is not a directory, or
// the OS denies access.
func (p Path) ReadDir() (d *Dir, err error) {
	f, err := fsys.Open(string(p))
	if err != nil {
		return nil, newFilesystemError("failed to open directory", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, newFilesystemError("failed to stat directory", err)
	}
	if !info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("'%s' is not a directory: %w", p, ErrFilesystem)
	}
	return &Dir{parent: p, file: f}, nil
}

// String returns an owned copy of the buffer, verbatim and unquoted.
func (p Path) String() string {
	return string(p)
}

// Filepath returns the buffer with separators converted to the host's native
// form.
func (p Path) Filepath() string {
	return filepath.FromSlash(string(p))
}

// Slash returns the buffer in slash-separated form for io/fs-style
// consumers.
func (p Path) Slash() string {
	return filepath.ToSlash(string(p))
}

// Compare orders two Paths lexicographically over their buffers, consistent
// with equality.
func (p Path) Compare(other Path) int {
	return strings.Compare(string(p), string(other))
}

// Exists reports whether the path refers to an existing filesystem entry.
// The live filesystem is queried on every call; nonexistent paths simply
// yield false.
func (p Path) Exists() bool {
	ok, err := afero.Exists(fsys, string(p))
	return err == nil && ok
}

// IsDir reports whether the path refers to an existing directory.
func (p Path) IsDir() bool {
	info, err := fsys.Stat(string(p))
	return err == nil && info.IsDir()
}

// IsFile reports whether the path refers to an existing regular file.
func (p Path) IsFile() bool {
	info, err := fsys.Stat(string(p))
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink reports whether the path itself is a symbolic link, using lstat
// semantics. Backends without symlink support report false.
func (p Path) IsSymlink() bool {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return false
	}
	info, lstatCalled, err := lstater.LstatIfPossible(string(p))
	if err != nil || !lstatCalled {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// IsAbs reports whether the path is absolute. The check is purely syntactic;
// the filesystem is not consulted.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(string(p))
}

// IsRel reports whether the path is relative, the negation of IsAbs.
func (p Path) IsRel() bool {
	return !p.IsAbs()
}
