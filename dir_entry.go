package fspath

import (
	"io"
	"io/fs"
	"sync"

	"github.com/spf13/afero"
)

// DirEntry describes one direct child of an enumerated directory.
// It implements fs.DirEntry and additionally carries the child's full Path.
type DirEntry struct {
	path Path
	info fs.FileInfo
}

// Verify interface implementation at compile time.
var _ fs.DirEntry = DirEntry{}

// Name returns the name of the entry.
func (e DirEntry) Name() string {
	return e.info.Name()
}

// IsDir reports whether the entry is a directory.
func (e DirEntry) IsDir() bool {
	return e.info.IsDir()
}

// Type returns the file mode type bits.
func (e DirEntry) Type() fs.FileMode {
	return e.info.Mode().Type()
}

// Info returns the file info recorded when the entry was read.
func (e DirEntry) Info() (fs.FileInfo, error) {
	return e.info, nil
}

// Path returns the full path of the entry: the enumerated directory joined
// with the entry name.
func (e DirEntry) Path() Path {
	return e.path
}

// Dir enumerates the direct children of a directory lazily, in whatever
// order the OS reports them. The sequence is finite and non-restartable.
// Dir's methods are protected by a mutex for concurrent use.
type Dir struct {
	parent Path
	file   afero.File
	mu     sync.Mutex
}

// ReadDir reads up to n entries from the directory. For n > 0 it returns
// io.EOF once the directory is exhausted; for n <= 0 it reads all remaining
// entries and returns an error only when the read fails.
func (d *Dir) ReadDir(n int) (entries []DirEntry, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	infos, err := d.file.Readdir(n)
	entries = make([]DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, DirEntry{path: d.parent.Join(info.Name()), info: info})
	}
	if err != nil {
		if err == io.EOF {
			return entries, io.EOF
		}
		return entries, newFilesystemError("failed to read directory", err)
	}
	return entries, nil
}

// Next returns the next entry, or io.EOF after the last one.
func (d *Dir) Next() (entry DirEntry, err error) {
	entries, err := d.ReadDir(1)
	if len(entries) > 0 {
		return entries[0], nil
	}
	if err == nil {
		err = io.EOF
	}
	return DirEntry{}, err
}

// All drains and returns every remaining entry.
func (d *Dir) All() (entries []DirEntry, err error) {
	return d.ReadDir(-1)
}

// Close releases the directory handle. The sequence need not be fully
// consumed before closing.
func (d *Dir) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.file.Close(); err != nil {
		return newFilesystemError("failed to close directory", err)
	}
	return nil
}
