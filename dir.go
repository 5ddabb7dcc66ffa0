// dir.go - lazy directory iteration with contextual errors
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package fserr

import (
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// entries fetched from the OS per batch
const _dirBatch = 128

// Dir is a forward-only, non-restartable stream of directory entries.
// It holds the open directory handle and the path used to open it;
// iteration failures are attributed to that path.
type Dir struct {
	f    *os.File
	path string

	pending []fs.DirEntry
	err     error
}

// ReadDir opens the named directory for iteration.
func ReadDir(name string) (*Dir, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapPath(err, OpReadDir, name)
	}
	return &Dir{f: f, path: name}, nil
}

// Next returns the next directory entry. It returns io.EOF after the
// last entry; any other failure is wrapped with the directory's path.
// The entry order is whatever the OS provides.
func (d *Dir) Next() (*DirEntry, error) {
	if d.err != nil {
		return nil, d.err
	}

	if len(d.pending) == 0 {
		ents, err := d.f.ReadDir(_dirBatch)
		if err != nil {
			if err == io.EOF {
				d.err = io.EOF
			} else {
				d.err = wrapPath(err, OpReadDir, d.path)
			}
			d.f.Close()
			return nil, d.err
		}
		d.pending = ents
	}

	ent := d.pending[0]
	d.pending = d.pending[1:]
	return &DirEntry{dir: d.path, ent: ent}, nil
}

// Entries returns the remaining entries as a single-use iterator.
// Iteration stops at the end of the directory or at the first error.
func (d *Dir) Entries() iter.Seq2[*DirEntry, error] {
	return func(yield func(*DirEntry, error) bool) {
		for {
			ent, err := d.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(ent, nil) {
				return
			}
		}
	}
}

// Close releases the directory handle. It is safe to call after the
// iteration has already ended.
func (d *Dir) Close() error {
	if d.err != nil {
		return nil
	}
	d.err = io.EOF
	return wrapPath(d.f.Close(), OpClose, d.path)
}

// DirEntry is one entry of a directory along with the path of the
// directory it came from. Metadata failures for the entry are
// attributed to the entry's own full path.
type DirEntry struct {
	dir string
	ent fs.DirEntry
}

// Name returns the bare name of the entry without any path components.
func (de *DirEntry) Name() string {
	return de.ent.Name()
}

// Path returns the full path to the entry.
func (de *DirEntry) Path() string {
	return filepath.Join(de.dir, de.ent.Name())
}

// IsDir reports whether the entry is a directory.
func (de *DirEntry) IsDir() bool {
	return de.ent.IsDir()
}

// Type returns the type bits of the entry's mode.
func (de *DirEntry) Type() fs.FileMode {
	return de.ent.Type()
}

// Info returns the metadata of the entry (lstat semantics).
func (de *DirEntry) Info() (fs.FileInfo, error) {
	fi, err := de.ent.Info()
	if err != nil {
		return nil, wrapPath(err, OpLstat, de.Path())
	}
	return fi, nil
}
