// path.go - path-centric convenience methods
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
	"io/fs"
	"path/filepath"
)

// Path is a filesystem path with the read-side operations of this
// package attached as methods. Every method delegates to the
// corresponding free function and returns the identical wrapped error.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Join appends path elements to p.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// Open opens the file at p for reading.
func (p Path) Open() (*File, error) {
	return Open(string(p))
}

// Stat returns metadata of p, following symlinks.
func (p Path) Stat() (fs.FileInfo, error) {
	return Stat(string(p))
}

// Lstat returns metadata of p without following a trailing symlink.
func (p Path) Lstat() (fs.FileInfo, error) {
	return Lstat(string(p))
}

// Exists reports whether p exists.
func (p Path) Exists() (bool, error) {
	return Exists(string(p))
}

// Canonicalize returns the absolute path of p with all symlinks
// resolved.
func (p Path) Canonicalize() (string, error) {
	return Canonicalize(string(p))
}

// Readlink returns the target of the symbolic link at p.
func (p Path) Readlink() (string, error) {
	return Readlink(string(p))
}

// ReadFile reads the whole of the file at p.
func (p Path) ReadFile() ([]byte, error) {
	return ReadFile(string(p))
}

// ReadDir opens the directory at p for iteration.
func (p Path) ReadDir() (*Dir, error) {
	return ReadDir(string(p))
}
