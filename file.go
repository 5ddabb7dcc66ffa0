// file.go - file handle facade with contextual errors
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
	"os"
)

// File wraps an open *os.File and remembers the path it was opened
// with. Every method delegates straight to the underlying file and, on
// failure, returns a *PathError naming the operation and that path.
//
// The stored path is fixed at open time; renaming or moving the file
// on disk does not change what later errors report.
type File struct {
	f    *os.File
	name string
}

var (
	_ io.Reader       = &File{}
	_ io.Writer       = &File{}
	_ io.Seeker       = &File{}
	_ io.ReaderAt     = &File{}
	_ io.WriterAt     = &File{}
	_ io.Closer       = &File{}
	_ io.StringWriter = &File{}
)

// Open opens the named file for reading.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapPath(err, OpOpen, name)
	}
	return &File{f: f, name: name}, nil
}

// Create creates or truncates the named file and opens it read-write.
// An existing file is truncated, not replaced - ie create is
// open-or-truncate-create.
func Create(name string) (*File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, wrapPath(err, OpCreate, name)
	}
	return &File{f: f, name: name}, nil
}

// OpenFile is the generalized open call; flag carries the full set of
// open modes (os.O_RDONLY, os.O_RDWR, os.O_APPEND, os.O_CREATE,
// os.O_EXCL, os.O_TRUNC, ...) plus any OS specific custom flags.
func OpenFile(name string, flag int, perm fs.FileMode) (*File, error) {
	op := OpOpen
	if flag&os.O_CREATE != 0 {
		op = OpCreate
	}

	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, wrapPath(err, op, name)
	}
	return &File{f: f, name: name}, nil
}

// NewFile wraps an already-open os file; 'name' is used purely for
// error attribution on later operations.
func NewFile(f *os.File, name string) *File {
	return &File{f: f, name: name}
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Sys returns the underlying *os.File. Errors from calls made directly
// on it are not wrapped.
func (f *File) Sys() *os.File {
	return f.f
}

// Fd returns the underlying file descriptor.
func (f *File) Fd() uintptr {
	return f.f.Fd()
}

// Read reads up to len(b) bytes from the current position.
func (f *File) Read(b []byte) (int, error) {
	n, err := f.f.Read(b)
	if err != nil && err != io.EOF {
		return n, wrapPath(err, OpRead, f.name)
	}
	return n, err
}

// ReadAt reads len(b) bytes starting at absolute offset 'off'.
func (f *File) ReadAt(b []byte, off int64) (int, error) {
	n, err := f.f.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return n, wrapPath(err, OpReadAt, f.name)
	}
	return n, err
}

// Write writes b at the current position.
func (f *File) Write(b []byte) (int, error) {
	n, err := f.f.Write(b)
	if err != nil {
		return n, wrapPath(err, OpWrite, f.name)
	}
	return n, nil
}

// WriteString writes the string s at the current position.
func (f *File) WriteString(s string) (int, error) {
	n, err := f.f.WriteString(s)
	if err != nil {
		return n, wrapPath(err, OpWrite, f.name)
	}
	return n, nil
}

// WriteAt writes b at absolute offset 'off'.
func (f *File) WriteAt(b []byte, off int64) (int, error) {
	n, err := f.f.WriteAt(b, off)
	if err != nil {
		return n, wrapPath(err, OpWriteAt, f.name)
	}
	return n, nil
}

// ReadFrom copies from r into the file; this lets io.Copy use the
// OS fast paths (sendfile, copy_file_range) on the raw descriptor.
func (f *File) ReadFrom(r io.Reader) (int64, error) {
	n, err := f.f.ReadFrom(r)
	if err != nil {
		return n, wrapPath(err, OpWrite, f.name)
	}
	return n, nil
}

// Seek sets the position for the next Read or Write.
func (f *File) Seek(off int64, whence int) (int64, error) {
	n, err := f.f.Seek(off, whence)
	if err != nil {
		return n, wrapPath(err, OpSeek, f.name)
	}
	return n, nil
}

// Sync flushes file data and metadata to stable storage.
func (f *File) Sync() error {
	return wrapPath(f.f.Sync(), OpSync, f.name)
}

// Truncate changes the size of the file.
func (f *File) Truncate(size int64) error {
	return wrapPath(f.f.Truncate(size), OpSetLen, f.name)
}

// Stat returns the metadata of the open file.
func (f *File) Stat() (fs.FileInfo, error) {
	fi, err := f.f.Stat()
	if err != nil {
		return nil, wrapPath(err, OpStat, f.name)
	}
	return fi, nil
}

// Chmod changes the permission bits of the open file.
func (f *File) Chmod(mode fs.FileMode) error {
	return wrapPath(f.f.Chmod(mode), OpChmod, f.name)
}

// Close closes the file; the underlying descriptor is released.
func (f *File) Close() error {
	return wrapPath(f.f.Close(), OpClose, f.name)
}
