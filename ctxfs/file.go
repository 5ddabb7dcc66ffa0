// file.go - context-aware file handle
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

package ctxfs

import (
	"context"
	"io/fs"

	fserr "github.com/opencoff/go-fserr"
)

// File is the context-aware counterpart of fserr.File. Errors are
// attributed to the path the file was opened with, exactly as in
// package fserr.
type File struct {
	f *fserr.File
}

// Open opens the named file for reading.
func Open(ctx context.Context, name string) (*File, error) {
	f, err := run1(ctx, func() (*fserr.File, error) { return fserr.Open(name) })
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// Create creates or truncates the named file and opens it read-write.
func Create(ctx context.Context, name string) (*File, error) {
	f, err := run1(ctx, func() (*fserr.File, error) { return fserr.Create(name) })
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// OpenFile is the generalized open call; see fserr.OpenFile.
func OpenFile(ctx context.Context, name string, flag int, perm fs.FileMode) (*File, error) {
	f, err := run1(ctx, func() (*fserr.File, error) { return fserr.OpenFile(name, flag, perm) })
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.f.Name()
}

// Sys returns the wrapped fserr.File for callers that want the
// blocking interface (eg to hand to io.Copy).
func (f *File) Sys() *fserr.File {
	return f.f
}

// Read reads up to len(b) bytes from the current position.
func (f *File) Read(ctx context.Context, b []byte) (int, error) {
	return run1(ctx, func() (int, error) { return f.f.Read(b) })
}

// ReadAt reads len(b) bytes starting at absolute offset 'off'.
func (f *File) ReadAt(ctx context.Context, b []byte, off int64) (int, error) {
	return run1(ctx, func() (int, error) { return f.f.ReadAt(b, off) })
}

// Write writes b at the current position.
func (f *File) Write(ctx context.Context, b []byte) (int, error) {
	return run1(ctx, func() (int, error) { return f.f.Write(b) })
}

// WriteAt writes b at absolute offset 'off'.
func (f *File) WriteAt(ctx context.Context, b []byte, off int64) (int, error) {
	return run1(ctx, func() (int, error) { return f.f.WriteAt(b, off) })
}

// Seek sets the position for the next Read or Write.
func (f *File) Seek(ctx context.Context, off int64, whence int) (int64, error) {
	return run1(ctx, func() (int64, error) { return f.f.Seek(off, whence) })
}

// Sync flushes file data and metadata to stable storage.
func (f *File) Sync(ctx context.Context) error {
	return run0(ctx, func() error { return f.f.Sync() })
}

// SyncData flushes file data - but not metadata - to stable storage.
func (f *File) SyncData(ctx context.Context) error {
	return run0(ctx, func() error { return f.f.SyncData() })
}

// Truncate changes the size of the file.
func (f *File) Truncate(ctx context.Context, size int64) error {
	return run0(ctx, func() error { return f.f.Truncate(size) })
}

// Stat returns the metadata of the open file.
func (f *File) Stat(ctx context.Context) (fs.FileInfo, error) {
	return run1(ctx, func() (fs.FileInfo, error) { return f.f.Stat() })
}

// Chmod changes the permission bits of the open file.
func (f *File) Chmod(ctx context.Context, mode fs.FileMode) error {
	return run0(ctx, func() error { return f.f.Chmod(mode) })
}

// Close closes the file. Closing releases the descriptor immediately;
// it takes no context.
func (f *File) Close() error {
	return f.f.Close()
}
