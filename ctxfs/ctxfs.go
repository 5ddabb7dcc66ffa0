// ctxfs.go - context-aware path operations
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

// ReadFile reads the whole of the named file.
func ReadFile(ctx context.Context, name string) ([]byte, error) {
	return run1(ctx, func() ([]byte, error) { return fserr.ReadFile(name) })
}

// WriteFile writes data to the named file, creating it with mode perm
// if needed and truncating it otherwise.
func WriteFile(ctx context.Context, name string, data []byte, perm fs.FileMode) error {
	return run0(ctx, func() error { return fserr.WriteFile(name, data, perm) })
}

// Mkdir creates a single directory level; it fails if the parent is
// missing.
func Mkdir(ctx context.Context, name string, perm fs.FileMode) error {
	return run0(ctx, func() error { return fserr.Mkdir(name, perm) })
}

// MkdirAll creates the named directory along with any missing parents.
func MkdirAll(ctx context.Context, name string, perm fs.FileMode) error {
	return run0(ctx, func() error { return fserr.MkdirAll(name, perm) })
}

// Remove removes the named file or empty directory.
func Remove(ctx context.Context, name string) error {
	return run0(ctx, func() error { return fserr.Remove(name) })
}

// RemoveDir removes the named directory; the directory must be empty.
func RemoveDir(ctx context.Context, name string) error {
	return run0(ctx, func() error { return fserr.RemoveDir(name) })
}

// RemoveAll removes the named path and everything below it.
func RemoveAll(ctx context.Context, name string) error {
	return run0(ctx, func() error { return fserr.RemoveAll(name) })
}

// Rename renames (moves) 'from' to 'to'.
func Rename(ctx context.Context, from, to string) error {
	return run0(ctx, func() error { return fserr.Rename(from, to) })
}

// Link creates 'to' as a hard link to 'from'.
func Link(ctx context.Context, from, to string) error {
	return run0(ctx, func() error { return fserr.Link(from, to) })
}

// Symlink creates 'to' as a symbolic link pointing at 'from'.
func Symlink(ctx context.Context, from, to string) error {
	return run0(ctx, func() error { return fserr.Symlink(from, to) })
}

// Readlink returns the target of the named symbolic link.
func Readlink(ctx context.Context, name string) (string, error) {
	return run1(ctx, func() (string, error) { return fserr.Readlink(name) })
}

// Stat returns metadata of the named file, following symlinks.
func Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	return run1(ctx, func() (fs.FileInfo, error) { return fserr.Stat(name) })
}

// Lstat returns metadata of the named file without following a
// trailing symlink.
func Lstat(ctx context.Context, name string) (fs.FileInfo, error) {
	return run1(ctx, func() (fs.FileInfo, error) { return fserr.Lstat(name) })
}

// Chmod changes the permission bits of the named file.
func Chmod(ctx context.Context, name string, mode fs.FileMode) error {
	return run0(ctx, func() error { return fserr.Chmod(name, mode) })
}

// Truncate changes the size of the named file.
func Truncate(ctx context.Context, name string, size int64) error {
	return run0(ctx, func() error { return fserr.Truncate(name, size) })
}

// Canonicalize returns the absolute path of 'name' with all symlinks
// resolved.
func Canonicalize(ctx context.Context, name string) (string, error) {
	return run1(ctx, func() (string, error) { return fserr.Canonicalize(name) })
}

// Exists reports whether the named path exists.
func Exists(ctx context.Context, name string) (bool, error) {
	return run1(ctx, func() (bool, error) { return fserr.Exists(name) })
}

// Copy copies the contents and permission bits of the regular file
// 'from' to 'to', returning the number of bytes copied.
func Copy(ctx context.Context, from, to string) (int64, error) {
	return run1(ctx, func() (int64, error) { return fserr.Copy(from, to) })
}

// CopyAll copies the directory tree rooted at 'from' into 'to'.
func CopyAll(ctx context.Context, from, to string, opts ...fserr.TreeOption) error {
	return run0(ctx, func() error { return fserr.CopyAll(from, to, opts...) })
}
