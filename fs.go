// fs.go - path-taking filesystem operations with contextual errors
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

// Package fserr is a drop-in replacement for the file system calls in
// package os that produces actionable errors. Every failure names the
// attempted operation and the path(s) involved:
//
//	failed to open file `config.json`: no such file or directory
//
// instead of the bare errno text. The underlying error keeps its
// classification - errors.Is(err, fs.ErrNotExist) and friends work
// exactly as they do with package os.
package fserr

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadFile reads the whole of the named file. The initial buffer is
// sized from a best-effort metadata probe; a probe failure is not an
// error, the buffer just starts empty.
func ReadFile(name string) ([]byte, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var size int64
	if fi, err := f.f.Stat(); err == nil {
		size = fi.Size()
	}

	buf := make([]byte, 0, size+1)
	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := f.f.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err != nil {
			if err == io.EOF {
				return buf, nil
			}
			return buf, wrapPath(err, OpRead, name)
		}
	}
}

// WriteFile writes data to the named file, creating it with mode perm
// if needed and truncating it otherwise.
func WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Mkdir creates a single directory level; it fails if the parent is
// missing.
func Mkdir(name string, perm fs.FileMode) error {
	return wrapPath(os.Mkdir(name, perm), OpCreateDir, name)
}

// MkdirAll creates the named directory along with any missing parents.
// It succeeds if the full path already exists.
func MkdirAll(name string, perm fs.FileMode) error {
	return wrapPath(os.MkdirAll(name, perm), OpCreateDir, name)
}

// Remove removes the named file or empty directory.
func Remove(name string) error {
	return wrapPath(os.Remove(name), OpRemoveFile, name)
}

// RemoveDir removes the named directory; the directory must be empty.
func RemoveDir(name string) error {
	return wrapPath(os.Remove(name), OpRemoveDir, name)
}

// RemoveAll removes the named path and everything below it.
func RemoveAll(name string) error {
	return wrapPath(os.RemoveAll(name), OpRemoveDir, name)
}

// Rename renames (moves) 'from' to 'to'.
func Rename(from, to string) error {
	return wrapLink(os.Rename(from, to), LinkRename, from, to)
}

// Link creates 'to' as a hard link to 'from'.
func Link(from, to string) error {
	return wrapLink(os.Link(from, to), LinkHard, from, to)
}

// Symlink creates 'to' as a symbolic link pointing at 'from'.
func Symlink(from, to string) error {
	return wrapLink(os.Symlink(from, to), LinkSymlink, from, to)
}

// Readlink returns the target of the named symbolic link.
func Readlink(name string) (string, error) {
	s, err := os.Readlink(name)
	if err != nil {
		return "", wrapPath(err, OpReadLink, name)
	}
	return s, nil
}

// Stat returns metadata of the named file, following symlinks.
func Stat(name string) (fs.FileInfo, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, wrapPath(err, OpStat, name)
	}
	return fi, nil
}

// Lstat returns metadata of the named file without following a
// trailing symlink.
func Lstat(name string) (fs.FileInfo, error) {
	fi, err := os.Lstat(name)
	if err != nil {
		return nil, wrapPath(err, OpLstat, name)
	}
	return fi, nil
}

// Chmod changes the permission bits of the named file.
func Chmod(name string, mode fs.FileMode) error {
	return wrapPath(os.Chmod(name, mode), OpChmod, name)
}

// Truncate changes the size of the named file.
func Truncate(name string, size int64) error {
	return wrapPath(os.Truncate(name, size), OpSetLen, name)
}

// Canonicalize returns the absolute path of 'name' with all symlinks
// resolved.
func Canonicalize(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", wrapPath(err, OpCanonicalize, name)
	}

	p, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", wrapPath(err, OpCanonicalize, name)
	}
	return p, nil
}

// Exists reports whether the named path exists. Only a definitive
// answer is ever returned without error; a stat failure that is not
// "not found" is surfaced as an error.
func Exists(name string) (bool, error) {
	_, err := os.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, wrapPath(err, OpExists, name)
}
