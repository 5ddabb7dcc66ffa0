// os_windows.go - windows only operations
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

//go:build windows

package fserr

import (
	"io"
	"os"
)

// Windows distinguishes file symlinks from directory symlinks; the
// caller must pick the right one for the link target.

// SymlinkFile creates 'to' as a symbolic link to the file 'from'.
func SymlinkFile(from, to string) error {
	return wrapLink(os.Symlink(from, to), LinkSymlinkFile, from, to)
}

// SymlinkDir creates 'to' as a symbolic link to the directory 'from'.
func SymlinkDir(from, to string) error {
	return wrapLink(os.Symlink(from, to), LinkSymlinkDir, from, to)
}

// SeekRead reads len(b) bytes from absolute offset 'off'; the file
// cursor position afterwards is unspecified.
func (f *File) SeekRead(b []byte, off int64) (int, error) {
	n, err := f.f.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return n, wrapPath(err, OpSeekRead, f.name)
	}
	return n, err
}

// SeekWrite writes b at absolute offset 'off'; the file cursor
// position afterwards is unspecified.
func (f *File) SeekWrite(b []byte, off int64) (int, error) {
	n, err := f.f.WriteAt(b, off)
	if err != nil {
		return n, wrapPath(err, OpSeekWrite, f.name)
	}
	return n, nil
}
