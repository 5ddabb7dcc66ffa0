// file_unix.go - unix only file handle operations
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

//go:build unix

package fserr

import (
	"os"

	"golang.org/x/sys/unix"
)

// Chown changes the owner and group of the open file. A uid or gid of
// -1 leaves that component unchanged.
func (f *File) Chown(uid, gid int) error {
	return wrapPath(f.f.Chown(uid, gid), OpChown, f.name)
}

// TryClone duplicates the underlying descriptor and returns a new
// File for it. The clone shares the file position and flags with the
// original; both must be closed independently.
func (f *File) TryClone() (*File, error) {
	nfd, err := unix.Dup(int(f.Fd()))
	if err != nil {
		return nil, wrapPath(err, OpClone, f.name)
	}
	return &File{f: os.NewFile(uintptr(nfd), f.name), name: f.name}, nil
}
