// datasync_linux.go - fdatasync(2)
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

//go:build linux

package fserr

import (
	"golang.org/x/sys/unix"
)

// SyncData flushes file data - but not metadata - to stable storage.
func (f *File) SyncData() error {
	return wrapPath(unix.Fdatasync(int(f.Fd())), OpSync, f.name)
}
