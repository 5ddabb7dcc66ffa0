// mknod_freebsd.go - mknod(2) for freebsd
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

//go:build freebsd

package fserr

import (
	"fmt"
	"io/fs"
	"syscall"
)

func mknod(dst string, fi fs.FileInfo) error {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fmt.Errorf("mknod: %s: no stat info", fi.Name())
	}
	return syscall.Mknod(dst, uint32(st.Mode), st.Rdev)
}

// Mknod creates a filesystem node (device special file or fifo) with
// the given raw mode and device number.
func Mknod(name string, mode uint32, dev int) error {
	return wrapPath(syscall.Mknod(name, mode, uint64(dev)), OpMknod, name)
}
