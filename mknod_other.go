// mknod_other.go - mknod for platforms without it
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

//go:build !linux && !darwin && !freebsd

package fserr

import (
	"fmt"
	"io/fs"
)

func mknod(dst string, _ fs.FileInfo) error {
	return fmt.Errorf("mknod: %s: not supported on this platform", dst)
}
