// copy_darwin.go - macOS specific fd-to-fd copy
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

//go:build darwin

package fserr

import (
	"os"
)

// macOS has no fclonefile() that takes two already-open fds; and both
// clonefile(2) and fclonefileat(2) insist that the destination NOT
// exist. Since our caller has already created the destination, we are
// stuck with the mmap path.
func sysCopyFd(dst, src *os.File) error {
	return copyViaMmap(dst, src)
}
