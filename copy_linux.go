// copy_linux.go - Linux specific fd-to-fd copy
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
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// copy in chunks of 1GB
const _ioChunkSize int = 1024 * 1048576

// Try reflinks first, then copy_file_range(2); fall back to a copy
// via mmap(2) when the file system supports neither (eg cross-device).
func sysCopyFd(dst, src *os.File) error {
	d := int(dst.Fd())
	s := int(src.Fd())

	if err := unix.IoctlFileClone(d, s); err == nil {
		return nil
	}

	st, err := src.Stat()
	if err != nil {
		return err
	}

	var roff, woff int64
	sz := st.Size()
	for sz > 0 {
		n := min(_ioChunkSize, int(sz))
		m, err := unix.CopyFileRange(s, &roff, d, &woff, n, 0)
		if err != nil {
			if errAny(err, syscall.ENOSYS, syscall.EXDEV, syscall.EINVAL, syscall.EOPNOTSUPP) {
				return copyViaMmap(dst, src)
			}
			return err
		}
		if m == 0 {
			return fmt.Errorf("copy_file_range: zero sized transfer")
		}
		sz -= int64(m)
		roff += int64(m)
		woff += int64(m)
	}
	return nil
}
