// meta_unix.go - metadata preservation for unixish platforms
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
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// inoKey returns a unique key for the inode behind 'fi' along with its
// link count.
func inoKey(fi fs.FileInfo) (string, uint64, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return "", 0, false
	}
	return fmt.Sprintf("%d:%d:%d", st.Dev, st.Rdev, st.Ino), uint64(st.Nlink), true
}

// preserveMeta clones ownership, extended attributes, permissions and
// timestamps of the source entry described by 'fi' onto dst.
// Symlinks get ownership and xattr only; their mode and times are not
// independently settable.
func preserveMeta(dst, src string, fi fs.FileInfo) error {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if ok {
		if err := os.Lchown(dst, int(st.Uid), int(st.Gid)); err != nil {
			return err
		}
	}

	if err := copyXattr(dst, src); err != nil {
		return err
	}

	if fi.Mode()&fs.ModeSymlink != 0 {
		return nil
	}

	if err := os.Chmod(dst, fi.Mode().Perm()); err != nil {
		return err
	}

	atim, mtim := statTimes(fi)
	return os.Chtimes(dst, atim, mtim)
}
