// os_unix.go - unix only path operations
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
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Chown changes the owner and group of the named file, following
// symlinks. A uid or gid of -1 leaves that component unchanged.
func Chown(name string, uid, gid int) error {
	return wrapPath(os.Chown(name, uid, gid), OpChown, name)
}

// Lchown is Chown without following a trailing symlink.
func Lchown(name string, uid, gid int) error {
	return wrapPath(os.Lchown(name, uid, gid), OpLchown, name)
}

// Chroot changes the root directory of the calling process to the
// named directory.
func Chroot(name string) error {
	return wrapPath(unix.Chroot(name), OpChroot, name)
}

// Ino returns the inode number of the entry.
func (de *DirEntry) Ino() (uint64, error) {
	fi, err := de.Info()
	if err != nil {
		return 0, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, wrapPath(errors.New("no inode information"), OpStat, de.Path())
	}
	return st.Ino, nil
}
