// meta_nop.go - metadata preservation for everyone else
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

//go:build !unix

package fserr

import (
	"io/fs"
	"os"
)

func inoKey(_ fs.FileInfo) (string, uint64, bool) {
	return "", 0, false
}

// Best we can do without unix metadata: permissions and mtime.
func preserveMeta(dst, src string, fi fs.FileInfo) error {
	if fi.Mode()&fs.ModeSymlink != 0 {
		return nil
	}
	if err := os.Chmod(dst, fi.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, fi.ModTime(), fi.ModTime())
}
