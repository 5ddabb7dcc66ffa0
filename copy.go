// copy.go - file copy with contextual errors
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

package fserr

import (
	"fmt"
	"os"
)

// Copy copies the contents and permission bits of the regular file
// 'from' to 'to', creating or truncating 'to' as needed. It returns
// the number of bytes copied. The copy uses the best primitive the
// platform offers (reflink, copy_file_range(2), clonefile(2)) and
// falls back to a streaming copy via mmap(2).
//
// All failures carry both paths in from-to order.
func Copy(from, to string) (int64, error) {
	n, err := doCopy(to, from)
	if err != nil {
		return 0, wrapLink(err, LinkCopy, from, to)
	}
	return n, nil
}

func doCopy(dst, src string) (int64, error) {
	s, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	fi, err := s.Stat()
	if err != nil {
		return 0, err
	}
	if !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%s: not a regular file", src)
	}

	d, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return 0, err
	}

	err = sysCopyFd(d, s)
	if err == nil {
		// the dest may have pre-existed with different perm bits
		err = d.Chmod(fi.Mode().Perm())
	}
	if cerr := d.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// write all of 'b' to d; os.File.Write already loops over short
// writes, this guards the raw descriptor paths.
func fullWrite(d *os.File, b []byte) (int, error) {
	var z int
	for len(b) > 0 {
		m, err := d.Write(b)
		if err != nil {
			return z, err
		}
		b = b[m:]
		z += m
	}
	return z, nil
}
