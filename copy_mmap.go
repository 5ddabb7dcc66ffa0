// copy_mmap.go - streaming copy using mmap(2)
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
	"errors"
	"os"

	"github.com/opencoff/go-mmap"
)

// copy src to dst by mapping src in chunks and writing the blocks out.
func copyViaMmap(dst, src *os.File) error {
	_, err := mmap.Reader(src, func(b []byte) error {
		_, err := fullWrite(dst, b)
		return err
	})
	return err
}

func errAny(err error, targs ...error) bool {
	for _, t := range targs {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
