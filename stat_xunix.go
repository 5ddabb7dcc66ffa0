// stat_xunix.go - stat timestamps for the remaining unixes
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

//go:build unix && !linux && !darwin && !freebsd

package fserr

import (
	"io/fs"
	"time"
)

func statTimes(fi fs.FileInfo) (atim, mtim time.Time) {
	return fi.ModTime(), fi.ModTime()
}
