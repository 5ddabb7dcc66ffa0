// stat_darbsd.go - stat timestamps on darwin and freebsd
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

//go:build darwin || freebsd

package fserr

import (
	"io/fs"
	"syscall"
	"time"
)

func statTimes(fi fs.FileInfo) (atim, mtim time.Time) {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		return ts2time(st.Atimespec), ts2time(st.Mtimespec)
	}
	return fi.ModTime(), fi.ModTime()
}

func ts2time(a syscall.Timespec) time.Time {
	return time.Unix(a.Sec, a.Nsec)
}
