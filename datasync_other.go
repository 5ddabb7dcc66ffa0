// datasync_other.go - data-only sync for platforms without fdatasync
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

//go:build !linux

package fserr

// SyncData flushes file data to stable storage; platforms without a
// data-only sync get a full sync.
func (f *File) SyncData() error {
	return wrapPath(f.f.Sync(), OpSync, f.name)
}
