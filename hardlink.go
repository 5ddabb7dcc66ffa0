// hardlink.go - tracking hardlinks across a tree copy
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
	"io/fs"

	"github.com/puzpuzpuz/xsync/v3"
)

// Only the source tree knows how many links the copier must recreate.
// The first destination we write for a multiply-linked source inode is
// remembered in 'm'; every later sighting of the same inode records
// new_dst -> orig_dst in 'links' and skips the data copy.

type hardlinker struct {
	// src dev:rdev:ino -> first dst written
	m *xsync.MapOf[string, string]

	// new dst -> orig dst
	links *xsync.MapOf[string, string]
}

func newHardlinker() *hardlinker {
	return &hardlinker{
		m:     xsync.NewMapOf[string, string](),
		links: xsync.NewMapOf[string, string](),
	}
}

// track records 'dst' against the source inode of 'fi'. It returns
// true if the data is already being copied elsewhere and 'dst' only
// needs a link created later.
func (h *hardlinker) track(fi fs.FileInfo, dst string) bool {
	key, nlink, ok := inoKey(fi)
	if !ok || nlink <= 1 || !fi.Mode().IsRegular() {
		return false
	}

	orig, loaded := h.m.LoadOrStore(key, dst)
	if loaded {
		h.links.Store(dst, orig)
		return true
	}
	return false
}

// hardlinks calls fp for every deferred link in (dst, orig) order.
func (h *hardlinker) hardlinks(fp func(dst, orig string)) {
	h.links.Range(func(dst, orig string) bool {
		fp(dst, orig)
		return true
	})
}
