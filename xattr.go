// xattr.go - extended attribute support
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
	"strings"
	"syscall"

	"github.com/pkg/xattr"
)

// Xattr is the collection of extended attributes of one file.
type Xattr map[string]string

// String returns the string representation of all the extended attributes
func (x Xattr) String() string {
	var s strings.Builder
	for k, v := range x {
		s.WriteString(fmt.Sprintf("%s=%s\n", k, v))
	}
	return s.String()
}

// GetXattr returns all the extended attributes of a file.
// This function will traverse symlinks.
func GetXattr(nm string) (Xattr, error) {
	return fetchXattr(nm, xattr.List, xattr.Get)
}

// LgetXattr returns all the extended attributes of a file. If 'nm' is
// a symlink, the attributes of the link itself are returned.
func LgetXattr(nm string) (Xattr, error) {
	return fetchXattr(nm, xattr.LList, xattr.LGet)
}

// SetXattr sets/updates the xattr list for a given file.
func SetXattr(nm string, x Xattr) error {
	for k, v := range x {
		if err := xattr.Set(nm, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// LsetXattr sets/updates the xattr list for a given file. If 'nm' is
// a symlink, the attributes are set on the link itself.
func LsetXattr(nm string, x Xattr) error {
	for k, v := range x {
		if err := xattr.LSet(nm, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// copyXattr clones all extended attributes of src onto dst without
// following symlinks. A no-op where the platform has no xattr support.
func copyXattr(dst, src string) error {
	if !xattr.XATTR_SUPPORTED {
		return nil
	}

	x, err := LgetXattr(src)
	if err != nil {
		// source file system has no xattr; nothing to clone
		if errAny(err, syscall.ENOTSUP) {
			return nil
		}
		return err
	}
	return LsetXattr(dst, x)
}

// handy helper that works for files and symlinks
func fetchXattr(nm string, list func(nm string) ([]string, error),
	get func(nm string, k string) ([]byte, error)) (Xattr, error) {
	keys, err := list(nm)
	if err != nil {
		return nil, err
	}

	x := make(Xattr)
	for _, k := range keys {
		b, err := get(nm, k)
		if err != nil {
			return nil, err
		}
		x[k] = string(b)
	}
	return x, nil
}
