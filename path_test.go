// path_test.go - path convenience method tests
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
	"path/filepath"
	"testing"
)

func TestPathMethods(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	p := Path(tmpdir).Join("sub", "x.txt")
	assert(string(p) == filepath.Join(tmpdir, "sub", "x.txt"), "join %q", p)

	err := mkfile(string(p), []byte("body"))
	assert(err == nil, "mkfile %s: %s", p, err)

	got, err := p.ReadFile()
	assert(err == nil, "readfile: %s", err)
	assert(string(got) == "body", "read back %q", string(got))

	fi, err := p.Stat()
	assert(err == nil, "stat: %s", err)
	assert(fi.Size() == 4, "size %d; want 4", fi.Size())

	ok, err := p.Exists()
	assert(err == nil && ok, "exists (err %v)", err)
}

// methods must produce the identical wrapped error as the free
// functions they delegate to
func TestPathErrorsIdentical(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	p := Path(tmpdir).Join("missing")

	_, merr := p.Stat()
	_, ferr := Stat(string(p))
	assert(merr != nil && ferr != nil, "stat of missing path succeeded")
	assert(merr.Error() == ferr.Error(), "method %q vs free %q", merr, ferr)

	_, merr = p.Open()
	_, ferr = Open(string(p))
	assert(merr != nil && ferr != nil, "open of missing path succeeded")
	assert(merr.Error() == ferr.Error(), "method %q vs free %q", merr, ferr)
}
