// dir_test.go - lazy directory iteration tests
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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadDirEnumeratesOnce(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	names := []string{"a", "b", "c", "d", "e"}
	for _, nm := range names {
		err := mkfile(filepath.Join(tmpdir, nm), []byte(nm))
		assert(err == nil, "mkfile %s: %s", nm, err)
	}
	err := os.Mkdir(filepath.Join(tmpdir, "sub"), 0700)
	assert(err == nil, "mkdir sub: %s", err)

	d, err := ReadDir(tmpdir)
	assert(err == nil, "readdir %s: %s", tmpdir, err)

	seen := make(map[string]int)
	for {
		ent, err := d.Next()
		if err == io.EOF {
			break
		}
		assert(err == nil, "next: %s", err)
		seen[ent.Name()]++

		wantPath := filepath.Join(tmpdir, ent.Name())
		assert(ent.Path() == wantPath, "path %q; want %q", ent.Path(), wantPath)
	}

	assert(len(seen) == len(names)+1, "saw %d entries; want %d", len(seen), len(names)+1)
	for nm, n := range seen {
		assert(n == 1, "entry %s seen %d times", nm, n)
	}
	assert(seen["sub"] == 1, "subdir not enumerated")
}

func TestReadDirEntriesIterator(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	for i := 0; i < 3; i++ {
		err := mkfile(filepath.Join(tmpdir, fmt.Sprintf("f%d", i)), nil)
		assert(err == nil, "mkfile: %s", err)
	}

	d, err := ReadDir(tmpdir)
	assert(err == nil, "readdir: %s", err)

	var n int
	for ent, err := range d.Entries() {
		assert(err == nil, "entries: %s", err)
		assert(ent != nil, "nil entry")
		n++
	}
	assert(n == 3, "iterator yielded %d entries; want 3", n)
}

func TestReadDirDeleted(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	dir := filepath.Join(tmpdir, "doomed")
	err := os.Mkdir(dir, 0700)
	assert(err == nil, "mkdir: %s", err)

	d, err := ReadDir(dir)
	assert(err == nil, "readdir: %s", err)
	d.Close()

	err = os.RemoveAll(dir)
	assert(err == nil, "removeall: %s", err)

	_, err = ReadDir(dir)
	assert(err != nil, "readdir of deleted dir succeeded")

	want := fmt.Sprintf("failed to read directory `%s`: ", dir)
	assert(strings.HasPrefix(err.Error(), want), "message %q; want prefix %q", err.Error(), want)
}

func TestDirEntryInfo(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	fn := filepath.Join(tmpdir, "sized")
	err := mkfile(fn, []byte("12345"))
	assert(err == nil, "mkfile: %s", err)

	d, err := ReadDir(tmpdir)
	assert(err == nil, "readdir: %s", err)

	ent, err := d.Next()
	assert(err == nil, "next: %s", err)
	assert(ent.Name() == "sized", "name %q", ent.Name())
	assert(!ent.IsDir(), "file reported as dir")

	fi, err := ent.Info()
	assert(err == nil, "info: %s", err)
	assert(fi.Size() == 5, "size %d; want 5", fi.Size())

	_, err = d.Next()
	assert(err == io.EOF, "expected EOF, got %v", err)
}
