// fs_test.go - path operation tests
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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestReadWriteFile(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	fn := filepath.Join(tmpdir, "rw.txt")
	data := bytes.Repeat([]byte("abcdefgh"), 1024)

	err := WriteFile(fn, data, 0600)
	assert(err == nil, "writefile %s: %s", fn, err)

	got, err := ReadFile(fn)
	assert(err == nil, "readfile %s: %s", fn, err)
	assert(byteEq(got, data), "round trip mismatch: %d bytes vs %d", len(got), len(data))

	// empty file
	empty := filepath.Join(tmpdir, "empty")
	err = WriteFile(empty, nil, 0600)
	assert(err == nil, "writefile %s: %s", empty, err)
	got, err = ReadFile(empty)
	assert(err == nil, "readfile %s: %s", empty, err)
	assert(len(got) == 0, "empty file read %d bytes", len(got))
}

func TestMkdir(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	deep := filepath.Join(tmpdir, "a", "b", "c")
	err := Mkdir(deep, 0700)
	assert(err != nil, "mkdir with missing parents succeeded")

	want := fmt.Sprintf("failed to create directory `%s`: ", deep)
	assert(strings.HasPrefix(err.Error(), want), "message %q; want prefix %q", err.Error(), want)

	err = MkdirAll(deep, 0700)
	assert(err == nil, "mkdirall %s: %s", deep, err)

	// idempotent over a fully-existing path
	err = MkdirAll(deep, 0700)
	assert(err == nil, "mkdirall on existing tree: %s", err)

	err = Mkdir(filepath.Join(tmpdir, "a", "b", "d"), 0700)
	assert(err == nil, "mkdir single level: %s", err)
}

func TestRemove(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	fn := filepath.Join(tmpdir, "victim")
	err := mkfile(fn, []byte("x"))
	assert(err == nil, "mkfile %s: %s", fn, err)

	err = Remove(fn)
	assert(err == nil, "remove %s: %s", fn, err)

	ok, err := Exists(fn)
	assert(err == nil, "exists %s: %s", fn, err)
	assert(!ok, "%s still exists after remove", fn)

	dir := filepath.Join(tmpdir, "d")
	err = MkdirAll(filepath.Join(dir, "sub"), 0700)
	assert(err == nil, "mkdirall: %s", err)

	// non-empty dir
	err = RemoveDir(dir)
	assert(err != nil, "removedir on non-empty dir succeeded")
	var pe *PathError
	assert(errors.As(err, &pe), "not a *PathError: %T", err)
	assert(pe.Op == OpRemoveDir, "op %v; want OpRemoveDir", pe.Op)

	err = RemoveAll(dir)
	assert(err == nil, "removeall %s: %s", dir, err)
}

func TestRenameAndLink(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	a := filepath.Join(tmpdir, "a")
	b := filepath.Join(tmpdir, "b")
	err := mkfile(a, []byte("payload"))
	assert(err == nil, "mkfile %s: %s", a, err)

	err = Rename(a, b)
	assert(err == nil, "rename: %s", err)

	ok, err := Exists(a)
	assert(err == nil && !ok, "src still exists after rename (err %v)", err)

	c := filepath.Join(tmpdir, "c")
	err = Link(b, c)
	assert(err == nil, "link: %s", err)

	got, err := ReadFile(c)
	assert(err == nil, "readfile via hardlink: %s", err)
	assert(string(got) == "payload", "hardlink content %q", string(got))
}

func TestSymlinkReadlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privilege on windows")
	}

	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	targ := filepath.Join(tmpdir, "target")
	link := filepath.Join(tmpdir, "link")
	err := mkfile(targ, []byte("pointed-at"))
	assert(err == nil, "mkfile %s: %s", targ, err)

	err = Symlink(targ, link)
	assert(err == nil, "symlink: %s", err)

	back, err := Readlink(link)
	assert(err == nil, "readlink: %s", err)
	assert(back == targ, "readlink %q; want %q", back, targ)

	// lstat sees the link, stat sees the target
	li, err := Lstat(link)
	assert(err == nil, "lstat: %s", err)
	assert(li.Mode()&os.ModeSymlink != 0, "lstat did not see a symlink")

	si, err := Stat(link)
	assert(err == nil, "stat: %s", err)
	assert(si.Mode().IsRegular(), "stat did not follow the symlink")

	cl, err := Canonicalize(link)
	assert(err == nil, "canonicalize link: %s", err)
	ct, err := Canonicalize(targ)
	assert(err == nil, "canonicalize target: %s", err)
	assert(cl == ct, "canonicalize %q != %q", cl, ct)
}

func TestExists(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	ok, err := Exists(filepath.Join(tmpdir, "nope"))
	assert(err == nil, "exists: %s", err)
	assert(!ok, "missing path reported existing")

	ok, err = Exists(tmpdir)
	assert(err == nil, "exists: %s", err)
	assert(ok, "tmpdir reported missing")
}

func TestTruncatePath(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	fn := filepath.Join(tmpdir, "t")
	err := mkfile(fn, []byte("0123456789"))
	assert(err == nil, "mkfile %s: %s", fn, err)

	err = Truncate(fn, 3)
	assert(err == nil, "truncate: %s", err)

	fi, err := Stat(fn)
	assert(err == nil, "stat: %s", err)
	assert(fi.Size() == 3, "size %d; want 3", fi.Size())
}
