// copy_test.go - file copy tests
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
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCopyRoundTrip(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "file-a")
	dst := filepath.Join(tmpdir, "file-b")

	data := bytes.Repeat([]byte("copy me around "), 4096)
	err := mkfile(src, data)
	assert(err == nil, "mkfile %s: %s", src, err)

	n, err := Copy(src, dst)
	assert(err == nil, "copy %s to %s: %s", src, dst, err)
	assert(n == int64(len(data)), "copied %d bytes; want %d", n, len(data))

	ssum, err := fileCksum(src)
	assert(err == nil, "cksum %s: %s", src, err)
	dsum, err := fileCksum(dst)
	assert(err == nil, "cksum %s: %s", dst, err)
	assert(byteEq(ssum, dsum), "cksum mismatch after copy")
}

func TestCopyOverwrites(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "src")
	dst := filepath.Join(tmpdir, "dst")
	err := mkfile(src, []byte("short"))
	assert(err == nil, "mkfile: %s", err)
	err = mkfile(dst, bytes.Repeat([]byte("long"), 100))
	assert(err == nil, "mkfile: %s", err)

	_, err = Copy(src, dst)
	assert(err == nil, "copy over existing: %s", err)

	got, err := os.ReadFile(dst)
	assert(err == nil, "readfile: %s", err)
	assert(string(got) == "short", "dst not truncated: %d bytes", len(got))
}

func TestCopyPerms(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "src")
	dst := filepath.Join(tmpdir, "dst")
	err := mkfile(src, []byte("x"))
	assert(err == nil, "mkfile: %s", err)
	err = os.Chmod(src, 0750)
	assert(err == nil, "chmod: %s", err)

	_, err = Copy(src, dst)
	assert(err == nil, "copy: %s", err)

	fi, err := os.Stat(dst)
	assert(err == nil, "stat: %s", err)
	assert(fi.Mode().Perm() == 0750, "dst perm %o; want 0750", fi.Mode().Perm())
}

func TestCopyNonRegular(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	dst := filepath.Join(tmpdir, "dst")
	_, err := Copy(tmpdir, dst)
	assert(err != nil, "copy of a directory succeeded")
}

func TestCopyEmptyFile(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "empty")
	dst := filepath.Join(tmpdir, "empty-copy")
	err := mkfile(src, nil)
	assert(err == nil, "mkfile: %s", err)

	n, err := Copy(src, dst)
	assert(err == nil, "copy: %s", err)
	assert(n == 0, "copied %d bytes from empty file", n)

	fi, err := os.Stat(dst)
	assert(err == nil, "stat: %s", err)
	assert(fi.Size() == 0, "dst size %d; want 0", fi.Size())
}
