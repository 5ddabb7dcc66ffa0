// errors.go - contextual errors for fserr
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
	"io/fs"
	"os"
)

// Op identifies the filesystem operation that failed. Every Op maps
// to exactly one message template in PathError.Error().
type Op uint

const (
	OpOpen Op = 1 + iota
	OpCreate
	OpCreateDir
	OpSync
	OpSetLen
	OpStat
	OpClone
	OpChmod
	OpRead
	OpSeek
	OpWrite
	OpClose
	OpReadDir
	OpRemoveFile
	OpRemoveDir
	OpCanonicalize
	OpReadLink
	OpLstat
	OpExists

	// unix only
	OpChown
	OpLchown
	OpChroot
	OpMknod
	OpReadAt
	OpWriteAt

	// windows only
	OpSeekRead
	OpSeekWrite
)

var opVerb = map[Op]string{
	OpOpen:         "open file",
	OpCreate:       "create file",
	OpCreateDir:    "create directory",
	OpSync:         "sync file",
	OpSetLen:       "set length of file",
	OpStat:         "query metadata of file",
	OpClone:        "clone handle for file",
	OpChmod:        "set permissions for file",
	OpRead:         "read from file",
	OpSeek:         "seek in file",
	OpWrite:        "write to file",
	OpClose:        "close file",
	OpReadDir:      "read directory",
	OpRemoveFile:   "remove file",
	OpRemoveDir:    "remove directory",
	OpCanonicalize: "canonicalize path",
	OpReadLink:     "read symbolic link",
	OpLstat:        "query metadata of symlink",
	OpExists:       "check existence of file",
	OpChown:        "change ownership of file",
	OpLchown:       "change ownership of symlink",
	OpChroot:       "change root to directory",
	OpMknod:        "create device node",
	OpReadAt:       "read with offset from",
	OpWriteAt:      "write with offset to",
	OpSeekRead:     "seek and read from",
	OpSeekWrite:    "seek and write to",
}

// String returns the verb phrase for the operation.
func (op Op) String() string {
	if s, ok := opVerb[op]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", uint(op))
}

// PathError is the error returned by every single-path operation in
// this package. It names the attempted operation and the path involved
// while keeping the underlying error inspectable via Unwrap() - so
// errors.Is(err, fs.ErrNotExist) et al continue to work.
type PathError struct {
	Op   Op
	Path string
	Err  error
}

// Error returns a string representation of PathError
func (e *PathError) Error() string {
	return fmt.Sprintf("failed to %s `%s`: %s", e.Op, e.Path, e.Err.Error())
}

// Unwrap returns the underlying wrapped error
func (e *PathError) Unwrap() error {
	return e.Err
}

// LinkOp identifies a two-path operation that failed.
type LinkOp uint

const (
	LinkCopy LinkOp = 1 + iota
	LinkHard
	LinkRename
	LinkSymlink

	// windows only
	LinkSymlinkFile
	LinkSymlinkDir
)

var linkVerb = map[LinkOp]string{
	LinkCopy:        "copy file",
	LinkHard:        "hardlink file",
	LinkRename:      "rename file",
	LinkSymlink:     "symlink file",
	LinkSymlinkFile: "symlink file",
	LinkSymlinkDir:  "symlink dir",
}

// String returns the verb phrase for the operation.
func (op LinkOp) String() string {
	if s, ok := linkVerb[op]; ok {
		return s
	}
	return fmt.Sprintf("linkop(%d)", uint(op))
}

// LinkError is the error returned by every two-path operation (copy,
// rename, hardlink, symlink). From and To are always in the documented
// source-to-destination order of the operation - regardless of which
// side the OS blamed.
type LinkError struct {
	Op   LinkOp
	From string
	To   string
	Err  error
}

// Error returns a string representation of LinkError
func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to %s from %s to %s: %s", e.Op, e.From, e.To, e.Err.Error())
}

// Unwrap returns the underlying wrapped error
func (e *LinkError) Unwrap() error {
	return e.Err
}

var _ error = &PathError{}
var _ error = &LinkError{}

// rawCause strips the stdlib's own path-annotated wrappers so we don't
// print the path twice; the errno underneath keeps its classification.
func rawCause(err error) error {
	switch e := err.(type) {
	case *fs.PathError:
		return e.Err
	case *os.LinkError:
		return e.Err
	case *os.SyscallError:
		return e.Err
	}
	return err
}

func wrapPath(err error, op Op, path string) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: op, Path: path, Err: rawCause(err)}
}

func wrapLink(err error, op LinkOp, from, to string) error {
	if err == nil {
		return nil
	}
	return &LinkError{Op: op, From: from, To: to, Err: rawCause(err)}
}
