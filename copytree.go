// copytree.go - recursive tree copy
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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
)

type treeOpt struct {
	ncpu     int
	preserve bool
	excludes []string
}

// TreeOption controls the behavior of CopyAll.
type TreeOption func(o *treeOpt)

// WithConcurrency sets the number of copier goroutines; the default
// is the number of available CPUs.
func WithConcurrency(n int) TreeOption {
	return func(o *treeOpt) {
		o.ncpu = n
	}
}

// WithPreserve makes CopyAll clone ownership, permissions, timestamps
// and extended attributes of every entry onto its copy.
func WithPreserve() TreeOption {
	return func(o *treeOpt) {
		o.preserve = true
	}
}

// WithExcludes adds shell-glob patterns matched against the basename
// of each entry; matching entries (and matching subtrees) are skipped.
func WithExcludes(pats ...string) TreeOption {
	return func(o *treeOpt) {
		o.excludes = append(o.excludes, pats...)
	}
}

// one non-directory entry to copy
type copyOp struct {
	src, dst string
	fi       fs.FileInfo
}

type treeCopier struct {
	treeOpt

	pool  *workPool[copyOp]
	links *hardlinker

	// dirs in traversal order for the post-order metadata pass;
	// appended only by the synchronous descent.
	dirs []copyOp
}

// CopyAll copies the directory tree rooted at 'from' into 'to';
// entries like from/a/b end up as to/a/b. Regular files are copied
// with Copy, symlinks are recreated pointing at the same target,
// hardlink groups in the source are recreated as hardlink groups in
// the destination, and device nodes and fifos are recreated where the
// platform allows. File copies run on a pool of worker goroutines.
//
// Every failed entry is reported; one bad entry does not stop the
// rest of the tree.
func CopyAll(from, to string, opts ...TreeOption) error {
	opt := treeOpt{}
	for _, fp := range opts {
		fp(&opt)
	}

	fi, err := Lstat(from)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return wrapLink(fmt.Errorf("source is not a directory"), LinkCopy, from, to)
	}

	tc := &treeCopier{
		treeOpt: opt,
		links:   newHardlinker(),
	}
	tc.pool = newWorkPool[copyOp](opt.ncpu, func(_ int, w copyOp) error {
		return tc.copyEntry(w)
	})

	derr := tc.descend(from, to, fi)
	tc.pool.Close()
	werr := tc.pool.Wait()

	// the deferred hardlinks; all data copies are done by now
	var lerrs []error
	tc.links.hardlinks(func(dst, orig string) {
		if err := Link(orig, dst); err != nil {
			lerrs = append(lerrs, err)
		}
	})

	// directory modes last, deepest first: the descent widened them
	// with owner bits, and the preserve pass must run after all
	// writes into the directory
	var merrs []error
	for i := len(tc.dirs) - 1; i >= 0; i-- {
		d := tc.dirs[i]
		if opt.preserve {
			if err := preserveMeta(d.dst, d.src, d.fi); err != nil {
				merrs = append(merrs, wrapLink(err, LinkCopy, d.src, d.dst))
			}
			continue
		}
		if err := Chmod(d.dst, d.fi.Mode().Perm()); err != nil {
			merrs = append(merrs, err)
		}
	}

	errs := append([]error{derr, werr}, append(lerrs, merrs...)...)
	return errors.Join(errs...)
}

// walk 'src' depth-first; directories are created inline, everything
// else is submitted to the pool.
func (tc *treeCopier) descend(src, dst string, fi fs.FileInfo) error {
	// the extra owner bits let us populate the copy even when the
	// source dir is read-only; the post-order pass restores the mode
	if err := MkdirAll(dst, fi.Mode().Perm()|0300); err != nil {
		return err
	}
	tc.dirs = append(tc.dirs, copyOp{src: src, dst: dst, fi: fi})

	d, err := ReadDir(src)
	if err != nil {
		return err
	}

	var errs []error
	for {
		ent, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, err)
			break
		}

		if tc.exclude(ent.Name()) {
			continue
		}

		efi, err := ent.Info()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		esrc := ent.Path()
		edst := filepath.Join(dst, ent.Name())
		if efi.IsDir() {
			if err := tc.descend(esrc, edst, efi); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		tc.pool.Submit(copyOp{src: esrc, dst: edst, fi: efi})
	}
	return errors.Join(errs...)
}

// copy one non-directory entry; run concurrently by the pool workers
func (tc *treeCopier) copyEntry(w copyOp) error {
	mode := w.fi.Mode()
	switch {
	case mode.IsRegular():
		if tc.links.track(w.fi, w.dst) {
			// another worker copies the data; we only owe a link
			return nil
		}
		if _, err := Copy(w.src, w.dst); err != nil {
			return err
		}

	case mode&fs.ModeSymlink != 0:
		targ, err := Readlink(w.src)
		if err != nil {
			return err
		}
		if err := Symlink(targ, w.dst); err != nil {
			return err
		}

	case mode&(fs.ModeDevice|fs.ModeNamedPipe) != 0:
		if err := mknod(w.dst, w.fi); err != nil {
			return wrapPath(err, OpMknod, w.dst)
		}

	default:
		return wrapLink(fmt.Errorf("unsupported file type %v", mode.Type()), LinkCopy, w.src, w.dst)
	}

	if tc.preserve {
		if err := preserveMeta(w.dst, w.src, w.fi); err != nil {
			return wrapLink(err, LinkCopy, w.src, w.dst)
		}
	}
	return nil
}

// return true iff 'nm' (a basename) matches one of the exclude globs
func (tc *treeCopier) exclude(nm string) bool {
	for _, pat := range tc.excludes {
		if ok, err := path.Match(pat, nm); err == nil && ok {
			return true
		}
	}
	return false
}
