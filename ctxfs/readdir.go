// readdir.go - context-aware directory iteration
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

package ctxfs

import (
	"context"
	"io"
	"iter"
	"sync"

	fserr "github.com/opencoff/go-fserr"
)

// Dir is a forward-only, non-restartable stream of directory entries,
// polled one entry at a time under a caller supplied context.
//
// A single puller goroutine owns the underlying blocking stream and
// hands entries over a channel; a cancelled Next only abandons the
// channel receive, so the entry stays queued for the next call and no
// two polls ever touch the blocking stream concurrently.
type Dir struct {
	mu sync.Mutex
	d  *fserr.Dir

	ch     chan dirResult
	closed chan struct{}
	once   sync.Once

	// terminal error, sticky; single-consumer like the blocking stream
	term error
}

type dirResult struct {
	ent *fserr.DirEntry
	err error
}

// ReadDir opens the named directory for iteration.
func ReadDir(ctx context.Context, name string) (*Dir, error) {
	dd, err := run1(ctx, func() (*fserr.Dir, error) { return fserr.ReadDir(name) })
	if err != nil {
		return nil, err
	}

	d := &Dir{
		d:      dd,
		ch:     make(chan dirResult),
		closed: make(chan struct{}),
	}
	go d.pull()
	return d, nil
}

// pull is the only caller of the blocking Next; it stops at the first
// terminal result or when the stream is closed.
func (d *Dir) pull() {
	for {
		d.mu.Lock()
		ent, err := d.d.Next()
		d.mu.Unlock()

		select {
		case d.ch <- dirResult{ent, err}:
		case <-d.closed:
			return
		}
		if err != nil {
			return
		}
	}
}

// Next returns the next directory entry; io.EOF after the last one.
// A cancelled call leaves the pending entry queued for the next call.
func (d *Dir) Next(ctx context.Context) (*fserr.DirEntry, error) {
	if d.term != nil {
		return nil, d.term
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case r := <-d.ch:
		if r.err != nil {
			d.term = r.err
		}
		return r.ent, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Entries returns the remaining entries as a single-use iterator.
// Iteration stops at the end of the directory, on the first error, or
// when ctx is cancelled (yielding ctx.Err()).
func (d *Dir) Entries(ctx context.Context) iter.Seq2[*fserr.DirEntry, error] {
	return func(yield func(*fserr.DirEntry, error) bool) {
		for {
			ent, err := d.Next(ctx)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(ent, nil) {
				return
			}
		}
	}
}

// Close releases the directory handle and stops the puller.
func (d *Dir) Close() error {
	var err error
	d.once.Do(func() {
		close(d.closed)
		d.mu.Lock()
		err = d.d.Close()
		d.mu.Unlock()
	})
	return err
}
