// workpool.go - per-cpu worker pool with error harvesting
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
	"runtime"
	"sync"
	"sync/atomic"
)

// workPool runs a fixed set of goroutines that each process units of
// work submitted via Submit(). Worker errors are harvested and
// returned, joined, from Wait(). Usage:
//
//	wp := newWorkPool[item](n, func(cpu int, it item) error { ... })
//	wp.Submit(it)
//	...
//	wp.Close()
//	err := wp.Wait()
type workPool[Work any] struct {
	stopped atomic.Bool
	wg      sync.WaitGroup
	ch      chan Work

	ech  chan error
	ewg  sync.WaitGroup
	errs []error
}

func newWorkPool[Work any](nworkers int, fp func(cpu int, w Work) error) *workPool[Work] {
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}

	wp := &workPool[Work]{
		ch:  make(chan Work, nworkers),
		ech: make(chan error, 1),
	}

	wp.wg.Add(nworkers)
	for i := 0; i < nworkers; i++ {
		go func(cpu int) {
			defer func() {
				if e := recover(); e != nil {
					wp.ech <- fmt.Errorf("workpool: panic: %v", e)
				}
				wp.wg.Done()
			}()

			for w := range wp.ch {
				if err := fp(cpu, w); err != nil {
					wp.ech <- err
				}
			}
		}(i)
	}

	wp.ewg.Add(1)
	go func() {
		for e := range wp.ech {
			wp.errs = append(wp.errs, e)
		}
		wp.ewg.Done()
	}()

	return wp
}

// Submit hands one unit of work to the pool; the pool must not be
// closed.
func (wp *workPool[Work]) Submit(w Work) {
	if wp.stopped.Load() {
		panic("workpool: submit after close")
	}
	wp.ch <- w
}

// Close signals that no more work is forthcoming.
func (wp *workPool[Work]) Close() {
	if wp.stopped.Swap(true) {
		panic("workpool: closed twice")
	}
	close(wp.ch)
}

// Wait blocks until all submitted work is done and returns the joined
// worker errors, if any. The pool is unusable afterwards.
func (wp *workPool[Work]) Wait() error {
	wp.wg.Wait()
	close(wp.ech)
	wp.ewg.Wait()
	return errors.Join(wp.errs...)
}
