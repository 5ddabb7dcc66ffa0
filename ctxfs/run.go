// run.go - cancellable wrappers around blocking calls
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

// Package ctxfs is the context-aware twin of package fserr: the same
// operations with the same contextual errors, except that every call
// takes a context.Context and returns early when it is cancelled.
//
// Cancellation abandons the in-flight operation - the blocking call
// keeps running in its goroutine until the OS completes it, and its
// result is discarded. There are no partial-completion guarantees
// beyond what the OS itself gives.
package ctxfs

import (
	"context"
)

// run0 runs fn in its own goroutine; on cancellation the result of fn
// is abandoned and ctx.Err() is returned instead.
func run0(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ch := make(chan error, 1)
	go func() {
		ch <- fn()
	}()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run1 is run0 for calls with one result value.
func run1[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v, err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
