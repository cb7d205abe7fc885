// Package fetch implements the request-shaping primitives the listing and
// search screens rely on: trailing-edge debounce of rapid input and
// newest-wins supersession of in-flight calls.
package fetch

import (
	"context"
	"sync"
	"time"
)

// Fetcher runs the one upstream call a debounced burst collapses into.
type Fetcher[T any] func(ctx context.Context, term string) (T, error)

// Debouncer collapses rapid submissions for the same key into a single
// upstream call issued after the configured quiet period, reflecting only
// the final term. Every waiter of the burst receives that one result.
type Debouncer[T any] struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingCall[T]
}

type pendingCall[T any] struct {
	term  string
	ctx   context.Context
	fn    Fetcher[T]
	timer *time.Timer
	done  chan struct{}
	val   T
	err   error
}

func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{
		delay:   delay,
		pending: make(map[string]*pendingCall[T]),
	}
}

// Do submits term for key and blocks until the burst settles and fn runs,
// or until ctx is done.
func (d *Debouncer[T]) Do(ctx context.Context, key, term string, fn Fetcher[T]) (T, error) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if ok && p.timer.Reset(d.delay) {
		// still within the quiet window: the newest term wins
		p.term = term
		p.ctx = ctx
		p.fn = fn
	} else {
		// no burst in flight, or the previous one expired and is about to
		// fire with the waiters it already owns; start a fresh burst
		p = &pendingCall[T]{term: term, ctx: ctx, fn: fn, done: make(chan struct{})}
		call := p
		p.timer = time.AfterFunc(d.delay, func() { d.fire(key, call) })
		d.pending[key] = p
	}
	d.mu.Unlock()

	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// fire settles exactly the burst it was armed for. The map entry may
// already belong to a newer burst; that one has its own timer.
func (d *Debouncer[T]) fire(key string, p *pendingCall[T]) {
	d.mu.Lock()
	if d.pending[key] == p {
		delete(d.pending, key)
	}
	term, ctx, fn := p.term, p.ctx, p.fn
	d.mu.Unlock()

	// detached from any single waiter: the latest submitter cancelling
	// must not fail the waiters still holding healthy requests
	p.val, p.err = fn(context.WithoutCancel(ctx), term)
	close(p.done)
}
