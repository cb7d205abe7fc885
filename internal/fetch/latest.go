package fetch

import (
	"context"
	"sync"
)

// Latest hands out contexts such that, per key, only the newest holder
// stays alive: binding a key cancels the previous in-flight context. A
// stale response can therefore never land after a newer one was requested.
type Latest struct {
	mu       sync.Mutex
	inflight map[string]*binding
}

type binding struct {
	cancel context.CancelFunc
}

func NewLatest() *Latest {
	return &Latest{inflight: make(map[string]*binding)}
}

// Bind derives a context for the newest request under key. The returned
// release must be called when the request finishes.
func (l *Latest) Bind(ctx context.Context, key string) (context.Context, context.CancelFunc) {
	cctx, cancel := context.WithCancel(ctx)
	b := &binding{cancel: cancel}

	l.mu.Lock()
	if prev, ok := l.inflight[key]; ok {
		prev.cancel()
	}
	l.inflight[key] = b
	l.mu.Unlock()

	release := func() {
		l.mu.Lock()
		if l.inflight[key] == b {
			delete(l.inflight, key)
		}
		l.mu.Unlock()
		cancel()
	}
	return cctx, release
}
