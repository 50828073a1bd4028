// FILE: internal/host/lock.go
package host

import (
	"context"
	"sync/atomic"
)

// Lock is the host execution lock. Every Lua call runs while it is held;
// blocking engine calls release it for their duration.
type Lock struct {
	sem  chan struct{}
	held atomic.Bool
}

func NewLock() *Lock {
	return &Lock{sem: make(chan struct{}, 1)}
}

func (l *Lock) Lock() {
	l.sem <- struct{}{}
	l.held.Store(true)
}

func (l *Lock) Unlock() {
	l.held.Store(false)
	<-l.sem
}

// Held reports whether some stream currently owns the lock
func (l *Lock) Held() bool {
	return l.held.Load()
}

// acquire is Lock that gives up when ctx is done
func (l *Lock) acquire(ctx context.Context) error {
	select {
	case l.sem <- struct{}{}:
		l.held.Store(true)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
