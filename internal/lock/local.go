// Package lock serialises mutations of a single entity (allocation request,
// SOS request, missing-person case). Waiting is bounded: a caller that cannot
// get the lock in time receives models.ErrConflict and must re-fetch.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/relief_coordination_system/internal/models"
)

// LocalLocker - блокировки в памяти процесса, для одного инстанса и тестов
type LocalLocker struct {
	wait time.Duration

	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

// NewLocalLocker creates a locker that waits at most wait for a busy key.
func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		wait:  wait,
		slots: make(map[string]*slot),
	}
}

// Lock acquires key and returns its release func.
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	s := l.acquireSlot(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case s.ch <- struct{}{}:
	case <-timer.C:
		l.releaseSlot(key, s)
		return nil, fmt.Errorf("lock %s busy: %w", key, models.ErrConflict)
	case <-ctx.Done():
		l.releaseSlot(key, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.releaseSlot(key, s)
		})
	}, nil
}

func (l *LocalLocker) acquireSlot(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *LocalLocker) releaseSlot(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}
