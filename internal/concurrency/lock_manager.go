package concurrency

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// vendorLock is a per-vendor mutex plus the number of goroutines holding or
// waiting on it. The entry is dropped once refs reaches zero.
type vendorLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out one mutex per vendor. Entries live only while someone
// holds or waits on them, so looking up unknown vendor IDs does not grow the map.
type LockManager struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*vendorLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[uuid.UUID]*vendorLock)}
}

// Len returns the number of vendors currently locked or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

func (lm *LockManager) acquire(id uuid.UUID) *vendorLock {
	lm.mu.Lock()
	l, ok := lm.locks[id]
	if !ok {
		l = &vendorLock{}
		lm.locks[id] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()
	return l
}

func (lm *LockManager) release(id uuid.UUID, l *vendorLock) {
	l.mu.Unlock()

	lm.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, id)
	}
	lm.mu.Unlock()
}

// LockVendors locks every distinct vendor in ascending ID order and returns the
// matching unlock function. Two swaps over the same pair always lock in the
// same order, so they cannot deadlock.
func (lm *LockManager) LockVendors(ids ...uuid.UUID) (unlock func()) {
	ordered := slices.Clone(ids)
	slices.SortFunc(ordered, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	ordered = slices.Compact(ordered)

	held := make([]*vendorLock, 0, len(ordered))
	for _, id := range ordered {
		held = append(held, lm.acquire(id))
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			lm.release(ordered[i], held[i])
		}
	}
}
