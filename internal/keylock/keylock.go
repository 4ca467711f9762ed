// Package keylock provides per-entity mutual exclusion.
//
// Each key owns a single-slot semaphore. Waiters on a key are served in
// arrival order and a set of keys is always acquired in sorted order, so two
// callers locking overlapping sets cannot deadlock.
package keylock

import (
	"context"
	"slices"
	"sync"
)

const (
	TICK_KEY     = "economy:tick"
	SETTINGS_KEY = "economy:settings"
)

// ParcelKey returns the lock key of a parcel
func ParcelKey(id string) string {
	return "parcel:" + id
}

// StreetKey returns the lock key of a street
func StreetKey(id string) string {
	return "street:" + id
}

// OfferKey returns the lock key of an offer
func OfferKey(id string) string {
	return "offer:" + id
}

// Locker hands out per-key locks. The zero value is not usable; use New.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	sem  chan struct{}
	refs int
}

// New creates an empty locker
func New() *Locker {
	return &Locker{entries: make(map[string]*entry)}
}

// Lock acquires every key in sorted order and returns a function releasing them.
// If ctx ends while waiting, the keys acquired so far are released and ctx.Err() is returned.
func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys = Normalize(keys)

	held := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := l.acquire(ctx, key); err != nil {
			l.release(held)
			return nil, err
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(held) })
	}, nil
}

// Normalize sorts keys and drops duplicates and empty keys
func Normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Held reports the number of keys currently locked or waited on
func (l *Locker) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Locker) acquire(ctx context.Context, key string) error {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.unref(key, e)
		return ctx.Err()
	}
}

func (l *Locker) release(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.entries[keys[i]]
		l.mu.Unlock()

		<-e.sem
		l.unref(keys[i], e)
	}
}

func (l *Locker) unref(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
