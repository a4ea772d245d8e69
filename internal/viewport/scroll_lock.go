// Package viewport models page-level state shared between overlays.
package viewport

import "sync"

// ScrollLock blocks background scrolling while at least one owner holds it.
// The mobile menu and the lightbox hold it independently, so closing one
// does not unlock the page under the other.
type ScrollLock struct {
	mu     sync.Mutex
	owners map[string]struct{}
}

func NewScrollLock() *ScrollLock {
	return &ScrollLock{owners: make(map[string]struct{})}
}

// Lock marks owner as holding the lock. Repeated calls are idempotent.
func (l *ScrollLock) Lock(owner string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.owners[owner] = struct{}{}
}

// Unlock releases owner's hold.
func (l *ScrollLock) Unlock(owner string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.owners, owner)
}

// Locked reports whether background scrolling is blocked.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.owners) > 0
}

// HeldBy reports whether owner currently holds the lock.
func (l *ScrollLock) HeldBy(owner string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.owners[owner]
	return ok
}
