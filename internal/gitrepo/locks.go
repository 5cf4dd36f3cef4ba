package gitrepo

import (
	"sync"

	"gitdash/internal/apierror"
)

// nameLocks holds one RWMutex per repository name. Mutating operations
// take the write lock for their full duration; read-only operations take
// the read lock without blocking and report Busy when a mutation is in
// flight.
type nameLocks struct {
	mu sync.Mutex
	m  map[string]*sync.RWMutex
}

func newNameLocks() *nameLocks {
	return &nameLocks{m: map[string]*sync.RWMutex{}}
}

func (l *nameLocks) get(name string) *sync.RWMutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.m[name]
	if !ok {
		lock = &sync.RWMutex{}
		l.m[name] = lock
	}
	return lock
}

// lock acquires the exclusive lock for name and returns the release func.
func (l *nameLocks) lock(name string) func() {
	lock := l.get(name)
	lock.Lock()
	return lock.Unlock
}

// tryRLock acquires the shared lock for name without blocking. The second
// return is false when a mutating operation holds the lock.
func (l *nameLocks) tryRLock(name string) (func(), bool) {
	lock := l.get(name)
	if !lock.TryRLock() {
		return nil, false
	}
	return lock.RUnlock, true
}

func errBusy(name string) error {
	return apierror.Busy(name)
}
