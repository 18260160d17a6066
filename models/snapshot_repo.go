package models

import "sync"

// SnapshotRepo holds the most recently fetched RouteSnapshot. Concurrent
// fetches may finish out of order, so a snapshot fetched before the one
// already held is dropped.
type SnapshotRepo struct {
	lock    sync.RWMutex
	current *RouteSnapshot
}

func (r *SnapshotRepo) Get() (*RouteSnapshot, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.current, r.current != nil
}

// Put replaces the held snapshot unless it is newer than the given one.
// It reports whether the snapshot was kept.
func (r *SnapshotRepo) Put(snapshot *RouteSnapshot) bool {
	if snapshot == nil {
		return false
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.current != nil && snapshot.FetchedAt.Before(r.current.FetchedAt) {
		return false
	}
	r.current = snapshot
	return true
}
