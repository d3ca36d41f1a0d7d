package domain

import (
	"context"
	"sync"
)

// Wrapper is implemented by every contact kind in this package.
type Wrapper[R any] interface {
	comparable
	ID() int64
	Record() R
	replace(R)
}

// detacher is implemented by wrappers that own nested lists which must be
// emptied when the wrapper leaves its list.
type detacher interface {
	detach()
}

// ContactList is an ordered, key-unique list of contact wrappers for one
// category. Order follows the most recent snapshot. All methods are safe for
// concurrent use; mutations are serialized per list.
type ContactList[W Wrapper[R], R any] struct {
	mu    sync.RWMutex
	items []W
	index map[int64]W
	build func(id int64, record R) W
}

func NewContactList[W Wrapper[R], R any](build func(id int64, record R) W) *ContactList[W, R] {
	return &ContactList[W, R]{
		index: map[int64]W{},
		build: build,
	}
}

// Reconcile replaces the list contents with the snapshot. Wrappers whose id
// is present in both the list and the snapshot are reused with their record
// replaced; ids missing from the snapshot are dropped. When an id repeats in
// the snapshot the last record wins and the wrapper keeps the position of the
// first occurrence.
//
// Reconcile returns the context's cause without touching the list if ctx is
// already done once the list lock is held.
func (l *ContactList[W, R]) Reconcile(ctx context.Context, entries []Entry[R]) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil {
		return context.Cause(ctx)
	}

	items := make([]W, 0, len(entries))
	index := make(map[int64]W, len(entries))
	for _, entry := range entries {
		if seen, ok := index[entry.ID]; ok {
			seen.replace(entry.Record)
			continue
		}

		wrapper, ok := l.index[entry.ID]
		if ok {
			wrapper.replace(entry.Record)
		} else {
			wrapper = l.build(entry.ID, entry.Record)
		}

		index[entry.ID] = wrapper
		items = append(items, wrapper)
	}

	for id, wrapper := range l.index {
		if _, kept := index[id]; !kept {
			detach(wrapper)
		}
	}

	l.items = items
	l.index = index

	return nil
}

// InsertIfAbsent appends wrapper unless its id is already present, in which
// case the resident wrapper and its record are left as they are. It returns
// the wrapper now held by the list and whether wrapper was inserted. Like
// Reconcile it refuses to touch the list once ctx is done.
func (l *ContactList[W, R]) InsertIfAbsent(ctx context.Context, wrapper W) (W, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil {
		var zero W
		return zero, false, context.Cause(ctx)
	}

	if existing, ok := l.index[wrapper.ID()]; ok {
		return existing, false, nil
	}

	l.items = append(l.items, wrapper)
	l.index[wrapper.ID()] = wrapper
	return wrapper, true, nil
}

// Upsert replaces the record of the wrapper for id, appending a new wrapper
// when id is unknown. Like Reconcile it refuses to touch the list once ctx is
// done.
func (l *ContactList[W, R]) Upsert(ctx context.Context, id int64, record R) (W, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil {
		var zero W
		return zero, context.Cause(ctx)
	}

	if existing, ok := l.index[id]; ok {
		existing.replace(record)
		return existing, nil
	}

	wrapper := l.build(id, record)
	l.items = append(l.items, wrapper)
	l.index[id] = wrapper
	return wrapper, nil
}

func (l *ContactList[W, R]) Get(id int64) (W, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	wrapper, ok := l.index[id]
	return wrapper, ok
}

func (l *ContactList[W, R]) Contains(id int64) bool {
	_, ok := l.Get(id)
	return ok
}

func (l *ContactList[W, R]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// All returns the wrappers in list order. The returned slice is a copy.
func (l *ContactList[W, R]) All() []W {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]W, len(l.items))
	copy(out, l.items)
	return out
}

func (l *ContactList[W, R]) IDs() []int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]int64, 0, len(l.items))
	for _, wrapper := range l.items {
		ids = append(ids, wrapper.ID())
	}
	return ids
}

// Clear drops every wrapper, emptying nested lists first.
func (l *ContactList[W, R]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, wrapper := range l.items {
		detach(wrapper)
	}
	l.items = nil
	l.index = map[int64]W{}
}

func detach[W any](wrapper W) {
	if d, ok := any(wrapper).(detacher); ok {
		d.detach()
	}
}
