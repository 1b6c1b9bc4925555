// Package store holds the authoritative in-memory task collection.
//
// The store is the only shared mutable resource in the tracker. It is
// mutated exclusively from confirmed remote results: ReplaceAll after a
// fetch, Upsert after a create or update, Remove after a delete.
// Derived views read immutable snapshots; no speculative local edit is
// ever committed here. Store lifetime equals session lifetime, so Clear
// runs on logout.
package store

import (
	"sync"

	"github.com/ahenriksen/taskdeck/task"
)

// Store is a mutex-guarded task collection with change notification.
type Store struct {
	mu        sync.Mutex
	tasks     []task.Task
	version   uint64
	listeners map[int]func()
	nextSub   int
}

// New creates an empty store.
func New() *Store {
	return &Store{listeners: make(map[int]func())}
}

// ReplaceAll swaps the entire collection, used after a successful fetch.
// Later duplicates of an id win so the uniqueness invariant holds even
// against a misbehaving server.
func (s *Store) ReplaceAll(tasks []task.Task) {
	s.mu.Lock()
	replaced := make([]task.Task, 0, len(tasks))
	index := make(map[int]int, len(tasks))
	for _, t := range tasks {
		if at, ok := index[t.ID]; ok {
			replaced[at] = t
			continue
		}
		index[t.ID] = len(replaced)
		replaced = append(replaced, t)
	}
	s.tasks = replaced
	s.bump()
	s.mu.Unlock()
	s.notify()
}

// Upsert replaces the task with a matching id in place, or appends when
// no match exists. Used after a confirmed create or update.
func (s *Store) Upsert(t task.Task) {
	s.mu.Lock()
	replaced := false
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		s.tasks = append(s.tasks, t)
	}
	s.bump()
	s.mu.Unlock()
	s.notify()
}

// Remove deletes the task with the given id. Removing an absent id is a
// no-op: "already gone" and "now gone" converge.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.bump()
	s.mu.Unlock()
	s.notify()
}

// Clear empties the collection, used on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.tasks = nil
	s.bump()
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a copy of the current collection. Callers may hold
// and derive from it freely; it never aliases store-internal state.
func (s *Store) Snapshot() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]task.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot
}

// Len returns the number of tasks currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Version returns a counter that increases on every mutation.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Subscribe registers fn to run after every mutation and returns a
// cancel function. Notifications run outside the store lock; callbacks
// may call back into the store.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// bump increments the version counter. Caller must hold the lock.
func (s *Store) bump() {
	s.version++
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
