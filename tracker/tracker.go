// Package tracker wires the session guard, remote client, and task
// store into the operations the UI layer calls.
//
// Every mutation follows the same discipline: the remote call resolves
// first, and only its confirmed result touches the store. A failed
// operation leaves the store exactly as it was, so the current view
// stays displayable while the error is reported. Overlapping operations
// are not ordered against each other; the last response to resolve wins
// at the store.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahenriksen/taskdeck/remote"
	"github.com/ahenriksen/taskdeck/session"
	"github.com/ahenriksen/taskdeck/store"
	"github.com/ahenriksen/taskdeck/task"
)

// Tracker orchestrates authenticated task operations.
type Tracker struct {
	guard  *session.Guard
	client *remote.Client
	store  *store.Store
}

// New creates a tracker over the given guard, client, and store.
func New(guard *session.Guard, client *remote.Client, st *store.Store) *Tracker {
	return &Tracker{guard: guard, client: client, store: st}
}

// Store exposes the task store for derivation and subscription.
func (t *Tracker) Store() *store.Store {
	return t.store
}

// Authenticated reports whether a session credential is stored.
func (t *Tracker) Authenticated() bool {
	return t.guard.Active()
}

// Login authenticates and stores the returned credential.
func (t *Tracker) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return remote.ErrInvalidCredentials
	}
	cred, err := t.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := t.guard.Set(cred); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

// Logout clears the credential and empties the store. Store lifetime
// equals session lifetime.
func (t *Tracker) Logout() error {
	t.store.Clear()
	return t.guard.Invalidate()
}

// Refresh fetches the full remote collection and replaces the store's
// contents with it.
func (t *Tracker) Refresh(ctx context.Context) error {
	tasks, err := t.client.FetchAll(ctx)
	if err != nil {
		return err
	}
	t.store.ReplaceAll(tasks)
	return nil
}

// Create persists a draft and inserts the server's record, with its
// assigned id, into the store.
func (t *Tracker) Create(ctx context.Context, draft task.Draft) (task.Task, error) {
	created, err := t.client.Create(ctx, draft)
	if err != nil {
		return task.Task{}, err
	}
	t.store.Upsert(created)
	return created, nil
}

// Update sends the full draft for an existing task and replaces the
// stored record with the server's response.
func (t *Tracker) Update(ctx context.Context, id int, draft task.Draft) (task.Task, error) {
	updated, err := t.client.Update(ctx, id, draft)
	if err != nil {
		return task.Task{}, err
	}
	t.store.Upsert(updated)
	return updated, nil
}

// SetCompleted flips a stored task's completion flag through a full
// round-trip update.
func (t *Tracker) SetCompleted(ctx context.Context, id int, completed bool) (task.Task, error) {
	current, ok := t.store.Get(id)
	if !ok {
		return task.Task{}, remote.ErrNotFound
	}
	draft := task.DraftOf(current)
	draft.Completed = completed
	return t.Update(ctx, id, draft)
}

// Delete removes a task remotely, then from the store. A remote
// ErrNotFound converges to success: the task is gone either way, so the
// store removal still applies.
func (t *Tracker) Delete(ctx context.Context, id int) error {
	err := t.client.Delete(ctx, id)
	if err != nil && !errors.Is(err, remote.ErrNotFound) {
		return err
	}
	t.store.Remove(id)
	return nil
}
