package tracker_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahenriksen/taskdeck/internal/testsupport"
	"github.com/ahenriksen/taskdeck/remote"
	"github.com/ahenriksen/taskdeck/session"
	"github.com/ahenriksen/taskdeck/store"
	"github.com/ahenriksen/taskdeck/task"
	"github.com/ahenriksen/taskdeck/tracker"
)

type fixture struct {
	api     *testsupport.FakeAPI
	guard   *session.Guard
	tracker *tracker.Tracker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	api := testsupport.NewFakeAPI("alice", "hunter2")
	server := httptest.NewServer(api.Handler())
	t.Cleanup(server.Close)

	guard := session.NewGuard(session.NewMemStore())
	client := remote.NewClient(server.URL, guard)
	return &fixture{
		api:     api,
		guard:   guard,
		tracker: tracker.New(guard, client, store.New()),
	}
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	if err := f.tracker.Login(context.Background(), "alice", "hunter2"); err != nil {
		t.Fatalf("failed to login: %v", err)
	}
}

func TestTracker_LoginStoresCredential(t *testing.T) {
	f := newFixture(t)

	if f.tracker.Authenticated() {
		t.Fatal("expected unauthenticated tracker at start")
	}
	f.login(t)
	if !f.tracker.Authenticated() {
		t.Error("expected authenticated tracker after login")
	}
}

func TestTracker_LoginRequiresBothFields(t *testing.T) {
	f := newFixture(t)

	err := f.tracker.Login(context.Background(), "alice", "")
	if !errors.Is(err, remote.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if f.api.Requests() != 0 {
		t.Errorf("expected no request for empty password, got %d", f.api.Requests())
	}
}

func TestTracker_RefreshWithoutSessionIssuesNoRequest(t *testing.T) {
	f := newFixture(t)

	err := f.tracker.Refresh(context.Background())
	if !errors.Is(err, session.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if f.api.Requests() != 0 {
		t.Errorf("expected no request issued, got %d", f.api.Requests())
	}
}

func TestTracker_RoundTripCRUD(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	due := task.NewDate(2025, time.March, 1)
	created, err := f.tracker.Create(context.Background(), task.Draft{
		Title:       "Buy milk",
		Description: "2%",
		DueDate:     task.DatePtr(due),
		Priority:    task.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("failed to create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected server-assigned id")
	}

	// A fresh fetch includes the created task with matching fields.
	if err := f.tracker.Refresh(context.Background()); err != nil {
		t.Fatalf("failed to refresh: %v", err)
	}
	fetched, ok := f.tracker.Store().Get(created.ID)
	if !ok {
		t.Fatal("expected created task in refreshed store")
	}
	if fetched.Title != "Buy milk" || fetched.Description != "2%" {
		t.Errorf("unexpected text fields: %+v", fetched)
	}
	if fetched.Completed || fetched.Priority != task.PriorityHigh {
		t.Errorf("unexpected state fields: %+v", fetched)
	}
	if !fetched.HasDueDate() || !fetched.DueDate.Equal(due) {
		t.Errorf("expected due date %s, got %v", due, fetched.DueDate)
	}
}

func TestTracker_UpdateReplacesStoredRecord(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	created, err := f.tracker.Create(context.Background(), task.Draft{
		Title:    "Buy milk",
		Priority: task.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	draft := task.DraftOf(created)
	draft.Title = "Buy oat milk"
	updated, err := f.tracker.Update(context.Background(), created.ID, draft)
	if err != nil {
		t.Fatalf("failed to update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("expected id %d preserved, got %d", created.ID, updated.ID)
	}

	stored, _ := f.tracker.Store().Get(created.ID)
	if stored.Title != "Buy oat milk" {
		t.Errorf("expected store to hold server response, got %q", stored.Title)
	}
	if f.tracker.Store().Len() != 1 {
		t.Errorf("expected 1 task, got %d", f.tracker.Store().Len())
	}
}

func TestTracker_FailedUpdateLeavesStoreUntouched(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	created, err := f.tracker.Create(context.Background(), task.Draft{
		Title:    "Buy milk",
		Priority: task.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("failed to create: %v", err)
	}
	before := f.tracker.Store().Version()

	_, err = f.tracker.Update(context.Background(), 99, task.Draft{
		Title:    "Ghost",
		Priority: task.PriorityMedium,
	})
	if !errors.Is(err, remote.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if f.tracker.Store().Version() != before {
		t.Error("expected no store mutation on failed update")
	}
	stored, _ := f.tracker.Store().Get(created.ID)
	if stored.Title != "Buy milk" {
		t.Errorf("expected stored task unchanged, got %q", stored.Title)
	}
}

func TestTracker_SetCompleted(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	created, err := f.tracker.Create(context.Background(), task.Draft{
		Title:    "Buy milk",
		Priority: task.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	if _, err := f.tracker.SetCompleted(context.Background(), created.ID, true); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}
	stored, _ := f.tracker.Store().Get(created.ID)
	if !stored.Completed {
		t.Error("expected task completed")
	}
	if stored.Title != "Buy milk" {
		t.Errorf("expected other fields preserved, got %q", stored.Title)
	}
}

func TestTracker_DeleteNotFoundConverges(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	// The store believes 42 exists but the server never heard of it.
	f.tracker.Store().Upsert(task.Task{ID: 42, Title: "phantom"})

	if err := f.tracker.Delete(context.Background(), 42); err != nil {
		t.Fatalf("expected delete to converge on not-found, got %v", err)
	}
	if _, ok := f.tracker.Store().Get(42); ok {
		t.Error("expected phantom task removed from store")
	}
}

func TestTracker_ExpiryRequiresReauthentication(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.api.Revoke()

	err := f.tracker.Refresh(context.Background())
	if !errors.Is(err, remote.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if f.tracker.Authenticated() {
		t.Error("expected credential cleared after expiry")
	}

	err = f.tracker.Refresh(context.Background())
	if !errors.Is(err, session.ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired on next call, got %v", err)
	}
}

func TestTracker_LogoutClearsStoreAndCredential(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	if _, err := f.tracker.Create(context.Background(), task.Draft{
		Title:    "Buy milk",
		Priority: task.PriorityMedium,
	}); err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	if err := f.tracker.Logout(); err != nil {
		t.Fatalf("failed to logout: %v", err)
	}
	if f.tracker.Store().Len() != 0 {
		t.Error("expected empty store after logout")
	}
	if f.tracker.Authenticated() {
		t.Error("expected unauthenticated tracker after logout")
	}
}
