package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahenriksen/taskdeck/internal/config"
	"github.com/ahenriksen/taskdeck/remote"
	"github.com/ahenriksen/taskdeck/session"
	"github.com/ahenriksen/taskdeck/store"
	"github.com/ahenriksen/taskdeck/tracker"
)

// newTracker wires config, session guard, remote client, and an empty
// store. Each CLI invocation is one session of work: commands refresh
// the store before deriving anything from it.
func newTracker() (*tracker.Tracker, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	guard := session.NewGuard(session.NewFileStore(cfg.Auth.TokenFile))
	client := remote.NewClient(cfg.API.Endpoint, guard)
	return tracker.New(guard, client, store.New()), nil
}

// refreshed returns a tracker whose store holds the current remote
// collection.
func refreshed(ctx context.Context) (*tracker.Tracker, error) {
	t, err := newTracker()
	if err != nil {
		return nil, err
	}
	if err := t.Refresh(ctx); err != nil {
		return nil, friendlyAuthError(err)
	}
	return t, nil
}

// friendlyAuthError rewrites authentication failures into a hint to
// re-run login. All other errors pass through for plain reporting.
func friendlyAuthError(err error) error {
	if errors.Is(err, session.ErrAuthRequired) || errors.Is(err, remote.ErrUnauthorized) {
		return fmt.Errorf("%w (run 'td login')", err)
	}
	return err
}
