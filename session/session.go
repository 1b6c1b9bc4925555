// Package session tracks whether an authenticated session exists.
//
// A session is nothing more than the presence of a credential token in a
// TokenStore. The Guard gates all data access: callers ask it for the
// current credential before touching the network, and the remote client
// invalidates it when the server reports an expired or rejected token.
// There is no automatic re-authentication; once invalidated, the next
// Require call fails until a user logs in again.
package session

import "errors"

// ErrAuthRequired indicates no valid session exists and the user must
// authenticate before data access can proceed.
var ErrAuthRequired = errors.New("authentication required")

// Credential is an opaque token proving an active session.
type Credential string

// Guard gates data access on the presence of a stored credential.
type Guard struct {
	store TokenStore
}

// NewGuard creates a guard backed by the given token store.
func NewGuard(store TokenStore) *Guard {
	return &Guard{store: store}
}

// Require returns the stored credential, or ErrAuthRequired when the
// store is empty. It never touches the network.
func (g *Guard) Require() (Credential, error) {
	token, err := g.store.Load()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrAuthRequired
	}
	return Credential(token), nil
}

// Active reports whether a credential is currently stored.
func (g *Guard) Active() bool {
	_, err := g.Require()
	return err == nil
}

// Set stores a credential after a successful login.
func (g *Guard) Set(cred Credential) error {
	return g.store.Save(string(cred))
}

// Invalidate clears the stored credential. It is called on explicit
// logout and whenever a remote call reports an authorization failure,
// so that the next Require returns ErrAuthRequired.
func (g *Guard) Invalidate() error {
	return g.store.Clear()
}
