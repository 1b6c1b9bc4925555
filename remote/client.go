// Package remote executes authenticated task operations against the
// remote API and translates transport and protocol failures into typed
// errors.
//
// All five operations are one-shot: no retries, no backoff, no
// queueing. A failed call is reported once and the caller decides
// whether to re-invoke it. Any response that rejects the attached
// credential invalidates the session guard before the error is
// surfaced, so the next operation fails fast with
// session.ErrAuthRequired.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ahenriksen/taskdeck/session"
)

// Client calls the remote task API.
type Client struct {
	endpoint string
	guard    *session.Guard
	client   *http.Client
}

// NewClient creates a client for the given endpoint URL. The guard
// supplies the credential for authenticated operations and is
// invalidated when the server rejects it.
func NewClient(endpoint string, guard *session.Guard) *Client {
	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "http://" + endpoint
	}
	return &Client{endpoint: endpoint, guard: guard, client: &http.Client{}}
}

// post executes one operation document. When authed is true the stored
// credential is attached as a bearer header; a missing credential fails
// before any request is issued.
func (c *Client) post(ctx context.Context, op string, authed bool, query string, variables map[string]any, dest any) error {
	var cred session.Credential
	if authed {
		var err error
		cred, err = c.guard.Require()
		if err != nil {
			return err
		}
	}

	payload, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+string(cred))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return c.authFailure(authed)
	}

	var envelope gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &RemoteError{Message: resp.Status}
		}
		return &TransportError{Op: op, Err: err}
	}

	if len(envelope.Errors) > 0 {
		return c.errorFromList(authed, envelope.Errors)
	}
	if resp.StatusCode != http.StatusOK {
		return &RemoteError{Message: resp.Status}
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

// errorFromList maps the first reported error to a typed outcome.
// Unrecognized codes surface the first message as a RemoteError.
func (c *Client) errorFromList(authed bool, list []gqlError) error {
	first := list[0]
	switch first.Extensions.Code {
	case codeUnauthenticated:
		return c.authFailure(authed)
	case codeNotFound:
		return ErrNotFound
	case codeBadUserInput:
		return ErrInvalidDraft
	case codeInvalidCredentials:
		return ErrInvalidCredentials
	}
	return &RemoteError{Message: first.Message}
}

// authFailure invalidates the guard so subsequent calls require
// re-authentication. Rejections of unauthenticated operations (login)
// surface as bad credentials instead.
func (c *Client) authFailure(authed bool) error {
	if !authed {
		return ErrInvalidCredentials
	}
	_ = c.guard.Invalidate()
	return ErrUnauthorized
}
