package remote

import (
	"encoding/json"

	"github.com/ahenriksen/taskdeck/task"
)

// gqlRequest is the body sent to the API endpoint: an operation
// document plus its variables.
type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// gqlResponse is the envelope every response uses: either a data
// payload matching the requested operation, or a non-empty error list.
type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message    string        `json:"message"`
	Extensions gqlExtensions `json:"extensions"`
}

type gqlExtensions struct {
	Code string `json:"code"`
}

// Error codes the server attaches to entries in the error list.
const (
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeNotFound           = "NOT_FOUND"
	codeBadUserInput       = "BAD_USER_INPUT"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
)

// wireTask is the server's representation of a task. Due dates travel
// as ISO date strings; a malformed date is treated as absent rather
// than failing the whole fetch.
type wireTask struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"dueDate"`
	Priority    int    `json:"priority"`
}

func (w wireTask) toTask() task.Task {
	t := task.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Completed:   w.Completed,
		Priority:    w.Priority,
	}
	if w.DueDate != "" {
		if due, err := task.ParseDate(w.DueDate); err == nil {
			t.DueDate = task.DatePtr(due)
		}
	}
	return t
}

// draftVariables returns the full draft payload for a create or update
// mutation. Every write sends the complete draft; the server owns the
// persisted result.
func draftVariables(d task.Draft) map[string]any {
	input := map[string]any{
		"title":       d.Title,
		"description": d.Description,
		"completed":   d.Completed,
		"priority":    d.Priority,
	}
	if d.DueDate != nil && !d.DueDate.IsZero() {
		input["dueDate"] = d.DueDate.String()
	} else {
		input["dueDate"] = nil
	}
	return input
}
