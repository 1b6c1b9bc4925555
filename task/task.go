// Package task defines the task entity shared by the store, the remote
// sync client, and the derived views.
//
// A Task either exists remotely (it has a server-assigned ID) or is a
// local draft that has not been saved yet. Drafts are represented by the
// Draft type; the server is the only authority for IDs and for the
// persisted form of every field.
package task

// Task represents a single tracked task.
type Task struct {
	// ID is the server-assigned identifier, unique within a store.
	// It is never generated client-side.
	ID int `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description,omitempty"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`

	// DueDate is the calendar date the task is due (nil when unset).
	DueDate *Date `json:"dueDate,omitempty"`

	// Priority is the urgency level (1=highest, 5=lowest).
	Priority int `json:"priority"`
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil && !t.DueDate.IsZero()
}

// Draft is the client-submitted shape of a task, used for both create
// and update. It carries no identity; the server assigns or confirms
// the ID in its response.
type Draft struct {
	// Title is the short summary of the task. Required.
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description,omitempty"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`

	// DueDate is the calendar date the task is due (nil when unset).
	DueDate *Date `json:"dueDate,omitempty"`

	// Priority is the urgency level (1=highest, 5=lowest). Required.
	Priority int `json:"priority"`
}

// DraftOf returns the draft corresponding to a task's current fields.
func DraftOf(t Task) Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
	}
}
