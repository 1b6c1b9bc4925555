// Package testsupport provides an in-memory fake of the remote task API
// and helpers for end-to-end CLI tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// FakeAPI implements the remote API contract in memory: a single
// endpoint accepting {query, variables} documents and returning either
// a data payload or an errors list. It is used by client tests and the
// CLI's testscript suite.
type FakeAPI struct {
	mu       sync.Mutex
	username string
	password string
	token    string
	nextID   int
	todos    []fakeTodo
	requests int
}

type fakeTodo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"dueDate"`
	Priority    int    `json:"priority"`
}

type apiError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// NewFakeAPI creates a fake accepting the given login credentials.
func NewFakeAPI(username, password string) *FakeAPI {
	return &FakeAPI{username: username, password: password, nextID: 1}
}

// Requests returns how many requests the fake has received. Auth-gating
// tests use it to prove no request was issued.
func (f *FakeAPI) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

// Revoke expires the current token, simulating server-side expiry.
func (f *FakeAPI) Revoke() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
}

// Seed inserts a todo directly, bypassing the API. DueDate may be ""
// or any string, including a malformed date.
func (f *FakeAPI) Seed(title, description string, completed bool, dueDate string, priority int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.todos = append(f.todos, fakeTodo{
		ID: id, Title: title, Description: description,
		Completed: completed, DueDate: dueDate, Priority: priority,
	})
	return id
}

// Handler returns the http handler serving the fake endpoint.
func (f *FakeAPI) Handler() http.Handler {
	return http.HandlerFunc(f.serve)
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++

	var request struct {
		Query     string          `json:"query"`
		Variables json.RawMessage `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeErrors(w, apiError{Message: "malformed request"})
		return
	}

	if strings.Contains(request.Query, "login(") {
		f.serveLogin(w, request.Variables)
		return
	}

	auth := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if f.token == "" || auth != f.token {
		writeErrors(w, apiError{
			Message:    "not authenticated",
			Extensions: map[string]any{"code": "UNAUTHENTICATED"},
		})
		return
	}

	switch {
	case strings.Contains(request.Query, "todos"):
		writeData(w, map[string]any{"todos": append([]fakeTodo{}, f.todos...)})
	case strings.Contains(request.Query, "createTodo"):
		f.serveCreate(w, request.Variables)
	case strings.Contains(request.Query, "updateTodo"):
		f.serveUpdate(w, request.Variables)
	case strings.Contains(request.Query, "deleteTodo"):
		f.serveDelete(w, request.Variables)
	default:
		writeErrors(w, apiError{Message: "unknown operation"})
	}
}

func (f *FakeAPI) serveLogin(w http.ResponseWriter, variables json.RawMessage) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	_ = json.Unmarshal(variables, &creds)
	if creds.Username != f.username || creds.Password != f.password {
		writeErrors(w, apiError{
			Message:    "invalid username or password",
			Extensions: map[string]any{"code": "INVALID_CREDENTIALS"},
		})
		return
	}
	f.token = fmt.Sprintf("token-%s-%d", creds.Username, f.nextID)
	writeData(w, map[string]any{"login": f.token})
}

type fakeInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"dueDate"`
	Priority    int     `json:"priority"`
}

func (in fakeInput) apply(record *fakeTodo) {
	record.Title = in.Title
	record.Description = in.Description
	record.Completed = in.Completed
	record.Priority = in.Priority
	if in.DueDate != nil {
		record.DueDate = *in.DueDate
	} else {
		record.DueDate = ""
	}
}

func (f *FakeAPI) serveCreate(w http.ResponseWriter, variables json.RawMessage) {
	var vars struct {
		Input fakeInput `json:"input"`
	}
	_ = json.Unmarshal(variables, &vars)
	if vars.Input.Title == "" {
		writeErrors(w, apiError{
			Message:    "title is required",
			Extensions: map[string]any{"code": "BAD_USER_INPUT"},
		})
		return
	}

	record := fakeTodo{ID: f.nextID}
	f.nextID++
	vars.Input.apply(&record)
	f.todos = append(f.todos, record)
	writeData(w, map[string]any{"createTodo": record})
}

func (f *FakeAPI) serveUpdate(w http.ResponseWriter, variables json.RawMessage) {
	var vars struct {
		ID    int       `json:"id"`
		Input fakeInput `json:"input"`
	}
	_ = json.Unmarshal(variables, &vars)
	for i := range f.todos {
		if f.todos[i].ID == vars.ID {
			vars.Input.apply(&f.todos[i])
			writeData(w, map[string]any{"updateTodo": f.todos[i]})
			return
		}
	}
	writeErrors(w, apiError{
		Message:    fmt.Sprintf("todo %d not found", vars.ID),
		Extensions: map[string]any{"code": "NOT_FOUND"},
	})
}

func (f *FakeAPI) serveDelete(w http.ResponseWriter, variables json.RawMessage) {
	var vars struct {
		ID int `json:"id"`
	}
	_ = json.Unmarshal(variables, &vars)
	for i := range f.todos {
		if f.todos[i].ID == vars.ID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			writeData(w, map[string]any{"deleteTodo": true})
			return
		}
	}
	writeErrors(w, apiError{
		Message:    fmt.Sprintf("todo %d not found", vars.ID),
		Extensions: map[string]any{"code": "NOT_FOUND"},
	})
}

func writeData(w http.ResponseWriter, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeErrors(w http.ResponseWriter, errs ...apiError) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"errors": errs})
}
