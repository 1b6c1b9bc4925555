package remote

import (
	"context"

	"github.com/ahenriksen/taskdeck/session"
	"github.com/ahenriksen/taskdeck/task"
)

const taskFields = "id title description completed dueDate priority"

const (
	loginMutation = `
		mutation Login($username: String!, $password: String!) {
			login(username: $username, password: $password)
		}`

	todosQuery = `
		query Todos {
			todos { ` + taskFields + ` }
		}`

	createMutation = `
		mutation CreateTodo($input: TodoInput!) {
			createTodo(input: $input) { ` + taskFields + ` }
		}`

	updateMutation = `
		mutation UpdateTodo($id: Int!, $input: TodoInput!) {
			updateTodo(id: $id, input: $input) { ` + taskFields + ` }
		}`

	deleteMutation = `
		mutation DeleteTodo($id: Int!) {
			deleteTodo(id: $id)
		}`
)

// Login exchanges a username and password for a credential. The caller
// is responsible for storing the credential in the session guard.
func (c *Client) Login(ctx context.Context, username, password string) (session.Credential, error) {
	var response struct {
		Login string `json:"login"`
	}
	variables := map[string]any{"username": username, "password": password}
	if err := c.post(ctx, "login", false, loginMutation, variables, &response); err != nil {
		return "", err
	}
	if response.Login == "" {
		return "", ErrInvalidCredentials
	}
	return session.Credential(response.Login), nil
}

// FetchAll returns every task the server holds for the session.
func (c *Client) FetchAll(ctx context.Context) ([]task.Task, error) {
	var response struct {
		Todos []wireTask `json:"todos"`
	}
	if err := c.post(ctx, "fetch all", true, todosQuery, nil, &response); err != nil {
		return nil, err
	}
	tasks := make([]task.Task, 0, len(response.Todos))
	for _, wire := range response.Todos {
		tasks = append(tasks, wire.toTask())
	}
	return tasks, nil
}

// Create persists a new task and returns the server's record, including
// the assigned id.
func (c *Client) Create(ctx context.Context, draft task.Draft) (task.Task, error) {
	if err := task.ValidateDraft(draft); err != nil {
		return task.Task{}, err
	}
	var response struct {
		Created wireTask `json:"createTodo"`
	}
	variables := map[string]any{"input": draftVariables(draft)}
	if err := c.post(ctx, "create", true, createMutation, variables, &response); err != nil {
		return task.Task{}, err
	}
	return response.Created.toTask(), nil
}

// Update replaces the task with the given id and returns the server's
// updated record.
func (c *Client) Update(ctx context.Context, id int, draft task.Draft) (task.Task, error) {
	if err := task.ValidateDraft(draft); err != nil {
		return task.Task{}, err
	}
	var response struct {
		Updated wireTask `json:"updateTodo"`
	}
	variables := map[string]any{"id": id, "input": draftVariables(draft)}
	if err := c.post(ctx, "update", true, updateMutation, variables, &response); err != nil {
		return task.Task{}, err
	}
	return response.Updated.toTask(), nil
}

// Delete removes the task with the given id. ErrNotFound is a valid
// outcome when the task is already gone.
func (c *Client) Delete(ctx context.Context, id int) error {
	variables := map[string]any{"id": id}
	return c.post(ctx, "delete", true, deleteMutation, variables, nil)
}
