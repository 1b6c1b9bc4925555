package main

import (
	"fmt"
	"strconv"

	"github.com/ahenriksen/taskdeck/task"
	"github.com/spf13/cobra"
)

// td add
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addDescription string
	addDue         string
	addPriority    int
	addCompleted   bool
)

// td edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing task",
	Long: `Edit an existing task.

Only the provided flags change; every other field keeps its current
value. The full record is sent to the server, whose response becomes
the new local state.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle       string
	editDescription string
	editDue         string
	editPriority    int
)

// td done / td reopen
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark one or more tasks completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>...",
	Short: "Mark one or more tasks not completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReopen,
}

// td rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Short:   "Delete one or more tasks",
	Aliases: []string{"delete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(addCmd, editCmd, doneCmd, reopenCmd, rmCmd)

	addCmd.Flags().StringVar(&addDescription, "description", "", "Task description")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().IntVar(&addPriority, "priority", task.PriorityMedium, "Priority (1=highest, 5=lowest)")
	addCmd.Flags().BoolVar(&addCompleted, "completed", false, "Create the task already completed")

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD), empty string clears it")
	editCmd.Flags().IntVar(&editPriority, "priority", 0, "New priority (1=highest, 5=lowest)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	draft := task.Draft{
		Title:       args[0],
		Description: addDescription,
		Completed:   addCompleted,
		Priority:    addPriority,
	}
	if addDue != "" {
		due, err := task.ParseDate(addDue)
		if err != nil {
			return err
		}
		draft.DueDate = task.DatePtr(due)
	}

	t, err := newTracker()
	if err != nil {
		return err
	}
	created, err := t.Create(cmd.Context(), draft)
	if err != nil {
		return friendlyAuthError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created task %d\n", created.ID)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	t, err := refreshed(cmd.Context())
	if err != nil {
		return err
	}
	current, ok := t.Store().Get(id)
	if !ok {
		return fmt.Errorf("task %d not found", id)
	}

	draft := task.DraftOf(current)
	if cmd.Flags().Changed("title") {
		draft.Title = editTitle
	}
	if cmd.Flags().Changed("description") {
		draft.Description = editDescription
	}
	if cmd.Flags().Changed("priority") {
		draft.Priority = editPriority
	}
	if cmd.Flags().Changed("due") {
		if editDue == "" {
			draft.DueDate = nil
		} else {
			due, err := task.ParseDate(editDue)
			if err != nil {
				return err
			}
			draft.DueDate = task.DatePtr(due)
		}
	}

	updated, err := t.Update(cmd.Context(), id, draft)
	if err != nil {
		return friendlyAuthError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "updated task %d\n", updated.ID)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	return setCompletion(cmd, args, true)
}

func runReopen(cmd *cobra.Command, args []string) error {
	return setCompletion(cmd, args, false)
}

func setCompletion(cmd *cobra.Command, args []string, completed bool) error {
	t, err := refreshed(cmd.Context())
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return err
		}
		if _, err := t.SetCompleted(cmd.Context(), id, completed); err != nil {
			return friendlyAuthError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "task %d %s\n", id, completionWord(completed))
	}
	return nil
}

func completionWord(completed bool) string {
	if completed {
		return "completed"
	}
	return "reopened"
}

func runRemove(cmd *cobra.Command, args []string) error {
	t, err := newTracker()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return err
		}
		if err := t.Delete(cmd.Context(), id); err != nil {
			return friendlyAuthError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d\n", id)
	}
	return nil
}

func parseTaskID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", value)
	}
	return id, nil
}
