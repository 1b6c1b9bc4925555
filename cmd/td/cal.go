package main

import (
	"fmt"
	"sort"

	"github.com/ahenriksen/taskdeck/calendar"
	"github.com/ahenriksen/taskdeck/internal/ui"
	"github.com/spf13/cobra"
)

var calCmd = &cobra.Command{
	Use:   "cal",
	Short: "Show tasks with due dates as calendar events",
	Args:  cobra.NoArgs,
	RunE:  runCal,
}

var calEventCmd = &cobra.Command{
	Use:   "event <event-id>",
	Short: "Show the task behind a calendar event",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalEvent,
}

func init() {
	rootCmd.AddCommand(calCmd)
	calCmd.AddCommand(calEventCmd)
}

func runCal(cmd *cobra.Command, args []string) error {
	t, err := refreshed(cmd.Context())
	if err != nil {
		return err
	}

	events := calendar.Project(t.Store().Snapshot())
	if len(events) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no scheduled tasks")
		return nil
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	headers := []string{"EVENT", "DATE", "COLOR", "TITLE"}
	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			event.ID,
			event.Date.String(),
			ui.ColorLabel(event.Color),
			ui.TruncateTableCell(event.Title),
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.FormatTable(headers, rows))
	return nil
}

// runCalEvent resolves an event id back to its task. A stale id is not
// an error: the detail view is suppressed with a note instead.
func runCalEvent(cmd *cobra.Command, args []string) error {
	t, err := refreshed(cmd.Context())
	if err != nil {
		return err
	}

	resolved, ok := calendar.Resolve(t.Store().Snapshot(), args[0])
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "event %s no longer matches a task\n", args[0])
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "task %d: %s\n", resolved.ID, resolved.Title)
	fmt.Fprintf(out, "priority: %s\n", ui.PriorityLabel(resolved.Priority))
	fmt.Fprintf(out, "due: %s\n", ui.FormatDueDate(resolved.DueDate, ui.Today()))
	fmt.Fprintf(out, "completed: %v\n", resolved.Completed)
	return nil
}
