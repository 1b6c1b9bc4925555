package main

import (
	"fmt"

	"github.com/ahenriksen/taskdeck/internal/markdown"
	"github.com/ahenriksen/taskdeck/internal/ui"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

const showLineWidth = 80

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full details of a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showPlain bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Skip markdown rendering of the description")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	t, err := refreshed(cmd.Context())
	if err != nil {
		return err
	}
	item, ok := t.Store().Get(id)
	if !ok {
		return fmt.Errorf("task %d not found", id)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "task %d: %s\n", item.ID, item.Title)
	fmt.Fprintf(out, "priority: %s\n", ui.PriorityLabel(item.Priority))
	fmt.Fprintf(out, "due: %s\n", ui.FormatDueDate(item.DueDate, ui.Today()))
	fmt.Fprintf(out, "completed: %v\n", item.Completed)

	if item.Description != "" {
		fmt.Fprintln(out)
		if showPlain {
			fmt.Fprintln(out, wordwrap.String(item.Description, showLineWidth))
		} else {
			fmt.Fprintln(out, markdown.Render(item.Description, showLineWidth))
		}
	}
	return nil
}
