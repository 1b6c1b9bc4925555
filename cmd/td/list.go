package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ahenriksen/taskdeck/internal/ui"
	"github.com/ahenriksen/taskdeck/internal/validation"
	"github.com/ahenriksen/taskdeck/view"
	"github.com/spf13/cobra"
)

var (
	errInvalidFilter        = errors.New("invalid completion filter")
	errInvalidSortKey       = errors.New("invalid sort key")
	errInvalidSortDirection = errors.New("invalid sort direction")
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, optionally searched, filtered, and sorted.

--sort accepts one or two comma-separated keys from title, priority,
and dueDate, each with an optional :asc or :desc direction, for example
"priority,dueDate:desc".`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listSearch string
	listFilter string
	listSort   string
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listSearch, "search", "", "Fuzzy-match titles against this query")
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "Completion filter: all, completed, or notCompleted")
	listCmd.Flags().StringVar(&listSort, "sort", "title", "Sort spec, e.g. \"priority,title:desc\"")
}

func runList(cmd *cobra.Command, args []string) error {
	params, err := listParams()
	if err != nil {
		return err
	}

	t, err := refreshed(cmd.Context())
	if err != nil {
		return err
	}

	tasks := view.Derive(t.Store().Snapshot(), params)
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
		return nil
	}

	today := ui.Today()
	headers := []string{"ID", "DONE", "PRI", "DUE", "TITLE"}
	rows := make([][]string, 0, len(tasks))
	for _, item := range tasks {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			ui.CompletionMark(item.Completed),
			ui.PriorityLabel(item.Priority),
			ui.FormatDueDate(item.DueDate, today),
			ui.TruncateTableCell(item.Title),
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.FormatTable(headers, rows))
	return nil
}

func listParams() (view.Params, error) {
	filter := view.CompletionFilter(listFilter)
	if !filter.IsValid() {
		return view.Params{}, validation.FormatInvalidValueError(errInvalidFilter, filter, view.ValidCompletionFilters())
	}

	specs, err := parseSortSpecs(listSort)
	if err != nil {
		return view.Params{}, err
	}

	return view.Params{
		Query:      listSearch,
		Completion: filter,
		Sort:       specs,
	}, nil
}

// parseSortSpecs parses a comma-separated sort flag like
// "priority,dueDate:desc" into at most two sort specs.
func parseSortSpecs(value string) ([]view.SortSpec, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) > 2 {
		return nil, fmt.Errorf("at most two sort keys are supported, got %d", len(parts))
	}

	specs := make([]view.SortSpec, 0, len(parts))
	for _, part := range parts {
		spec, err := parseSortSpec(part)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseSortSpec(value string) (view.SortSpec, error) {
	key, direction, hasDirection := strings.Cut(strings.TrimSpace(value), ":")

	spec := view.SortSpec{Key: view.SortKey(key)}
	if !spec.Key.IsValid() {
		return view.SortSpec{}, validation.FormatInvalidValueError(errInvalidSortKey, spec.Key, view.ValidSortKeys())
	}

	if hasDirection {
		switch direction {
		case "asc":
		case "desc":
			spec.Descending = true
		default:
			return view.SortSpec{}, validation.FormatInvalidValueError(errInvalidSortDirection, direction, []string{"asc", "desc"})
		}
	}
	return spec, nil
}
