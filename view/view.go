// Package view derives the display projection of a task collection.
//
// Derive is a pure function over an immutable snapshot: fixed inputs
// always yield the identical output sequence. The three stages run in a
// fixed order; search decides membership only, so display order is
// entirely the sort stage's business.
package view

import (
	"sort"
	"strings"

	"github.com/ahenriksen/taskdeck/task"
	"github.com/sahilm/fuzzy"
)

// CompletionFilter selects tasks by completion state.
type CompletionFilter string

const (
	// FilterAll retains every task.
	FilterAll CompletionFilter = "all"

	// FilterCompleted retains only completed tasks.
	FilterCompleted CompletionFilter = "completed"

	// FilterNotCompleted retains only tasks that are not completed.
	FilterNotCompleted CompletionFilter = "notCompleted"
)

// ValidCompletionFilters returns all valid filter values.
func ValidCompletionFilters() []CompletionFilter {
	return []CompletionFilter{FilterAll, FilterCompleted, FilterNotCompleted}
}

// IsValid returns true if the filter is a known valid value.
func (f CompletionFilter) IsValid() bool {
	for _, valid := range ValidCompletionFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// SortKey selects the field tasks are ordered by.
type SortKey string

const (
	// SortByTitle orders lexicographically by title.
	SortByTitle SortKey = "title"

	// SortByPriority orders numerically by priority.
	SortByPriority SortKey = "priority"

	// SortByDueDate orders chronologically by due date. Tasks without
	// a due date sort last in either direction.
	SortByDueDate SortKey = "dueDate"
)

// ValidSortKeys returns all valid sort key values.
func ValidSortKeys() []SortKey {
	return []SortKey{SortByTitle, SortByPriority, SortByDueDate}
}

// IsValid returns true if the sort key is a known valid value.
func (k SortKey) IsValid() bool {
	for _, valid := range ValidSortKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// SortSpec is one ordered sort key with its direction.
type SortSpec struct {
	Key        SortKey
	Descending bool
}

// Params are the view inputs alongside the task snapshot.
type Params struct {
	// Query fuzzily matches against task titles when non-empty.
	Query string

	// Completion filters by completion state. Empty means FilterAll.
	Completion CompletionFilter

	// Sort is one key or an ordered pair of keys. Empty leaves the
	// post-filter order untouched.
	Sort []SortSpec
}

// Derive applies search, filter, and sort in fixed order and returns
// the ordered display list. The input slice is never mutated.
func Derive(tasks []task.Task, params Params) []task.Task {
	result := searchStage(tasks, params.Query)
	result = filterStage(result, params.Completion)
	sortStage(result, params.Sort)
	return result
}

// titleSource adapts a task slice for fuzzy matching on titles.
type titleSource []task.Task

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// searchStage retains tasks whose titles fuzzily match the query. Only
// set membership matters here: matches are re-ordered back into input
// order so the sort stage alone controls the final sequence.
func searchStage(tasks []task.Task, query string) []task.Task {
	query = strings.TrimSpace(query)
	if query == "" {
		result := make([]task.Task, len(tasks))
		copy(result, tasks)
		return result
	}

	matches := fuzzy.FindFrom(query, titleSource(tasks))
	matched := make(map[int]bool, len(matches))
	for _, match := range matches {
		matched[match.Index] = true
	}

	result := make([]task.Task, 0, len(matches))
	for i, t := range tasks {
		if matched[i] {
			result = append(result, t)
		}
	}
	return result
}

// filterStage retains tasks matching the requested completion state.
func filterStage(tasks []task.Task, filter CompletionFilter) []task.Task {
	if filter == "" || filter == FilterAll {
		return tasks
	}
	wantCompleted := filter == FilterCompleted

	result := tasks[:0]
	for _, t := range tasks {
		if t.Completed == wantCompleted {
			result = append(result, t)
		}
	}
	return result
}

// sortStage orders tasks by the given specs, in place and stably:
// equal-key tasks keep their pre-sort relative order.
func sortStage(tasks []task.Task, specs []SortSpec) {
	if len(specs) == 0 {
		return
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		for _, spec := range specs {
			cmp := compareBy(spec, tasks[i], tasks[j])
			if cmp == 0 {
				continue
			}
			return cmp < 0
		}
		return false
	})
}

// compareBy applies the spec's direction. Tasks without a due date sort
// after dated tasks in either direction.
func compareBy(spec SortSpec, a, b task.Task) int {
	var cmp int
	switch spec.Key {
	case SortByPriority:
		cmp = a.Priority - b.Priority
	case SortByDueDate:
		switch {
		case !a.HasDueDate() && !b.HasDueDate():
			return 0
		case !a.HasDueDate():
			return 1
		case !b.HasDueDate():
			return -1
		case a.DueDate.Before(*b.DueDate):
			cmp = -1
		case b.DueDate.Before(*a.DueDate):
			cmp = 1
		}
	default:
		cmp = strings.Compare(a.Title, b.Title)
	}
	if spec.Descending {
		return -cmp
	}
	return cmp
}
