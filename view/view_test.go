package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/ahenriksen/taskdeck/task"
)

func titles(tasks []task.Task) []string {
	result := make([]string, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, t.Title)
	}
	return result
}

func TestDerive_NoParamsCopiesInput(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "b"},
		{ID: 2, Title: "a"},
	}

	result := Derive(input, Params{})
	if !reflect.DeepEqual(titles(result), []string{"b", "a"}) {
		t.Errorf("expected input order preserved, got %v", titles(result))
	}

	// The returned slice must not alias the input.
	result[0].Title = "mutated"
	if input[0].Title != "b" {
		t.Error("derive result aliases input slice")
	}
}

func TestDerive_SearchNarrowing(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "Buy groceries"},
		{ID: 2, Title: "Call dentist"},
		{ID: 3, Title: "Buy gift"},
	}

	result := Derive(input, Params{Query: "buy"})

	// Search never introduces tasks absent from the input.
	inputIDs := map[int]bool{1: true, 2: true, 3: true}
	for _, item := range result {
		if !inputIDs[item.ID] {
			t.Errorf("search introduced unknown task %d", item.ID)
		}
	}
	if len(result) >= len(input) {
		t.Errorf("expected narrowing, got %d of %d", len(result), len(input))
	}
	for _, item := range result {
		if item.ID == 2 {
			t.Error("expected 'Call dentist' filtered out")
		}
	}
}

func TestDerive_SearchIsFuzzyNotSubstring(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "Schedule quarterly review"},
		{ID: 2, Title: "Water plants"},
	}

	// "sqr" is not a substring but matches the first title fuzzily.
	result := Derive(input, Params{Query: "sqr"})
	if len(result) != 1 || result[0].ID != 1 {
		t.Errorf("expected fuzzy match on task 1, got %v", titles(result))
	}
}

func TestDerive_SearchMembershipNotRanking(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "bz"},
		{ID: 2, Title: "ab"},
		{ID: 3, Title: "b"},
	}

	// Without a sort, matched tasks stay in input order regardless of
	// match quality.
	result := Derive(input, Params{Query: "b"})
	if !reflect.DeepEqual(titles(result), []string{"bz", "ab", "b"}) {
		t.Errorf("expected input order, got %v", titles(result))
	}
}

func TestDerive_CompletionFilter(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "done", Completed: true},
		{ID: 2, Title: "open"},
	}

	completed := Derive(input, Params{Completion: FilterCompleted})
	if len(completed) != 1 || completed[0].ID != 1 {
		t.Errorf("expected only completed task, got %v", titles(completed))
	}

	open := Derive(input, Params{Completion: FilterNotCompleted})
	if len(open) != 1 || open[0].ID != 2 {
		t.Errorf("expected only open task, got %v", titles(open))
	}

	all := Derive(input, Params{Completion: FilterAll})
	if len(all) != 2 {
		t.Errorf("expected all tasks, got %v", titles(all))
	}
}

func TestDerive_FilterIdempotence(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "done", Completed: true},
		{ID: 2, Title: "open"},
		{ID: 3, Title: "also done", Completed: true},
	}

	once := Derive(input, Params{Completion: FilterCompleted})
	twice := Derive(once, Params{Completion: FilterCompleted})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter is not idempotent: %v vs %v", titles(once), titles(twice))
	}
}

func TestDerive_SortStability(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "b", Priority: 1},
		{ID: 2, Title: "a", Priority: 1},
	}

	result := Derive(input, Params{Sort: []SortSpec{{Key: SortByPriority}}})
	if !reflect.DeepEqual(titles(result), []string{"b", "a"}) {
		t.Errorf("equal-priority tasks must keep relative order, got %v", titles(result))
	}
}

func TestDerive_SortByTitleDescending(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "apple"},
		{ID: 2, Title: "cherry"},
		{ID: 3, Title: "banana"},
	}

	result := Derive(input, Params{Sort: []SortSpec{{Key: SortByTitle, Descending: true}}})
	if !reflect.DeepEqual(titles(result), []string{"cherry", "banana", "apple"}) {
		t.Errorf("expected reverse lexicographic order, got %v", titles(result))
	}
}

func TestDerive_SortByDueDateAbsentLast(t *testing.T) {
	march := task.NewDate(2025, time.March, 1)
	april := task.NewDate(2025, time.April, 1)
	input := []task.Task{
		{ID: 1, Title: "undated"},
		{ID: 2, Title: "april", DueDate: task.DatePtr(april)},
		{ID: 3, Title: "march", DueDate: task.DatePtr(march)},
	}

	ascending := Derive(input, Params{Sort: []SortSpec{{Key: SortByDueDate}}})
	if !reflect.DeepEqual(titles(ascending), []string{"march", "april", "undated"}) {
		t.Errorf("ascending: got %v", titles(ascending))
	}

	// Absent due dates sort last in either direction.
	descending := Derive(input, Params{Sort: []SortSpec{{Key: SortByDueDate, Descending: true}}})
	if !reflect.DeepEqual(titles(descending), []string{"april", "march", "undated"}) {
		t.Errorf("descending: got %v", titles(descending))
	}
}

func TestDerive_TwoKeySort(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "c", Priority: 2},
		{ID: 2, Title: "a", Priority: 1},
		{ID: 3, Title: "b", Priority: 2},
	}

	result := Derive(input, Params{Sort: []SortSpec{
		{Key: SortByPriority},
		{Key: SortByTitle},
	}})
	if !reflect.DeepEqual(titles(result), []string{"a", "b", "c"}) {
		t.Errorf("expected priority then title order, got %v", titles(result))
	}
}

func TestDerive_Deterministic(t *testing.T) {
	input := []task.Task{
		{ID: 1, Title: "buy milk", Priority: 3},
		{ID: 2, Title: "buy bread", Priority: 1, Completed: true},
		{ID: 3, Title: "call mom", Priority: 2},
	}
	params := Params{
		Query:      "buy",
		Completion: FilterAll,
		Sort:       []SortSpec{{Key: SortByPriority}},
	}

	first := Derive(input, params)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(Derive(input, params), first) {
			t.Fatal("derive is not deterministic for fixed inputs")
		}
	}
}

func TestCompletionFilter_IsValid(t *testing.T) {
	for _, filter := range ValidCompletionFilters() {
		if !filter.IsValid() {
			t.Errorf("expected %q valid", filter)
		}
	}
	if CompletionFilter("finished").IsValid() {
		t.Error("expected 'finished' invalid")
	}
}

func TestSortKey_IsValid(t *testing.T) {
	for _, key := range ValidSortKeys() {
		if !key.IsValid() {
			t.Errorf("expected %q valid", key)
		}
	}
	if SortKey("created").IsValid() {
		t.Error("expected 'created' invalid")
	}
}
