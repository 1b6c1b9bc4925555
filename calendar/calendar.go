// Package calendar projects tasks onto date-anchored events.
//
// Project is a pure function over a task snapshot: only tasks with a
// due date produce events, each exactly once. Event identity is the
// stringified task id, so a reverse lookup can recover the originating
// task for detail display. Stale events whose task has since been
// removed resolve to "not found" rather than failing.
package calendar

import (
	"strconv"

	"github.com/ahenriksen/taskdeck/task"
)

// ColorTag is the display color class derived from a task's priority.
type ColorTag string

const (
	// ColorRed marks highest-urgency tasks.
	ColorRed ColorTag = "red"

	// ColorOrange marks high-urgency tasks.
	ColorOrange ColorTag = "orange"

	// ColorBlue marks medium-urgency tasks.
	ColorBlue ColorTag = "blue"

	// ColorGreen marks low-urgency tasks.
	ColorGreen ColorTag = "green"

	// ColorTeal marks lowest-urgency tasks.
	ColorTeal ColorTag = "teal"

	// ColorGray is the neutral tag for unspecified or out-of-range
	// priorities.
	ColorGray ColorTag = "gray"
)

// Event is a date-anchored projection of a task.
type Event struct {
	// ID is the originating task's id, stringified.
	ID string

	// Title is the task title.
	Title string

	// Date is the task's due date.
	Date task.Date

	// Color is the display tag derived from the task's priority.
	Color ColorTag
}

// ColorForPriority maps a priority to its color tag. The mapping is
// total: every value, valid or not, maps to some tag.
func ColorForPriority(priority int) ColorTag {
	switch priority {
	case task.PriorityHighest:
		return ColorRed
	case task.PriorityHigh:
		return ColorOrange
	case task.PriorityMedium:
		return ColorBlue
	case task.PriorityLow:
		return ColorGreen
	case task.PriorityLowest:
		return ColorTeal
	default:
		return ColorGray
	}
}

// Project returns one event per task that carries a due date, in input
// order. Tasks without a due date never appear.
func Project(tasks []task.Task) []Event {
	events := make([]Event, 0, len(tasks))
	for _, t := range tasks {
		if !t.HasDueDate() {
			continue
		}
		events = append(events, Event{
			ID:    strconv.Itoa(t.ID),
			Title: t.Title,
			Date:  *t.DueDate,
			Color: ColorForPriority(t.Priority),
		})
	}
	return events
}

// Resolve maps an event id back to its originating task. A stale id
// (deleted task, or an id that never parsed) yields ok=false; callers
// suppress the detail view instead of failing.
func Resolve(tasks []task.Task, eventID string) (task.Task, bool) {
	id, err := strconv.Atoi(eventID)
	if err != nil {
		return task.Task{}, false
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}
