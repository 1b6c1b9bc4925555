// Package ui formats tasks and calendar events for terminal display.
package ui

import (
	"fmt"
	"time"

	"github.com/ahenriksen/taskdeck/calendar"
	"github.com/ahenriksen/taskdeck/task"
	"github.com/charmbracelet/lipgloss"
)

var colorStyles = map[calendar.ColorTag]lipgloss.Style{
	calendar.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	calendar.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	calendar.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	calendar.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	calendar.ColorTeal:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	calendar.ColorGray:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// PriorityLabel returns a colored human-readable priority name.
// Out-of-range priorities render as neutral "unspecified" text rather
// than failing.
func PriorityLabel(priority int) string {
	style := colorStyles[calendar.ColorForPriority(priority)]
	return style.Render(task.PriorityName(priority))
}

// ColorLabel renders a calendar color tag name in its own color.
func ColorLabel(tag calendar.ColorTag) string {
	style, ok := colorStyles[tag]
	if !ok {
		style = colorStyles[calendar.ColorGray]
	}
	return style.Render(string(tag))
}

// CompletionMark returns a fixed-width completion indicator.
func CompletionMark(completed bool) string {
	if completed {
		return "x"
	}
	return " "
}

// FormatDueDate renders a due date relative to today: "today",
// "tomorrow", "3d overdue", or the plain date for anything further out.
// A nil due date renders as "-".
func FormatDueDate(due *task.Date, today task.Date) string {
	if due == nil || due.IsZero() {
		return "-"
	}

	days := int(due.Sub(today.Time).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 0:
		return fmt.Sprintf("%dd overdue", -days)
	case days <= 7:
		return fmt.Sprintf("in %dd", days)
	default:
		return due.String()
	}
}

// Today returns the current calendar date.
func Today() task.Date {
	return task.DateOf(time.Now())
}
