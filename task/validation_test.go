package task

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Buy milk"); err != nil {
		t.Errorf("expected valid title, got %v", err)
	}
	if err := ValidateTitle(""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("x", MaxTitleLength+1)); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}
}

func TestValidatePriority(t *testing.T) {
	for priority := PriorityMin; priority <= PriorityMax; priority++ {
		if err := ValidatePriority(priority); err != nil {
			t.Errorf("expected priority %d valid, got %v", priority, err)
		}
	}
	for _, priority := range []int{0, -1, 6, 100} {
		if err := ValidatePriority(priority); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority for %d, got %v", priority, err)
		}
	}
}

func TestValidateDraft(t *testing.T) {
	valid := Draft{Title: "Buy milk", Priority: PriorityMedium}
	if err := ValidateDraft(valid); err != nil {
		t.Errorf("expected valid draft, got %v", err)
	}

	missingTitle := Draft{Priority: PriorityMedium}
	if err := ValidateDraft(missingTitle); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}

	badPriority := Draft{Title: "Buy milk", Priority: 9}
	if err := ValidateDraft(badPriority); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestPriorityName(t *testing.T) {
	cases := map[int]string{
		PriorityHighest: "highest",
		PriorityMedium:  "medium",
		PriorityLowest:  "lowest",
		0:               "unspecified",
		7:               "unspecified",
	}
	for priority, want := range cases {
		if got := PriorityName(priority); got != want {
			t.Errorf("PriorityName(%d) = %q, want %q", priority, got, want)
		}
	}
}

func TestDraftOf(t *testing.T) {
	item := Task{
		ID:          7,
		Title:       "Buy milk",
		Description: "2%",
		Completed:   true,
		Priority:    PriorityHigh,
	}
	draft := DraftOf(item)
	if draft.Title != item.Title || draft.Description != item.Description {
		t.Errorf("draft text fields do not match task: %+v", draft)
	}
	if draft.Completed != item.Completed || draft.Priority != item.Priority {
		t.Errorf("draft state fields do not match task: %+v", draft)
	}
}
