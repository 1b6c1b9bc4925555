package task

// Priority constants for tasks. Lower numbers are more urgent.
const (
	PriorityHighest = 1
	PriorityHigh    = 2
	PriorityMedium  = 3 // default
	PriorityLow     = 4
	PriorityLowest  = 5

	PriorityMin = 1
	PriorityMax = 5
)

// PriorityValid reports whether the priority is inside the valid range.
// Out-of-range values coming from the remote source are a data defect,
// not a crash condition; display layers treat them as unspecified.
func PriorityValid(priority int) bool {
	return priority >= PriorityMin && priority <= PriorityMax
}

// PriorityName returns a human-readable name for the priority level.
func PriorityName(priority int) string {
	switch priority {
	case PriorityHighest:
		return "highest"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	case PriorityLowest:
		return "lowest"
	default:
		return "unspecified"
	}
}
