package models

import "strings"

// Priority represents the priority of a task. Higher values sort first.
type Priority int

const (
	PriorityNone   Priority = 0
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// String returns the lowercase name used on the CLI and in JSON.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "none"
	}
}

// Color returns the hex color used when rendering the priority.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return "#4D94FF"
	case PriorityMedium:
		return "#FFD700"
	case PriorityHigh:
		return "#FF4D4D"
	default:
		return "#808080"
	}
}

// ParsePriority accepts the full names, the single-letter forms (L, M, H)
// and the numeric forms 0-3. Anything else maps to PriorityNone.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l", "1":
		return PriorityLow
	case "medium", "m", "2":
		return PriorityMedium
	case "high", "h", "3":
		return PriorityHigh
	default:
		return PriorityNone
	}
}
