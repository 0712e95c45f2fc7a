package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Task represents a to-do item in the system
type Task struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Title     string          `json:"title" gorm:"not null;size:100"`
	Completed bool            `json:"completed" gorm:"not null;default:false"`
	CreatedAt time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	DueDate   *datatypes.Date `json:"-" gorm:"type:date"`
	Priority  Priority        `json:"priority" gorm:"not null;default:0;type:smallint"`

	// Many-to-Many Relations
	Tags []*Tag `json:"tags,omitempty" gorm:"many2many:task_tags"`
}

// Some historical rows carry 1752-09-14 in due_date instead of NULL, a
// leftover from an old date-widget default. Treat it as "no due date".
var sentinelDueDate = time.Date(1752, time.September, 14, 0, 0, 0, 0, time.UTC)

// DueDay returns the task's due date truncated to a calendar day.
// The second return value is false when the task has no deadline,
// either as a true NULL or as the legacy placeholder value.
func (t *Task) DueDay() (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	d := time.Time(*t.DueDate)
	if d.Year() == sentinelDueDate.Year() &&
		d.Month() == sentinelDueDate.Month() &&
		d.Day() == sentinelDueDate.Day() {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
}

// DueDateString returns the due date as YYYY-MM-DD, or "" for no deadline.
func (t *Task) DueDateString() string {
	d, ok := t.DueDay()
	if !ok {
		return ""
	}
	return d.Format("2006-01-02")
}

// DisplayTitle returns the title with the task's tags appended as #name
// suffixes, the way the original UI rendered list rows.
func (t *Task) DisplayTitle() string {
	if len(t.Tags) == 0 {
		return t.Title
	}
	parts := make([]string, 0, len(t.Tags)+1)
	parts = append(parts, t.Title)
	for _, tag := range t.Tags {
		parts = append(parts, "#"+tag.Name)
	}
	return strings.Join(parts, " ")
}

// TagIDs returns the ids of the task's tags in association order.
func (t *Task) TagIDs() []uint {
	ids := make([]uint, 0, len(t.Tags))
	for _, tag := range t.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}
