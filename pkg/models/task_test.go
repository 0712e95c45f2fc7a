package models

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func datePtr(t time.Time) *datatypes.Date {
	d := datatypes.Date(t)
	return &d
}

func TestDueDay(t *testing.T) {
	due := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		task    Task
		wantOK  bool
		wantDay time.Time
	}{
		{
			name:    "real due date",
			task:    Task{DueDate: datePtr(due)},
			wantOK:  true,
			wantDay: due,
		},
		{
			name:   "nil due date",
			task:   Task{},
			wantOK: false,
		},
		{
			name:   "legacy placeholder counts as none",
			task:   Task{DueDate: datePtr(time.Date(1752, time.September, 14, 0, 0, 0, 0, time.UTC))},
			wantOK: false,
		},
		{
			name:    "time-of-day is truncated",
			task:    Task{DueDate: datePtr(time.Date(2025, time.March, 5, 17, 30, 0, 0, time.UTC))},
			wantOK:  true,
			wantDay: due,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := tt.task.DueDay()
			if ok != tt.wantOK {
				t.Fatalf("DueDay() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !day.Equal(tt.wantDay) {
				t.Errorf("DueDay() = %v, want %v", day, tt.wantDay)
			}
		})
	}
}

func TestDueDateString(t *testing.T) {
	task := Task{DueDate: datePtr(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))}
	if got := task.DueDateString(); got != "2025-03-05" {
		t.Errorf("DueDateString() = %q, want %q", got, "2025-03-05")
	}
	none := Task{}
	if got := none.DueDateString(); got != "" {
		t.Errorf("DueDateString() = %q, want empty", got)
	}
}

func TestDisplayTitle(t *testing.T) {
	task := Task{
		Title: "Buy milk",
		Tags: []*Tag{
			{ID: 1, Name: "shopping"},
			{ID: 2, Name: "errands"},
		},
	}
	if got, want := task.DisplayTitle(), "Buy milk #shopping #errands"; got != want {
		t.Errorf("DisplayTitle() = %q, want %q", got, want)
	}

	bare := Task{Title: "Buy milk"}
	if got := bare.DisplayTitle(); got != "Buy milk" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "Buy milk")
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"high", PriorityHigh},
		{"H", PriorityHigh},
		{"3", PriorityHigh},
		{"Medium", PriorityMedium},
		{"m", PriorityMedium},
		{"low", PriorityLow},
		{"l", PriorityLow},
		{"none", PriorityNone},
		{"", PriorityNone},
		{"garbage", PriorityNone},
		{"  high  ", PriorityHigh},
	}
	for _, tt := range tests {
		if got := ParsePriority(tt.in); got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPriorityString(t *testing.T) {
	for _, p := range []Priority{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh} {
		if ParsePriority(p.String()) != p {
			t.Errorf("ParsePriority(%q) did not round-trip %d", p.String(), p)
		}
	}
}
