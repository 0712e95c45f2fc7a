package store

import (
	"sort"
	"strings"
	"time"

	"github.com/kutbudev/gorevce/pkg/models"
)

// Due date bucket names accepted by Filter.DueDate. Any other non-empty
// value is tried as a literal YYYY-MM-DD date and ignored if unparseable.
const (
	DueToday    = "today"
	DueTomorrow = "tomorrow"
	DueWeek     = "week"
	DueNone     = "none"
	DueOverdue  = "overdue"
	DueFuture   = "future"
)

// DateLayout is the calendar format used everywhere dates cross a boundary.
const DateLayout = "2006-01-02"

// Filter holds the optional list criteria. All supplied criteria are
// combined with logical AND. The zero value matches every task.
type Filter struct {
	Keyword  string
	Status   *bool
	Priority *models.Priority
	TagIDs   []uint
	DueDate  string
}

// HasCriteria reports whether any filter was actually supplied. Callers use
// it for display phrasing only; it has no effect on matching.
func (f Filter) HasCriteria() bool {
	return strings.TrimSpace(f.Keyword) != "" ||
		f.Status != nil ||
		f.Priority != nil ||
		len(f.TagIDs) > 0 ||
		f.DueDate != ""
}

// Stats summarizes a filtered result set.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Incomplete returns the number of matching tasks not yet completed.
func (s Stats) Incomplete() int {
	return s.Total - s.Completed
}

// Apply filters and orders tasks in memory. today anchors the symbolic due
// date buckets and is truncated to a calendar day first. The input slice is
// not modified. Malformed filter values never fail; the offending clause is
// dropped instead so the read path always succeeds.
func Apply(tasks []models.Task, f Filter, today time.Time) ([]models.Task, Stats) {
	today = dayOf(today)

	out := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if matches(&tasks[i], f, today) {
			out = append(out, tasks[i])
		}
	}
	sortTasks(out)

	stats := Stats{Total: len(out)}
	for i := range out {
		if out[i].Completed {
			stats.Completed++
		}
	}
	return out, stats
}

func matches(t *models.Task, f Filter, today time.Time) bool {
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		if !strings.Contains(strings.ToLower(t.Title), strings.ToLower(kw)) {
			return false
		}
	}
	if f.Status != nil && t.Completed != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if len(f.TagIDs) > 0 && !hasAnyTag(t, f.TagIDs) {
		return false
	}
	if f.DueDate != "" && !matchesDue(t, f.DueDate, today) {
		return false
	}
	return true
}

// hasAnyTag is the intersection test: the task matches when at least one of
// its tag ids appears in want.
func hasAnyTag(t *models.Task, want []uint) bool {
	for _, tag := range t.Tags {
		for _, id := range want {
			if tag.ID == id {
				return true
			}
		}
	}
	return false
}

func matchesDue(t *models.Task, bucket string, today time.Time) bool {
	due, has := t.DueDay()
	switch bucket {
	case DueToday:
		return has && due.Equal(today)
	case DueTomorrow:
		return has && due.Equal(today.AddDate(0, 0, 1))
	case DueWeek:
		return has && !due.Before(today) && !due.After(today.AddDate(0, 0, 7))
	case DueNone:
		return !has
	case DueOverdue:
		return has && due.Before(today) && !t.Completed
	case DueFuture:
		return has && due.After(today)
	default:
		exact, err := time.ParseInLocation(DateLayout, bucket, time.UTC)
		if err != nil {
			// Unparseable filter value, drop the clause.
			return true
		}
		return has && due.Equal(exact)
	}
}

// sortTasks applies the composite order: incomplete before completed, dated
// before undated, due date ascending, priority descending, creation time
// descending, then id descending so the order is total and reproducible.
func sortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]

		if a.Completed != b.Completed {
			return !a.Completed
		}

		aDue, aHas := a.DueDay()
		bDue, bHas := b.DueDay()
		if aHas != bHas {
			return aHas
		}
		if aHas && !aDue.Equal(bDue) {
			return aDue.Before(bDue)
		}

		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}

		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}

		return a.ID > b.ID
	})
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
