package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/kutbudev/gorevce/pkg/models"
	"gorm.io/datatypes"
)

var testToday = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

func dueOn(t time.Time) *datatypes.Date {
	d := datatypes.Date(t)
	return &d
}

func boolPtr(b bool) *bool { return &b }

func prioPtr(p models.Priority) *models.Priority { return &p }

func taskIDs(tasks []models.Task) []uint {
	ids := make([]uint, 0, len(tasks))
	for i := range tasks {
		ids = append(ids, tasks[i].ID)
	}
	return ids
}

func TestApplySortOrder(t *testing.T) {
	tomorrow := testToday.AddDate(0, 0, 1)

	a := models.Task{ID: 1, Title: "A", DueDate: dueOn(tomorrow), Priority: models.PriorityHigh}
	b := models.Task{ID: 2, Title: "B", DueDate: dueOn(tomorrow), Priority: models.PriorityLow}
	c := models.Task{ID: 3, Title: "C", Completed: true, DueDate: dueOn(testToday)}

	out, stats := Apply([]models.Task{c, b, a}, Filter{}, testToday)

	if got, want := taskIDs(out), []uint{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if stats.Total != 3 || stats.Completed != 1 {
		t.Errorf("stats = %+v, want Total=3 Completed=1", stats)
	}
	if stats.Incomplete() != 2 {
		t.Errorf("Incomplete() = %d, want 2", stats.Incomplete())
	}
}

func TestApplySortDatedBeforeUndated(t *testing.T) {
	dated := models.Task{ID: 1, DueDate: dueOn(testToday.AddDate(0, 0, 3))}
	undated := models.Task{ID: 2}
	sentinel := models.Task{ID: 3, DueDate: dueOn(time.Date(1752, 9, 14, 0, 0, 0, 0, time.UTC))}

	out, _ := Apply([]models.Task{undated, sentinel, dated}, Filter{}, testToday)

	if out[0].ID != 1 {
		t.Errorf("dated task should sort first, got id %d", out[0].ID)
	}
	// The sentinel row sorts with the undated group, tiebroken by id desc.
	if got, want := taskIDs(out), []uint{1, 3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestApplySortTiebreaks(t *testing.T) {
	created := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	earlier := models.Task{ID: 5, CreatedAt: created}
	later := models.Task{ID: 6, CreatedAt: created.Add(time.Hour)}
	sameAsLater := models.Task{ID: 7, CreatedAt: created.Add(time.Hour)}

	out, _ := Apply([]models.Task{earlier, later, sameAsLater}, Filter{}, testToday)

	// Most recently created first, then id descending.
	if got, want := taskIDs(out), []uint{7, 6, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestApplyKeyword(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "buy MILK and bread"},
		{ID: 3, Title: "walk the dog"},
	}

	tests := []struct {
		name    string
		keyword string
		want    []uint
	}{
		{"case insensitive substring", "Milk", []uint{2, 1}},
		{"whitespace only means no filter", "   ", []uint{3, 2, 1}},
		{"trimmed before matching", "  dog ", []uint{3}},
		{"no match", "xyzzy", []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := Apply(tasks, Filter{Keyword: tt.keyword}, testToday)
			if got := taskIDs(out); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("keyword %q: got %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestApplyStatusAndPriority(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Completed: true, Priority: models.PriorityHigh},
		{ID: 2, Priority: models.PriorityHigh},
		{ID: 3, Priority: models.PriorityLow},
	}

	out, stats := Apply(tasks, Filter{Status: boolPtr(false)}, testToday)
	if got, want := taskIDs(out), []uint{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("incomplete filter: got %v, want %v", got, want)
	}
	if stats.Completed != 0 {
		t.Errorf("stats.Completed = %d, want 0", stats.Completed)
	}

	out, _ = Apply(tasks, Filter{Status: boolPtr(true)}, testToday)
	if got, want := taskIDs(out), []uint{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("completed filter: got %v, want %v", got, want)
	}

	out, _ = Apply(tasks, Filter{Priority: prioPtr(models.PriorityHigh)}, testToday)
	if got, want := taskIDs(out), []uint{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("priority filter: got %v, want %v", got, want)
	}
}

func TestApplyTagIntersection(t *testing.T) {
	home := &models.Tag{ID: 10, Name: "home"}
	work := &models.Tag{ID: 11, Name: "work"}
	tasks := []models.Task{
		{ID: 1, Tags: []*models.Tag{home, work}},
		{ID: 2, Tags: []*models.Tag{work}},
		{ID: 3},
	}

	out, _ := Apply(tasks, Filter{TagIDs: []uint{10, 11}}, testToday)
	// Task 1 carries both wanted tags but must appear exactly once.
	if got, want := taskIDs(out), []uint{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("tag filter: got %v, want %v", got, want)
	}

	out, _ = Apply(tasks, Filter{TagIDs: []uint{10}}, testToday)
	if got, want := taskIDs(out), []uint{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("tag filter single: got %v, want %v", got, want)
	}

	out, _ = Apply(tasks, Filter{TagIDs: []uint{99}}, testToday)
	if len(out) != 0 {
		t.Errorf("unknown tag id should match nothing, got %v", taskIDs(out))
	}
}

func TestApplyDueBuckets(t *testing.T) {
	yesterday := testToday.AddDate(0, 0, -1)
	tomorrow := testToday.AddDate(0, 0, 1)
	nextWeek := testToday.AddDate(0, 0, 7)
	farOut := testToday.AddDate(0, 0, 30)

	tasks := []models.Task{
		{ID: 1, DueDate: dueOn(testToday)},
		{ID: 2, DueDate: dueOn(tomorrow)},
		{ID: 3, DueDate: dueOn(nextWeek)},
		{ID: 4, DueDate: dueOn(farOut)},
		{ID: 5, DueDate: dueOn(yesterday)},
		{ID: 6, DueDate: dueOn(yesterday), Completed: true},
		{ID: 7},
		{ID: 8, DueDate: dueOn(time.Date(1752, 9, 14, 0, 0, 0, 0, time.UTC))},
	}

	tests := []struct {
		bucket string
		want   []uint
	}{
		{DueToday, []uint{1}},
		{DueTomorrow, []uint{2}},
		{DueWeek, []uint{1, 2, 3}},
		{DueNone, []uint{8, 7}},
		// Overdue excludes the completed task even though its date is past.
		{DueOverdue, []uint{5}},
		{DueFuture, []uint{2, 3, 4}},
		{"2025-06-11", []uint{2}},
		// Unparseable values drop the clause entirely.
		{"not-a-date", []uint{5, 1, 2, 3, 4, 8, 7, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			out, _ := Apply(tasks, Filter{DueDate: tt.bucket}, testToday)
			if got := taskIDs(out); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("bucket %q: got %v, want %v", tt.bucket, got, tt.want)
			}
		})
	}
}

func TestApplySentinelEqualsNull(t *testing.T) {
	sentinel := models.Task{ID: 1, DueDate: dueOn(time.Date(1752, 9, 14, 0, 0, 0, 0, time.UTC))}
	null := models.Task{ID: 2}

	for _, bucket := range []string{DueToday, DueTomorrow, DueWeek, DueNone, DueOverdue, DueFuture} {
		outS, _ := Apply([]models.Task{sentinel}, Filter{DueDate: bucket}, testToday)
		outN, _ := Apply([]models.Task{null}, Filter{DueDate: bucket}, testToday)
		if len(outS) != len(outN) {
			t.Errorf("bucket %q: sentinel matched %d, null matched %d", bucket, len(outS), len(outN))
		}
	}
}

func TestApplyCombinedFilters(t *testing.T) {
	urgent := &models.Tag{ID: 1, Name: "urgent"}
	tasks := []models.Task{
		{ID: 1, Title: "ship release", Priority: models.PriorityHigh, DueDate: dueOn(testToday), Tags: []*models.Tag{urgent}},
		{ID: 2, Title: "ship release notes", Priority: models.PriorityHigh, DueDate: dueOn(testToday)},
		{ID: 3, Title: "ship release", Priority: models.PriorityLow, DueDate: dueOn(testToday), Tags: []*models.Tag{urgent}},
	}

	f := Filter{
		Keyword:  "ship",
		Status:   boolPtr(false),
		Priority: prioPtr(models.PriorityHigh),
		TagIDs:   []uint{1},
		DueDate:  DueToday,
	}
	out, _ := Apply(tasks, f, testToday)
	if got, want := taskIDs(out), []uint{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("combined filters: got %v, want %v", got, want)
	}
}

func TestApplyIsPure(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "x", DueDate: dueOn(testToday)},
		{ID: 2, Title: "y", Completed: true},
		{ID: 3, Title: "z", Priority: models.PriorityMedium},
	}
	f := Filter{Keyword: ""}

	out1, stats1 := Apply(tasks, f, testToday)
	out2, stats2 := Apply(tasks, f, testToday)

	if !reflect.DeepEqual(taskIDs(out1), taskIDs(out2)) || stats1 != stats2 {
		t.Errorf("repeated Apply diverged: %v/%+v vs %v/%+v",
			taskIDs(out1), stats1, taskIDs(out2), stats2)
	}
}

func TestFilterHasCriteria(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"zero filter", Filter{}, false},
		{"whitespace keyword", Filter{Keyword: "  "}, false},
		{"keyword", Filter{Keyword: "milk"}, true},
		{"status", Filter{Status: boolPtr(true)}, true},
		{"priority", Filter{Priority: prioPtr(models.PriorityNone)}, true},
		{"tags", Filter{TagIDs: []uint{1}}, true},
		{"due bucket", Filter{DueDate: DueWeek}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.HasCriteria(); got != tt.want {
				t.Errorf("HasCriteria() = %v, want %v", got, tt.want)
			}
		})
	}
}
