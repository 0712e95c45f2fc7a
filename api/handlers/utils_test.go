package handlers

import (
	"reflect"
	"testing"

	"github.com/kutbudev/gorevce/pkg/models"
)

func TestParsePriorityFilter(t *testing.T) {
	tests := []struct {
		in   string
		want *models.Priority
	}{
		{"", nil},
		{"garbage", nil},
		{"none", prioPtr(models.PriorityNone)},
		{"0", prioPtr(models.PriorityNone)},
		{"low", prioPtr(models.PriorityLow)},
		{"M", prioPtr(models.PriorityMedium)},
		{"HIGH", prioPtr(models.PriorityHigh)},
		{" high ", prioPtr(models.PriorityHigh)},
	}
	for _, tt := range tests {
		got := parsePriorityFilter(tt.in)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("parsePriorityFilter(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("parsePriorityFilter(%q) = %v, want %v", tt.in, *got, *tt.want)
		}
	}
}

func prioPtr(p models.Priority) *models.Priority { return &p }

func TestParseStatusFilter(t *testing.T) {
	if got := parseStatusFilter(""); got != nil {
		t.Errorf("empty status should mean no filter, got %v", *got)
	}
	if got := parseStatusFilter("neither"); got != nil {
		t.Errorf("malformed status should mean no filter, got %v", *got)
	}
	if got := parseStatusFilter("true"); got == nil || !*got {
		t.Error("status=true should filter for completed")
	}
	if got := parseStatusFilter("false"); got == nil || *got {
		t.Error("status=false should filter for incomplete")
	}
}

func TestParseTagIDs(t *testing.T) {
	tests := []struct {
		in   string
		want []uint
	}{
		{"", nil},
		{"  ", nil},
		{"1", []uint{1}},
		{"1,2,3", []uint{1, 2, 3}},
		{" 1 , 2 ", []uint{1, 2}},
		// Bad tokens are skipped, not fatal.
		{"1,x,3", []uint{1, 3}},
		{"x", nil},
	}
	for _, tt := range tests {
		if got := parseTagIDs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseTagIDs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, ok := parseID("42"); !ok || id != 42 {
		t.Errorf("parseID(42) = (%d, %v)", id, ok)
	}
	if _, ok := parseID("abc"); ok {
		t.Error("parseID should reject non-numeric input")
	}
	if _, ok := parseID("-1"); ok {
		t.Error("parseID should reject negative input")
	}
}
