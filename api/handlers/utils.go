package handlers

import (
	"strconv"
	"strings"

	"github.com/kutbudev/gorevce/pkg/models"
)

// Helper functions shared across handlers

// parsePriorityFilter maps a query parameter to an exact-match priority
// filter. Empty or unrecognized values mean "no filter".
func parsePriorityFilter(s string) *models.Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		p := models.PriorityNone
		return &p
	case "low", "l", "1":
		p := models.PriorityLow
		return &p
	case "medium", "m", "2":
		p := models.PriorityMedium
		return &p
	case "high", "h", "3":
		p := models.PriorityHigh
		return &p
	default:
		return nil
	}
}

// parseStatusFilter maps a query parameter to a completion filter.
// Malformed values mean "no filter".
func parseStatusFilter(s string) *bool {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}

// parseTagIDs parses a comma separated id list, skipping bad tokens.
func parseTagIDs(s string) []uint {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
