package persistence

import (
	"strings"

	"github.com/Manzp111/smartville/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ResidencySortFields contains allowed sort fields for residencies
var ResidencySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"village_id": true,
}

// EventSortFields contains allowed sort fields for events
var EventSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"event_date": true,
	"status":     true,
}

// VolunteeringSortFields contains allowed sort fields for volunteering events
var VolunteeringSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"date":       true,
}

// VisitorSortFields contains allowed sort fields for visitors
var VisitorSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"time_in":    true,
	"time_out":   true,
}

// applyOrdering applies whitelisted ordering to the query
func applyOrdering(query *gorm.DB, filter shared.Filter, allowed map[string]bool, defaultField string) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowed, defaultField)
	return query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
}

// applyPagination applies page-based pagination to the query
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// escapeLike escapes LIKE metacharacters in user-supplied search text
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
