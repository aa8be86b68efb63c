package discovery

import (
	"strings"
	"time"

	"eventrix/internal/models"
)

// Apply runs the predicate filters over items in a fixed order:
// category, status, distance, date range, then text search. Every
// predicate is independent, so the order only matters for how fast
// the list shrinks. The input slice is never mutated.
func Apply(items []models.ContentItem, opts models.FilterOptions, now time.Time) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))

	query := strings.ToLower(strings.TrimSpace(opts.Search))
	windowStart, windowEnd, hasWindow := time.Time{}, time.Time{}, false
	if opts.DateRange != "" && opts.DateRange != models.FilterAll {
		windowStart, windowEnd, hasWindow = dateWindow(opts.DateRange, now)
	}

	for i := range items {
		item := &items[i]
		if !matchesCategory(item, opts.Category) {
			continue
		}
		if !matchesStatus(item, opts.Status) {
			continue
		}
		if !matchesDistance(item, opts.MaxDistanceKm) {
			continue
		}
		if hasWindow && !inWindow(item, windowStart, windowEnd) {
			continue
		}
		if query != "" && !matchesSearch(item, query) {
			continue
		}
		out = append(out, *item)
	}
	return out
}

func matchesCategory(item *models.ContentItem, category string) bool {
	if category == "" || category == models.FilterAll {
		return true
	}
	return strings.EqualFold(item.Category, category)
}

// matchesStatus excludes status-less items (events) from any concrete
// status filter.
func matchesStatus(item *models.ContentItem, status string) bool {
	if status == "" || status == models.FilterAll {
		return true
	}
	if item.Status == "" {
		return false
	}
	return strings.EqualFold(item.Status, status)
}

// matchesDistance drops items with no computed distance: a record
// without coordinates cannot satisfy a concrete radius filter.
func matchesDistance(item *models.ContentItem, maxKm *float64) bool {
	if maxKm == nil {
		return true
	}
	if item.DistanceKm == nil {
		return false
	}
	return *item.DistanceKm <= *maxKm
}

// matchesSearch looks for the query as a case-insensitive substring of
// any text field, including tags and the organizer or reporter name.
func matchesSearch(item *models.ContentItem, query string) bool {
	for _, field := range []string{
		item.Title,
		item.Description,
		item.Location,
		item.Category,
		item.Organizer,
		item.ReportedBy,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
