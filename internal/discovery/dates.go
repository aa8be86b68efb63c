// Package discovery turns the merged catalog into the list a browse
// request actually sees: named views, predicate filters, and stable
// sorts, applied in that order.
package discovery

import (
	"time"

	"eventrix/internal/models"
)

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// dateWindow resolves a named range to a half-open [start, end)
// calendar window anchored at now. ok is false for unknown names,
// which callers treat as "all".
func dateWindow(name string, now time.Time) (start, end time.Time, ok bool) {
	today := startOfDay(now)
	switch name {
	case models.DateToday:
		return today, today.AddDate(0, 0, 1), true
	case models.DateTomorrow:
		return today.AddDate(0, 0, 1), today.AddDate(0, 0, 2), true
	case models.DateThisWeek:
		return today, today.AddDate(0, 0, 7), true
	}
	return time.Time{}, time.Time{}, false
}

// inWindow reports whether an item's interval overlaps the window. A
// multi-day event counts for every window it touches.
func inWindow(item *models.ContentItem, windowStart, windowEnd time.Time) bool {
	itemStart, itemEnd := item.Interval()
	if itemStart.IsZero() {
		return false
	}
	return itemStart.Before(windowEnd) && !itemEnd.Before(windowStart)
}
