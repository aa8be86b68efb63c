package discovery

import (
	"sort"

	"eventrix/internal/models"
)

// Sort orders items by the named key. All sorts are stable: ties keep
// their incoming order, so equal items stay in catalog order. Unknown
// keys leave the list untouched.
func Sort(items []models.ContentItem, sortBy string) {
	switch sortBy {
	case models.SortRecent:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case models.SortUpvoted:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Votes > items[j].Votes
		})
	case models.SortDistance:
		sort.SliceStable(items, func(i, j int) bool {
			// Items with no computed distance sink to the end.
			di, dj := items[i].DistanceKm, items[j].DistanceKm
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}
}
