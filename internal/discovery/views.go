package discovery

import (
	"strings"
	"time"

	"eventrix/internal/models"
)

// Interactions carries the per-user interaction state a view needs.
// The id lists are ordered most recent first, matching how the
// interaction engine stores them.
type Interactions struct {
	Liked      []string
	Voted      []string
	Registered []string
	Attended   []string
	Drafts     []models.ContentItem
}

// Resolve narrows items to a named view. Interaction-backed views
// (liked, upvoted, attended) come back in interaction order, newest
// interaction first; the rest keep catalog order. An empty or unknown
// view returns the list unchanged.
func Resolve(view string, items []models.ContentItem, inter Interactions, now time.Time) []models.ContentItem {
	switch view {
	case models.ViewLiked:
		return OrderByRecency(inter.Liked, items)
	case models.ViewUpvoted:
		return OrderByRecency(inter.Voted, items)
	case models.ViewAttended:
		return OrderByRecency(inter.Attended, items)
	case models.ViewPast:
		return filterItems(items, func(item *models.ContentItem) bool {
			return ended(item, now)
		})
	case models.ViewMissed:
		registered := toSet(inter.Registered)
		attended := toSet(inter.Attended)
		return filterItems(items, func(item *models.ContentItem) bool {
			return registered[item.ID] && !attended[item.ID] && ended(item, now)
		})
	case models.ViewDrafts:
		return inter.Drafts
	case models.ViewEmergency:
		return filterItems(items, isEmergency)
	case models.ViewLostAndFound:
		return filterItems(items, isLostAndFound)
	}
	return items
}

var emergencyTags = map[string]bool{
	"emergency": true,
	"urgent":    true,
	"important": true,
	"alert":     true,
}

// isEmergency matches the emergency category, urgent priority or an
// emergency-class tag. Tech and music content never qualifies, however
// it is tagged.
func isEmergency(item *models.ContentItem) bool {
	category := strings.ToLower(item.Category)
	if category == "tech" || category == "music" {
		return false
	}
	if category == "emergency" || strings.EqualFold(item.Priority, "urgent") {
		return true
	}
	for _, tag := range item.Tags {
		if emergencyTags[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}

var lostFoundTags = map[string]bool{
	"lost":    true,
	"found":   true,
	"missing": true,
}

func isLostAndFound(item *models.ContentItem) bool {
	if strings.EqualFold(item.Category, models.ViewLostAndFound) {
		return true
	}
	for _, tag := range item.Tags {
		if lostFoundTags[strings.ToLower(tag)] {
			return true
		}
	}
	text := strings.ToLower(item.Title + " " + item.Description)
	for word := range lostFoundTags {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// OrderByRecency projects items through an ordered id list: the result
// holds only items whose id appears in ids, in the ids' order. Ids
// with no matching item are skipped.
func OrderByRecency(ids []string, items []models.ContentItem) []models.ContentItem {
	index := make(map[string]int, len(items))
	for i := range items {
		if _, seen := index[items[i].ID]; !seen {
			index[items[i].ID] = i
		}
	}
	out := make([]models.ContentItem, 0, len(ids))
	for _, id := range ids {
		if at, ok := index[id]; ok {
			out = append(out, items[at])
		}
	}
	return out
}

func ended(item *models.ContentItem, now time.Time) bool {
	_, end := item.Interval()
	return !end.IsZero() && end.Before(now)
}

func filterItems(items []models.ContentItem, keep func(*models.ContentItem) bool) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
