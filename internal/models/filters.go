package models

// FilterAll is the explicit "no filtering" value for enum-style filter
// options. Unrecognized option values are treated the same way rather
// than rejected, since filters come from a closed set of UI choices.
const FilterAll = "all"

// Date-range window names.
const (
	DateToday    = "today"
	DateTomorrow = "tomorrow"
	DateThisWeek = "this-week"
)

// Sort keys.
const (
	SortRecent   = "recent"
	SortUpvoted  = "upvoted"
	SortDistance = "distance"
)

// Named views resolved before the generic predicate set.
const (
	ViewLiked        = "liked"
	ViewUpvoted      = "upvoted"
	ViewPast         = "past"
	ViewAttended     = "attended"
	ViewMissed       = "missed"
	ViewDrafts       = "drafts"
	ViewEmergency    = "emergency"
	ViewLostAndFound = "lost & found"
)

// FilterOptions is the predicate configuration applied to a browse
// request. Zero values mean "no constraint"; MaxDistanceKm is a
// pointer so that an explicit 0 km threshold is distinguishable from
// an absent one.
type FilterOptions struct {
	Category      string
	Status        string
	Search        string
	DateRange     string
	MaxDistanceKm *float64
	View          string
	SortBy        string
}
