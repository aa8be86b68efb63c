package models

import "time"

// Content kinds handled by the engine. Events and issues share the
// canonical ContentItem shape and flow through the same pipeline.
const (
	KindEvent = "event"
	KindIssue = "issue"
)

// Issue status values. Unknown values pass through untouched.
const (
	StatusReported   = "reported"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ContentItem is the canonical normalized record for an event or a
// reported issue. Everything downstream of the normalizer works on
// this shape and never re-checks field presence.
type ContentItem struct {
	ID          string       `json:"id"`
	Kind        string       `json:"kind"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Status      string       `json:"status,omitempty"` // issues only; empty = none
	Priority    string       `json:"priority,omitempty"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Tags        []string     `json:"tags"`
	Organizer   string       `json:"organizer,omitempty"`
	ReportedBy  string       `json:"reportedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	StartTime time.Time `json:"startTime,omitempty"` // events only
	EndTime   time.Time `json:"endTime,omitempty"`

	Votes int `json:"votes"`

	// DistanceKm is the unrounded distance from the configured
	// reference point, set at normalization time when coordinates are
	// present. Radius filters compare against it directly; DistanceLabel
	// is the rounded display form ("0.2 km").
	DistanceKm    *float64 `json:"distanceKm,omitempty"`
	DistanceLabel string   `json:"distance,omitempty"`
}

// Interval returns the item's active time span. Items without a
// start/end pair (issues) collapse to their creation instant so that
// calendar-window filters still apply to them.
func (c *ContentItem) Interval() (start, end time.Time) {
	if !c.StartTime.IsZero() {
		end = c.EndTime
		if end.IsZero() {
			end = c.StartTime
		}
		return c.StartTime, end
	}
	return c.CreatedAt, c.CreatedAt
}
