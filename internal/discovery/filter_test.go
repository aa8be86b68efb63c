package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrix/internal/models"
)

var testNow = time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)

func km(v float64) *float64 { return &v }

func testItems() []models.ContentItem {
	day := 24 * time.Hour
	return []models.ContentItem{
		{
			ID: "a", Kind: models.KindEvent, Title: "AI Hackathon",
			Description: "48 hours of coding", Category: "tech",
			Location: "Research Park", Organizer: "Tech Events Chennai",
			Tags:      []string{"hackathon", "AI"},
			CreatedAt: testNow.Add(-10 * day),
			StartTime: testNow.Add(2 * time.Hour), EndTime: testNow.Add(26 * time.Hour),
			DistanceKm: km(1.2), Votes: 54,
		},
		{
			ID: "b", Kind: models.KindEvent, Title: "Music Festival",
			Description: "Three days of music", Category: "music",
			Location: "Marina Beach", Organizer: "Cultural Connect",
			Tags:      []string{"music", "festival"},
			CreatedAt: testNow.Add(-5 * day),
			StartTime: testNow.Add(3 * day), EndTime: testNow.Add(5 * day),
			DistanceKm: km(8.9), Votes: 67,
		},
		{
			ID: "c", Kind: models.KindIssue, Title: "Pothole on main road",
			Description: "Dangerous potholes", Category: "road",
			Status: models.StatusReported, Location: "Main Gate Road",
			ReportedBy: "Priya Sharma", Tags: []string{"pothole", "safety"},
			CreatedAt:  testNow.Add(-1 * day),
			DistanceKm: km(0.3), Votes: 27,
		},
		{
			ID: "d", Kind: models.KindIssue, Title: "Water supply disruption",
			Description: "No water for 3 days", Category: "water",
			Status: models.StatusInProgress, Location: "Velachery",
			ReportedBy: "Suresh Menon",
			CreatedAt:  testNow.Add(-40 * day),
			Votes:      45,
		},
	}
}

func ids(items []models.ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestApplyNoFilters(t *testing.T) {
	got := Apply(testItems(), models.FilterOptions{}, testNow)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got))
}

func TestApplyCategory(t *testing.T) {
	got := Apply(testItems(), models.FilterOptions{Category: "Tech"}, testNow)
	assert.Equal(t, []string{"a"}, ids(got))

	got = Apply(testItems(), models.FilterOptions{Category: models.FilterAll}, testNow)
	assert.Len(t, got, 4)
}

func TestApplyStatusExcludesStatusless(t *testing.T) {
	got := Apply(testItems(), models.FilterOptions{Status: models.StatusReported}, testNow)
	assert.Equal(t, []string{"c"}, ids(got), "events carry no status and must drop out")
}

func TestApplyDistance(t *testing.T) {
	got := Apply(testItems(), models.FilterOptions{MaxDistanceKm: km(2)}, testNow)
	assert.Equal(t, []string{"a", "c"}, ids(got), "items without a distance never match a radius")

	zero := 0.0
	got = Apply(testItems(), models.FilterOptions{MaxDistanceKm: &zero}, testNow)
	assert.Empty(t, got, "an explicit 0 km threshold is honored, not ignored")
}

func TestApplySearch(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"hackathon", []string{"a"}},         // tag and title
		{"PRIYA", []string{"c"}},             // reporter, case-insensitive
		{"marina", []string{"b"}},            // location
		{"water", []string{"d"}},             // category and title
		{"   ", []string{"a", "b", "c", "d"}}, // whitespace-only is a no-op
		{"zzz", []string{}},
	}
	for _, tc := range cases {
		got := Apply(testItems(), models.FilterOptions{Search: tc.query}, testNow)
		assert.Equal(t, tc.want, ids(got), "query %q", tc.query)
	}
}

func TestApplyDateWindows(t *testing.T) {
	got := Apply(testItems(), models.FilterOptions{DateRange: models.DateToday}, testNow)
	assert.Equal(t, []string{"a"}, ids(got))

	got = Apply(testItems(), models.FilterOptions{DateRange: models.DateTomorrow}, testNow)
	assert.Equal(t, []string{"a"}, ids(got), "a spans into tomorrow")

	got = Apply(testItems(), models.FilterOptions{DateRange: models.DateThisWeek}, testNow)
	assert.Equal(t, []string{"a", "b"}, ids(got))

	got = Apply(testItems(), models.FilterOptions{DateRange: "fortnight"}, testNow)
	assert.Len(t, got, 4, "unknown range names mean no date filtering")
}

func TestApplyPredicatesCommute(t *testing.T) {
	opts := models.FilterOptions{Category: "tech", Search: "coding", MaxDistanceKm: km(5)}
	combined := Apply(testItems(), opts, testNow)

	stepwise := Apply(testItems(), models.FilterOptions{Category: "tech"}, testNow)
	stepwise = Apply(stepwise, models.FilterOptions{MaxDistanceKm: km(5)}, testNow)
	stepwise = Apply(stepwise, models.FilterOptions{Search: "coding"}, testNow)

	assert.Equal(t, stepwise, combined)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := testItems()
	Apply(items, models.FilterOptions{Category: "tech"}, testNow)
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(items))
}
