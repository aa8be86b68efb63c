package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventrix/internal/models"
)

func TestResolveLikedFollowsInteractionOrder(t *testing.T) {
	inter := Interactions{Liked: []string{"c", "a"}}
	got := Resolve(models.ViewLiked, testItems(), inter, testNow)
	assert.Equal(t, []string{"c", "a"}, ids(got), "most recently liked comes first")
}

func TestResolveLikedSkipsUnknownIDs(t *testing.T) {
	inter := Interactions{Liked: []string{"ghost", "b"}}
	got := Resolve(models.ViewLiked, testItems(), inter, testNow)
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestResolveUpvoted(t *testing.T) {
	inter := Interactions{Voted: []string{"d", "c"}}
	got := Resolve(models.ViewUpvoted, testItems(), inter, testNow)
	assert.Equal(t, []string{"d", "c"}, ids(got))
}

func TestResolvePast(t *testing.T) {
	day := 24 * time.Hour
	items := append(testItems(), models.ContentItem{
		ID: "e", Kind: models.KindEvent, Title: "Last Week's Meetup", Category: "tech",
		CreatedAt: testNow.Add(-9 * day),
		StartTime: testNow.Add(-8 * day), EndTime: testNow.Add(-8*day + 3*time.Hour),
	})
	got := Resolve(models.ViewPast, items, Interactions{}, testNow)
	assert.Equal(t, []string{"c", "d", "e"}, ids(got), "issues collapse to their creation instant")
}

func TestResolveMissed(t *testing.T) {
	day := 24 * time.Hour
	items := append(testItems(), models.ContentItem{
		ID: "e", Kind: models.KindEvent, Title: "Last Week's Meetup", Category: "tech",
		CreatedAt: testNow.Add(-9 * day),
		StartTime: testNow.Add(-8 * day), EndTime: testNow.Add(-8*day + 3*time.Hour),
	})
	inter := Interactions{
		Registered: []string{"e", "b"}, // b has not happened yet
		Attended:   []string{},
	}
	got := Resolve(models.ViewMissed, items, inter, testNow)
	assert.Equal(t, []string{"e"}, ids(got))

	inter.Attended = []string{"e"}
	got = Resolve(models.ViewMissed, items, inter, testNow)
	assert.Empty(t, got, "attending removes an event from missed")
}

func TestResolveDrafts(t *testing.T) {
	drafts := []models.ContentItem{{ID: "draft_1", Title: "Unfinished", Category: "tech"}}
	got := Resolve(models.ViewDrafts, testItems(), Interactions{Drafts: drafts}, testNow)
	assert.Equal(t, drafts, got)
}

func TestResolveEmergency(t *testing.T) {
	items := append(testItems(),
		models.ContentItem{
			ID: "f", Kind: models.KindIssue, Title: "Gas leak", Category: "other",
			Priority: "urgent", CreatedAt: testNow,
		},
		models.ContentItem{
			ID: "h", Kind: models.KindEvent, Title: "Flood relief drive", Category: "community",
			Tags: []string{"Alert", "volunteers"}, CreatedAt: testNow,
		},
		models.ContentItem{
			ID: "i", Kind: models.KindEvent, Title: "Deadline extended", Category: "tech",
			Tags: []string{"urgent"}, CreatedAt: testNow,
		},
	)
	got := Resolve(models.ViewEmergency, items, Interactions{}, testNow)
	assert.Equal(t, []string{"f", "h"}, ids(got), "tech content never counts as an emergency")
}

func TestResolveLostAndFound(t *testing.T) {
	items := append(testItems(),
		models.ContentItem{
			ID: "g", Kind: models.KindEvent, Title: "Lost Golden Retriever", Category: "Lost & Found",
			CreatedAt: testNow,
		},
		models.ContentItem{
			ID: "h", Kind: models.KindIssue, Title: "Blue backpack", Category: "other",
			Description: "Found near the library steps", CreatedAt: testNow,
		},
	)
	got := Resolve(models.ViewLostAndFound, items, Interactions{}, testNow)
	assert.Equal(t, []string{"g", "h"}, ids(got))
}

func TestResolveUnknownViewPassesThrough(t *testing.T) {
	got := Resolve("everything", testItems(), Interactions{}, testNow)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got))
}

func TestOrderByRecencyEmptyList(t *testing.T) {
	assert.Empty(t, OrderByRecency(nil, testItems()))
}
