package actors

import (
	stdctx "context"
	"strings"
	"testing"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrix/internal/content"
	"eventrix/internal/discovery"
	"eventrix/internal/models"
	"eventrix/internal/store"
	"eventrix/internal/utils"
)

const futureTimeout = 5 * time.Second

type actorFixture struct {
	system         *actor.ActorSystem
	store          *store.MemoryStore
	contentPID     *actor.PID
	interactionPID *actor.PID
}

func newActorFixture(t *testing.T) *actorFixture {
	t.Helper()

	system := actor.NewActorSystem()
	s := store.NewMemoryStore()
	metrics := utils.NewMetricsCollector()
	catalog := content.NewCatalog(s, nil)

	contentPID := system.Root.Spawn(actor.PropsFromProducer(func() actor.Actor {
		return NewContentActor(catalog, metrics)
	}))
	interactionPID := system.Root.Spawn(actor.PropsFromProducer(func() actor.Actor {
		return NewInteractionActor(s, metrics)
	}))
	system.Root.Send(contentPID, &SetInteractionPIDMsg{PID: interactionPID})
	system.Root.Send(interactionPID, &SetContentPIDMsg{PID: contentPID})

	t.Cleanup(func() {
		system.Root.Stop(contentPID)
		system.Root.Stop(interactionPID)
	})

	return &actorFixture{
		system:         system,
		store:          s,
		contentPID:     contentPID,
		interactionPID: interactionPID,
	}
}

func (f *actorFixture) ask(t *testing.T, pid *actor.PID, msg interface{}) interface{} {
	t.Helper()
	result, err := f.system.Root.RequestFuture(pid, msg, futureTimeout).Result()
	require.NoError(t, err)
	return result
}

func TestBrowseReturnsBaseline(t *testing.T) {
	f := newActorFixture(t)

	result := f.ask(t, f.contentPID, &BrowseMsg{Kind: models.KindEvent})
	items, ok := result.([]models.ContentItem)
	require.True(t, ok, "unexpected response type %T", result)
	assert.Len(t, items, 10)
}

func TestCreateItemThenBrowse(t *testing.T) {
	f := newActorFixture(t)

	result := f.ask(t, f.contentPID, &CreateItemMsg{
		Kind: models.KindIssue,
		Item: models.ContentItem{Title: "Leaking pipe", Category: "water"},
	})
	created, ok := result.(*models.ContentItem)
	require.True(t, ok, "unexpected response type %T", result)
	assert.True(t, strings.HasPrefix(created.ID, "iss_"), "minted issue id %q should carry the iss_ prefix", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	result = f.ask(t, f.contentPID, &BrowseMsg{Kind: models.KindIssue})
	items := result.([]models.ContentItem)
	assert.Len(t, items, 14)
}

func TestCreateItemRequiresTitleAndCategory(t *testing.T) {
	f := newActorFixture(t)

	result := f.ask(t, f.contentPID, &CreateItemMsg{
		Kind: models.KindEvent,
		Item: models.ContentItem{Title: "No category"},
	})
	appErr, ok := result.(*utils.AppError)
	require.True(t, ok, "unexpected response type %T", result)
	assert.Equal(t, utils.ErrInvalidInput, appErr.Code)
}

func TestGetItemNotFound(t *testing.T) {
	f := newActorFixture(t)

	result := f.ask(t, f.contentPID, &GetItemMsg{Kind: models.KindEvent, ID: "nope"})
	appErr, ok := result.(*utils.AppError)
	require.True(t, ok, "unexpected response type %T", result)
	assert.Equal(t, utils.ErrNotFound, appErr.Code)
}

func TestVoteDuplicateIsABooleanNotAnError(t *testing.T) {
	f := newActorFixture(t)

	result := f.ask(t, f.interactionPID, &VoteMsg{Kind: models.KindIssue, ID: "issue_2"})
	vote, ok := result.(*VoteResult)
	require.True(t, ok, "unexpected response type %T", result)
	assert.False(t, vote.AlreadyVoted)
	assert.True(t, vote.Voted)
	assert.Equal(t, []string{"issue_2"}, vote.IDs)

	result = f.ask(t, f.interactionPID, &VoteMsg{Kind: models.KindIssue, ID: "issue_2"})
	vote = result.(*VoteResult)
	assert.True(t, vote.AlreadyVoted)
	assert.Equal(t, []string{"issue_2"}, vote.IDs, "duplicate vote must not change the list")
}

func TestVoteAdjustsContentVotes(t *testing.T) {
	f := newActorFixture(t)

	f.ask(t, f.interactionPID, &VoteMsg{Kind: models.KindIssue, ID: "issue_2"})

	// AdjustVotesMsg is fire-and-forget; poll the catalog through the
	// content actor until the override lands.
	deadline := time.Now().Add(2 * time.Second)
	for {
		result := f.ask(t, f.contentPID, &GetItemMsg{Kind: models.KindIssue, ID: "issue_2"})
		if item, ok := result.(*models.ContentItem); ok && item.Votes == 28 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("vote count never reached 28")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestVoteRemoveRequiresPriorVote(t *testing.T) {
	f := newActorFixture(t)

	result := f.ask(t, f.interactionPID, &VoteMsg{Kind: models.KindEvent, ID: "1", Remove: true})
	appErr, ok := result.(*utils.AppError)
	require.True(t, ok, "unexpected response type %T", result)
	assert.Equal(t, utils.ErrInvalidInput, appErr.Code)
}

func TestVoteRemoveRoundTrip(t *testing.T) {
	f := newActorFixture(t)

	f.ask(t, f.interactionPID, &VoteMsg{Kind: models.KindEvent, ID: "1"})
	result := f.ask(t, f.interactionPID, &VoteMsg{Kind: models.KindEvent, ID: "1", Remove: true})
	vote := result.(*VoteResult)
	assert.False(t, vote.Voted)
	assert.Empty(t, vote.IDs)
}

func TestToggleLikeRecencyOrder(t *testing.T) {
	f := newActorFixture(t)

	f.ask(t, f.interactionPID, &ToggleLikeMsg{Kind: models.KindEvent, ID: "1"})
	result := f.ask(t, f.interactionPID, &ToggleLikeMsg{Kind: models.KindEvent, ID: "2"})
	toggle := result.(*ToggleResult)
	assert.True(t, toggle.Active)
	assert.Equal(t, []string{"2", "1"}, toggle.IDs, "newest like comes first")

	result = f.ask(t, f.interactionPID, &ToggleLikeMsg{Kind: models.KindEvent, ID: "1"})
	toggle = result.(*ToggleResult)
	assert.False(t, toggle.Active)
	assert.Equal(t, []string{"2"}, toggle.IDs)
}

func TestToggleLikeDoubleToggleIsIdentity(t *testing.T) {
	f := newActorFixture(t)

	f.ask(t, f.interactionPID, &ToggleLikeMsg{Kind: models.KindIssue, ID: "issue_1"})
	f.ask(t, f.interactionPID, &ToggleLikeMsg{Kind: models.KindIssue, ID: "issue_1"})

	ids, err := store.GetIDList(stdctx.Background(), f.store, store.KeyLikedIssues)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleTrackUnknownList(t *testing.T) {
	f := newActorFixture(t)

	result := f.ask(t, f.interactionPID, &ToggleTrackMsg{List: "bookmarked", ID: "1"})
	appErr, ok := result.(*utils.AppError)
	require.True(t, ok, "unexpected response type %T", result)
	assert.Equal(t, utils.ErrInvalidInput, appErr.Code)
}

func TestBrowseLikedView(t *testing.T) {
	f := newActorFixture(t)

	f.ask(t, f.interactionPID, &ToggleLikeMsg{Kind: models.KindEvent, ID: "3"})
	f.ask(t, f.interactionPID, &ToggleLikeMsg{Kind: models.KindEvent, ID: "1"})

	result := f.ask(t, f.contentPID, &BrowseMsg{
		Kind:    models.KindEvent,
		Options: models.FilterOptions{View: models.ViewLiked},
	})
	items, ok := result.([]models.ContentItem)
	require.True(t, ok, "unexpected response type %T", result)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
}

func TestBrowseDraftsView(t *testing.T) {
	f := newActorFixture(t)

	f.ask(t, f.contentPID, &SaveDraftMsg{
		Kind: models.KindEvent,
		Item: models.ContentItem{Title: "Unfinished", Category: "tech"},
	})

	result := f.ask(t, f.contentPID, &BrowseMsg{
		Kind:    models.KindEvent,
		Options: models.FilterOptions{View: models.ViewDrafts},
	})
	items, ok := result.([]models.ContentItem)
	require.True(t, ok, "unexpected response type %T", result)
	require.Len(t, items, 1)
	assert.Equal(t, "Unfinished", items[0].Title)
}

func TestGetInteractionsEmpty(t *testing.T) {
	f := newActorFixture(t)

	result := f.ask(t, f.interactionPID, &GetInteractionsMsg{Kind: models.KindEvent})
	inter, ok := result.(*discovery.Interactions)
	require.True(t, ok, "unexpected response type %T", result)
	assert.Empty(t, inter.Liked)
	assert.Empty(t, inter.Voted)
}
