package actors

import (
	stdctx "context"
	"log"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/google/uuid"

	"eventrix/internal/content"
	"eventrix/internal/discovery"
	"eventrix/internal/models"
	"eventrix/internal/utils"
)

// Message types for content operations
type (
	BrowseMsg struct {
		Kind    string
		Options models.FilterOptions
	}

	GetItemMsg struct {
		Kind string
		ID   string
	}

	CreateItemMsg struct {
		Kind string
		Item models.ContentItem
	}

	SaveDraftMsg struct {
		Kind string
		Item models.ContentItem
	}

	// AdjustVotesMsg applies a vote delta to an item. InteractionActor
	// sends it after recording who voted; there is no response.
	AdjustVotesMsg struct {
		Kind  string
		ID    string
		Delta int
	}

	GetCountsMsg struct {
		Kind string
	}

	// SetInteractionPIDMsg wires in the interaction actor after both
	// actors are spawned.
	SetInteractionPIDMsg struct {
		PID *actor.PID
	}
)

// ContentActor owns the content collections: every write to the user
// and draft records goes through here, which keeps the store's
// read-modify-write cycles single-threaded.
type ContentActor struct {
	catalog        *content.Catalog
	metrics        *utils.MetricsCollector
	interactionPID *actor.PID
}

func NewContentActor(catalog *content.Catalog, metrics *utils.MetricsCollector) actor.Actor {
	return &ContentActor{
		catalog: catalog,
		metrics: metrics,
	}
}

func (a *ContentActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		log.Printf("ContentActor started")
	case *actor.Stopping:
		log.Printf("ContentActor stopping")
	case *actor.Stopped:
		log.Printf("ContentActor stopped")
	case *actor.Restarting:
		log.Printf("ContentActor restarting")
	case *SetInteractionPIDMsg:
		a.interactionPID = msg.PID
	case *BrowseMsg:
		a.handleBrowse(context, msg)
	case *GetItemMsg:
		a.handleGetItem(context, msg)
	case *CreateItemMsg:
		a.handleCreateItem(context, msg)
	case *SaveDraftMsg:
		a.handleSaveDraft(context, msg)
	case *AdjustVotesMsg:
		a.handleAdjustVotes(msg)
	case *GetCountsMsg:
		context.Respond(len(a.catalog.Merged(stdctx.Background(), msg.Kind)))
	default:
		log.Printf("ContentActor: Unknown message type: %T", msg)
	}
}

func (a *ContentActor) handleBrowse(context actor.Context, msg *BrowseMsg) {
	startTime := time.Now()
	ctx := stdctx.Background()

	items := a.catalog.Merged(ctx, msg.Kind)

	if msg.Options.View != "" && msg.Options.View != models.FilterAll {
		inter, err := a.fetchInteractions(context, msg.Kind)
		if err != nil {
			context.Respond(err)
			return
		}
		items = discovery.Resolve(msg.Options.View, items, inter, startTime)
	}

	items = discovery.Apply(items, msg.Options, startTime)
	discovery.Sort(items, msg.Options.SortBy)

	a.metrics.AddOperationLatency("browse", time.Since(startTime))
	context.Respond(items)
}

// fetchInteractions asks the interaction actor for the current lists.
// View resolution happens here rather than in handlers so that browse
// stays one message from the caller's point of view.
func (a *ContentActor) fetchInteractions(context actor.Context, kind string) (discovery.Interactions, *utils.AppError) {
	var inter discovery.Interactions
	if a.interactionPID == nil {
		return inter, utils.NewAppError(utils.ErrActorNotFound, "interaction actor not wired", nil)
	}

	future := context.RequestFuture(
		a.interactionPID,
		&GetInteractionsMsg{Kind: kind},
		5*time.Second,
	)
	result, err := future.Result()
	if err != nil {
		return inter, utils.NewActorTimeoutError("InteractionActor")
	}
	state, ok := result.(*discovery.Interactions)
	if !ok || state == nil {
		return inter, utils.NewAppError(utils.ErrMessageRejected, "unexpected interaction response", nil)
	}

	drafts, draftErr := a.catalog.Drafts(stdctx.Background(), kind)
	if draftErr != nil {
		log.Printf("ContentActor: reading drafts failed: %v", draftErr)
	}
	inter = *state
	inter.Drafts = drafts
	return inter, nil
}

func (a *ContentActor) handleGetItem(context actor.Context, msg *GetItemMsg) {
	item, err := a.catalog.Find(stdctx.Background(), msg.Kind, msg.ID)
	if err != nil {
		context.Respond(utils.NewContentNotFoundError(msg.ID))
		return
	}
	context.Respond(&item)
}

// newItemID mints a kind-prefixed id for user-created records, so ids
// read as evt_... or iss_... next to the numeric seed ids.
func newItemID(kind string) string {
	prefix := "evt_"
	if kind == models.KindIssue {
		prefix = "iss_"
	}
	return prefix + uuid.New().String()
}

func (a *ContentActor) handleCreateItem(context actor.Context, msg *CreateItemMsg) {
	startTime := time.Now()

	item := msg.Item
	item.Kind = msg.Kind
	if item.Title == "" || item.Category == "" {
		context.Respond(utils.NewAppError(utils.ErrInvalidInput, "title and category are required", nil))
		return
	}
	if item.ID == "" {
		item.ID = newItemID(msg.Kind)
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Votes < 0 {
		item.Votes = 0
	}

	a.catalog.Annotate(&item)

	log.Printf("ContentActor: Creating new %s: %s", item.Kind, item.ID)
	if err := a.catalog.SaveUserItem(stdctx.Background(), item); err != nil {
		context.Respond(err)
		return
	}

	a.metrics.AddOperationLatency("create_item", time.Since(startTime))
	context.Respond(&item)
}

func (a *ContentActor) handleSaveDraft(context actor.Context, msg *SaveDraftMsg) {
	item := msg.Item
	item.Kind = msg.Kind
	if item.ID == "" {
		item.ID = newItemID(msg.Kind)
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	if err := a.catalog.SaveDraft(stdctx.Background(), item); err != nil {
		context.Respond(err)
		return
	}
	context.Respond(&item)
}

func (a *ContentActor) handleAdjustVotes(msg *AdjustVotesMsg) {
	if _, err := a.catalog.AdjustVotes(stdctx.Background(), msg.Kind, msg.ID, msg.Delta); err != nil {
		log.Printf("ContentActor: vote adjustment for %s failed: %v", msg.ID, err)
	}
}
