package actors

import (
	stdctx "context"
	"log"
	"time"

	"github.com/asynkron/protoactor-go/actor"

	"eventrix/internal/discovery"
	"eventrix/internal/store"
	"eventrix/internal/utils"
)

// Tracked list names for ToggleTrackMsg.
const (
	TrackRegistered = "registered"
	TrackAttended   = "attended"
)

// Message types for interaction operations
type (
	ToggleLikeMsg struct {
		Kind string
		ID   string
	}

	VoteMsg struct {
		Kind   string
		ID     string
		Remove bool
	}

	ToggleTrackMsg struct {
		List string // TrackRegistered or TrackAttended
		ID   string
	}

	GetListMsg struct {
		Kind string
		Key  string // a store list key, e.g. store.KeyLikedEvents
	}

	GetInteractionsMsg struct {
		Kind string
	}

	// SetContentPIDMsg wires in the content actor after both actors
	// are spawned.
	SetContentPIDMsg struct {
		PID *actor.PID
	}

	ToggleResult struct {
		Active bool
		IDs    []string
	}

	// VoteResult reports a vote outcome. AlreadyVoted is a normal
	// result, not an error: the caller decides how to surface it.
	VoteResult struct {
		AlreadyVoted bool
		Voted        bool
		IDs          []string
	}
)

// InteractionActor owns the interaction id lists (liked, voted,
// registered, attended). Each list is ordered most recent first.
// Single ownership keeps every toggle a clean read-modify-write.
type InteractionActor struct {
	store      store.Store
	metrics    *utils.MetricsCollector
	contentPID *actor.PID
}

func NewInteractionActor(s store.Store, metrics *utils.MetricsCollector) actor.Actor {
	return &InteractionActor{
		store:   s,
		metrics: metrics,
	}
}

func (a *InteractionActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		log.Printf("InteractionActor started")
	case *actor.Stopping:
		log.Printf("InteractionActor stopping")
	case *actor.Stopped:
		log.Printf("InteractionActor stopped")
	case *actor.Restarting:
		log.Printf("InteractionActor restarting")
	case *SetContentPIDMsg:
		a.contentPID = msg.PID
	case *ToggleLikeMsg:
		a.handleToggleLike(context, msg)
	case *VoteMsg:
		log.Printf("InteractionActor: Processing vote for %s %s (remove=%v)", msg.Kind, msg.ID, msg.Remove)
		a.handleVote(context, msg)
	case *ToggleTrackMsg:
		a.handleToggleTrack(context, msg)
	case *GetListMsg:
		a.handleGetList(context, msg)
	case *GetInteractionsMsg:
		a.handleGetInteractions(context, msg)
	default:
		log.Printf("InteractionActor: Unknown message type: %T", msg)
	}
}

func (a *InteractionActor) handleToggleLike(context actor.Context, msg *ToggleLikeMsg) {
	startTime := time.Now()

	key := store.LikedKey(msg.Kind)
	ids, err := a.loadList(key)
	if err != nil {
		context.Respond(err)
		return
	}

	active := !contains(ids, msg.ID)
	if active {
		ids = prepend(ids, msg.ID)
	} else {
		ids = remove(ids, msg.ID)
	}
	if err := a.saveList(key, ids); err != nil {
		context.Respond(err)
		return
	}

	a.metrics.AddOperationLatency("toggle_like", time.Since(startTime))
	context.Respond(&ToggleResult{Active: active, IDs: ids})
}

func (a *InteractionActor) handleVote(context actor.Context, msg *VoteMsg) {
	startTime := time.Now()

	key := store.VotedKey(msg.Kind)
	ids, err := a.loadList(key)
	if err != nil {
		context.Respond(err)
		return
	}

	voted := contains(ids, msg.ID)
	if !msg.Remove {
		if voted {
			log.Printf("InteractionActor: duplicate vote on %s ignored", msg.ID)
			context.Respond(&VoteResult{AlreadyVoted: true, Voted: true, IDs: ids})
			return
		}
		ids = prepend(ids, msg.ID)
	} else {
		if !voted {
			context.Respond(utils.NewAppError(utils.ErrInvalidInput, "vote removal without a prior vote", nil))
			return
		}
		ids = remove(ids, msg.ID)
	}
	if err := a.saveList(key, ids); err != nil {
		context.Respond(err)
		return
	}

	delta := 1
	if msg.Remove {
		delta = -1
	}
	if a.contentPID != nil {
		context.Send(a.contentPID, &AdjustVotesMsg{Kind: msg.Kind, ID: msg.ID, Delta: delta})
	}

	a.metrics.AddOperationLatency("vote", time.Since(startTime))
	context.Respond(&VoteResult{Voted: !msg.Remove, IDs: ids})
}

func (a *InteractionActor) handleToggleTrack(context actor.Context, msg *ToggleTrackMsg) {
	key := store.KeyRegisteredEvents
	if msg.List == TrackAttended {
		key = store.KeyAttendedEvents
	} else if msg.List != TrackRegistered {
		context.Respond(utils.NewAppError(utils.ErrInvalidInput, "unknown tracking list: "+msg.List, nil))
		return
	}

	ids, err := a.loadList(key)
	if err != nil {
		context.Respond(err)
		return
	}

	active := !contains(ids, msg.ID)
	if active {
		ids = prepend(ids, msg.ID)
	} else {
		ids = remove(ids, msg.ID)
	}
	if err := a.saveList(key, ids); err != nil {
		context.Respond(err)
		return
	}
	context.Respond(&ToggleResult{Active: active, IDs: ids})
}

func (a *InteractionActor) handleGetList(context actor.Context, msg *GetListMsg) {
	ids, err := a.loadList(msg.Key)
	if err != nil {
		context.Respond(err)
		return
	}
	context.Respond(ids)
}

func (a *InteractionActor) handleGetInteractions(context actor.Context, msg *GetInteractionsMsg) {
	inter := &discovery.Interactions{}
	ctx := stdctx.Background()

	var err error
	if inter.Liked, err = store.GetIDList(ctx, a.store, store.LikedKey(msg.Kind)); err != nil {
		context.Respond(utils.NewAppError(utils.ErrStoreUnavailable, "reading liked list failed", err))
		return
	}
	if inter.Voted, err = store.GetIDList(ctx, a.store, store.VotedKey(msg.Kind)); err != nil {
		context.Respond(utils.NewAppError(utils.ErrStoreUnavailable, "reading voted list failed", err))
		return
	}
	if inter.Registered, err = store.GetIDList(ctx, a.store, store.KeyRegisteredEvents); err != nil {
		context.Respond(utils.NewAppError(utils.ErrStoreUnavailable, "reading registered list failed", err))
		return
	}
	if inter.Attended, err = store.GetIDList(ctx, a.store, store.KeyAttendedEvents); err != nil {
		context.Respond(utils.NewAppError(utils.ErrStoreUnavailable, "reading attended list failed", err))
		return
	}
	context.Respond(inter)
}

func (a *InteractionActor) loadList(key string) ([]string, *utils.AppError) {
	ids, err := store.GetIDList(stdctx.Background(), a.store, key)
	if err != nil {
		return nil, utils.NewAppError(utils.ErrStoreUnavailable, "reading "+key+" failed", err)
	}
	return ids, nil
}

func (a *InteractionActor) saveList(key string, ids []string) *utils.AppError {
	if err := store.SetJSON(stdctx.Background(), a.store, key, ids); err != nil {
		return utils.NewAppError(utils.ErrStoreUnavailable, "writing "+key+" failed", err)
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, cur := range ids {
		if cur == id {
			return true
		}
	}
	return false
}

// prepend puts the newest interaction first, so list order doubles as
// recency order.
func prepend(ids []string, id string) []string {
	return append([]string{id}, ids...)
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, cur := range ids {
		if cur != id {
			out = append(out, cur)
		}
	}
	return out
}
