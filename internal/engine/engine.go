// Package engine spawns the actor system behind the HTTP surface. All
// store writes flow through exactly two actors: ContentActor for the
// content and draft collections, InteractionActor for the interaction
// id lists.
package engine

import (
	"github.com/asynkron/protoactor-go/actor"

	"eventrix/internal/content"
	"eventrix/internal/engine/actors"
	"eventrix/internal/store"
	"eventrix/internal/utils"
)

// Engine coordinates communication between actors
type Engine struct {
	contentActor     *actor.PID
	interactionActor *actor.PID
}

func NewEngine(system *actor.ActorSystem, metrics *utils.MetricsCollector, s store.Store, catalog *content.Catalog) *Engine {
	context := system.Root

	// Spawn content actor
	contentProps := actor.PropsFromProducer(func() actor.Actor {
		return actors.NewContentActor(catalog, metrics)
	})
	contentPID := context.Spawn(contentProps)

	// Spawn interaction actor
	interactionProps := actor.PropsFromProducer(func() actor.Actor {
		return actors.NewInteractionActor(s, metrics)
	})
	interactionPID := context.Spawn(interactionProps)

	// Cross-wire the PIDs: votes flow interaction -> content, view
	// resolution flows content -> interaction.
	context.Send(contentPID, &actors.SetInteractionPIDMsg{PID: interactionPID})
	context.Send(interactionPID, &actors.SetContentPIDMsg{PID: contentPID})

	return &Engine{
		contentActor:     contentPID,
		interactionActor: interactionPID,
	}
}

// GetContentActor returns the PID of the content actor
func (e *Engine) GetContentActor() *actor.PID {
	return e.contentActor
}

// GetInteractionActor returns the PID of the interaction actor
func (e *Engine) GetInteractionActor() *actor.PID {
	return e.interactionActor
}
