package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// ContentUpdate is the payload broadcast to every connected client
// when the catalog or an interaction list changes.
type ContentUpdate struct {
	Action string `json:"action"` // "created", "voted", "liked", "tracked"
	Kind   string `json:"kind"`
	ID     string `json:"id"`
}

// Hub maintains the set of active clients and broadcasts updates.
type Hub struct {
	// Registered clients.
	Clients map[*Client]bool

	// Outbound updates fanned out to every client.
	Broadcast chan []byte

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Mutex to protect concurrent access to the clients map.
	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[*Client]bool),
	}
}

// Run starts the hub's processing loop.
func (h *Hub) Run() {
	log.Println("WebSocket Hub started.")
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			log.Printf("WebSocket client %s registered. Total connections: %d", client.ID, len(h.Clients))
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				log.Printf("WebSocket client %s unregistered. Remaining connections: %d", client.ID, len(h.Clients))
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.mu.RLock()
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					log.Printf("Broadcast send buffer full for client %s", client.ID)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// NotifyContentChange queues a content update for broadcast. Handlers
// call this after a successful write; a busy hub drops the update
// rather than stalling the request.
func (h *Hub) NotifyContentChange(action, kind, id string) {
	payload, err := json.Marshal(ContentUpdate{Action: action, Kind: kind, ID: id})
	if err != nil {
		log.Printf("Failed to encode content update for %s: %v", id, err)
		return
	}
	select {
	case h.Broadcast <- payload:
	case <-time.After(1 * time.Second):
		log.Printf("Timeout queuing content update for %s. Hub might be busy or blocked.", id)
	}
}
