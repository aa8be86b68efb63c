package handlers

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"

	"eventrix/internal/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced by the HTTP middleware; the update
		// stream itself carries no private data.
		return true
	},
}

// HandleWebSocket upgrades a connection and subscribes it to content
// update broadcasts.
func (s *Server) HandleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}

		client := &websocket.Client{
			Hub:  s.Hub,
			ID:   uuid.New(),
			Conn: conn,
			Send: make(chan []byte, 256),
		}
		client.Hub.Register <- client
		log.Printf("WebSocket client %s connected", client.ID)

		go client.WritePump()
		go client.ReadPump()
	}
}
