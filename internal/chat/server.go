package chat

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades HTTP requests into relay connections.
type Handler struct {
	hub *Hub
}

// NewHandler creates a relay handler over hub. The hub's Run loop must be
// started by the caller.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ServeHTTP upgrades the connection and registers the client. The username
// comes from the query string; absent one, the client gets a generated
// fan handle.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[chat] upgrade failed: %v", err)
		return
	}

	id := uuid.NewString()
	username := r.URL.Query().Get("username")
	if username == "" {
		username = "fan-" + id[:8]
	}

	client := &Client{
		id:       id,
		username: username,
		hub:      h.hub,
		conn:     conn,
		send:     make(chan []byte, 256),
	}

	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
