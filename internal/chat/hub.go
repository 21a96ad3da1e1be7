// Package chat is a broadcast relay for game-day chatter. It shares no
// state with the aggregation core; the hub owns the connection registry
// and a bounded in-process message history.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// historyLimit bounds how many chat messages are replayed to a joiner.
const historyLimit = 50

// Message is one relay frame. Type is one of "message", "system",
// "typing", or "history".
type Message struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId,omitempty"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content,omitempty"`
	IsTyping  bool      `json:"isTyping,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
}

// Hub maintains the set of connected clients and relays messages between
// them. All registry and history state is owned by the Run goroutine;
// everything else talks to it over channels.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	clients    map[*Client]bool
	history    []Message
}

// NewHub creates an empty hub. Call Run to start relaying.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 64),
		clients:    map[*Client]bool{},
		history:    []Message{},
	}
}

// Run relays until ctx is cancelled, then disconnects every client and
// clears the registry.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			client.enqueue(Message{Type: "history", Messages: h.recentHistory()})
			h.relay(Message{
				Type:    "system",
				Content: fmt.Sprintf("%s joined the chat", client.username),
			})
			log.Printf("[chat] client %s (%s) connected, %d online", client.id, client.username, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; !ok {
				continue
			}
			delete(h.clients, client)
			close(client.send)
			h.relay(Message{
				Type:    "system",
				Content: fmt.Sprintf("%s left the chat", client.username),
			})
			log.Printf("[chat] client %s (%s) disconnected, %d online", client.id, client.username, len(h.clients))

		case msg := <-h.broadcast:
			if msg.Type == "message" {
				h.history = append(h.history, msg)
				if len(h.history) > historyLimit {
					h.history = h.history[len(h.history)-historyLimit:]
				}
			}
			h.relay(msg)
		}
	}
}

// relay fans a frame out to every connected client. A client whose send
// buffer is full is dropped rather than allowed to stall the hub.
func (h *Hub) relay(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[chat] marshaling frame: %v", err)
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			delete(h.clients, client)
			close(client.send)
			log.Printf("[chat] client %s send buffer full, dropped", client.id)
		}
	}
}

func (h *Hub) recentHistory() []Message {
	if len(h.history) <= historyLimit {
		return append([]Message{}, h.history...)
	}
	return append([]Message{}, h.history[len(h.history)-historyLimit:]...)
}

// now is the timestamp format used on chat messages.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
