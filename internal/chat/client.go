package chat

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is one relay connection. The read pump is the only reader of the
// socket, the write pump the only writer.
type Client struct {
	id       string
	username string
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
}

// inboundFrame is what a browser client sends: a chat message or a typing
// indicator.
type inboundFrame struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	IsTyping bool   `json:"isTyping"`
}

// enqueue marshals a frame onto the client's send buffer without blocking
// the hub.
func (c *Client) enqueue(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[chat] marshaling frame for client %s: %v", c.id, err)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// readPump parses inbound frames and forwards them through the hub with
// the client's identity attached. Unknown frame types are ignored.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[chat] client %s read error: %v", c.id, err)
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Printf("[chat] client %s sent malformed frame, ignoring: %v", c.id, err)
			continue
		}

		switch frame.Type {
		case "message":
			c.hub.broadcast <- Message{
				Type:      "message",
				UserID:    c.id,
				Username:  c.username,
				Content:   frame.Content,
				Timestamp: now(),
			}
		case "typing":
			c.hub.broadcast <- Message{
				Type:     "typing",
				UserID:   c.id,
				Username: c.username,
				IsTyping: frame.IsTyping,
			}
		}
	}
}

// writePump drains the send buffer onto the socket and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
