package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(id, username string) *Client {
	return &Client{
		id:       id,
		username: username,
		send:     make(chan []byte, 64),
	}
}

// receive decodes the next frame off a client's send buffer.
func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case data := <-c.send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no frame received")
		return Message{}
	}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestJoinReplaysHistoryAndAnnounces(t *testing.T) {
	hub := startHub(t)

	alice := testClient("a", "alice")
	hub.register <- alice

	history := receive(t, alice)
	assert.Equal(t, "history", history.Type)
	assert.Empty(t, history.Messages)

	joined := receive(t, alice)
	assert.Equal(t, "system", joined.Type)
	assert.Equal(t, "alice joined the chat", joined.Content)
}

func TestMessagesBroadcastToAllAndRecorded(t *testing.T) {
	hub := startHub(t)

	alice := testClient("a", "alice")
	bob := testClient("b", "bob")
	hub.register <- alice
	receive(t, alice) // history
	receive(t, alice) // own join
	hub.register <- bob
	receive(t, bob)   // history
	receive(t, alice) // bob's join
	receive(t, bob)

	hub.broadcast <- Message{Type: "message", UserID: "a", Username: "alice", Content: "tip-off!"}

	for _, c := range []*Client{alice, bob} {
		msg := receive(t, c)
		assert.Equal(t, "message", msg.Type)
		assert.Equal(t, "tip-off!", msg.Content)
		assert.Equal(t, "alice", msg.Username)
	}

	// A late joiner gets the message in their history replay.
	carol := testClient("c", "carol")
	hub.register <- carol
	history := receive(t, carol)
	require.Equal(t, "history", history.Type)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, "tip-off!", history.Messages[0].Content)
}

func TestHistoryBounded(t *testing.T) {
	hub := startHub(t)

	alice := testClient("a", "alice")
	hub.register <- alice
	receive(t, alice)
	receive(t, alice)

	for i := 0; i < historyLimit+20; i++ {
		hub.broadcast <- Message{Type: "message", Content: fmt.Sprintf("msg %d", i)}
		receive(t, alice)
	}

	bob := testClient("b", "bob")
	hub.register <- bob
	history := receive(t, bob)

	require.Len(t, history.Messages, historyLimit)
	assert.Equal(t, "msg 20", history.Messages[0].Content)
	assert.Equal(t, fmt.Sprintf("msg %d", historyLimit+19), history.Messages[historyLimit-1].Content)
}

func TestTypingFramesNotRecorded(t *testing.T) {
	hub := startHub(t)

	alice := testClient("a", "alice")
	hub.register <- alice
	receive(t, alice)
	receive(t, alice)

	hub.broadcast <- Message{Type: "typing", UserID: "a", Username: "alice", IsTyping: true}
	typing := receive(t, alice)
	assert.Equal(t, "typing", typing.Type)
	assert.True(t, typing.IsTyping)

	bob := testClient("b", "bob")
	hub.register <- bob
	history := receive(t, bob)
	assert.Empty(t, history.Messages)
}

func TestLeaveAnnounced(t *testing.T) {
	hub := startHub(t)

	alice := testClient("a", "alice")
	bob := testClient("b", "bob")
	hub.register <- alice
	receive(t, alice)
	receive(t, alice)
	hub.register <- bob
	receive(t, bob)
	receive(t, alice)
	receive(t, bob)

	hub.unregister <- alice

	left := receive(t, bob)
	assert.Equal(t, "system", left.Type)
	assert.Equal(t, "alice left the chat", left.Content)
}
