package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, conn *Connection) Message {
	t.Helper()
	select {
	case data := <-conn.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func TestHub_BroadcastToEveryConnectionOfUser(t *testing.T) {
	h := NewHub()
	tab1 := &Connection{UserID: "u1", Send: make(chan []byte, 4), Hub: h}
	tab2 := &Connection{UserID: "u1", Send: make(chan []byte, 4), Hub: h}
	other := &Connection{UserID: "u2", Send: make(chan []byte, 4), Hub: h}
	h.Register(tab1)
	h.Register(tab2)
	h.Register(other)

	h.BroadcastToUser("u1", "status_update", map[string]any{"face": "sad"})

	for _, c := range []*Connection{tab1, tab2} {
		msg := receive(t, c)
		assert.Equal(t, MsgStatusUpdate, msg.Type)
		assert.JSONEq(t, `{"face":"sad"}`, string(msg.Payload))
	}

	// u2 only gets its own messages
	h.BroadcastToUser("u2", "error", map[string]string{"error": "x"})
	assert.Equal(t, MsgError, receive(t, other).Type)
	assert.Equal(t, 2, h.ConnectionCount("u1"))
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := NewHub()
	conn := &Connection{UserID: "u1", Send: make(chan []byte, 1), Hub: h}
	h.Register(conn)
	h.Unregister(conn)

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("send channel not closed")
	}
	assert.Zero(t, h.ConnectionCount("u1"))

	// a second unregister is a no-op
	h.Unregister(conn)
}

func TestHub_DropsWhenBufferFull(t *testing.T) {
	h := NewHub()
	conn := &Connection{UserID: "u1", Send: make(chan []byte, 1), Hub: h}
	h.Register(conn)

	h.BroadcastToUser("u1", "status_update", 1)
	h.BroadcastToUser("u1", "status_update", 2)
	h.BroadcastToUser("u1", "status_update", 3)

	msg := receive(t, conn)
	assert.Equal(t, "1", string(msg.Payload))
}
