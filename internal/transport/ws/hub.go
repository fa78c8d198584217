package ws

import (
	"encoding/json"
	"sync"

	"mindhealth/internal/observability"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgStatusUpdate MessageType = "status_update"
	MsgError        MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per user. A user may have several
// connections open (one per tab).
type Hub struct {
	conns map[string]map[*Connection]struct{} // userID -> connections

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

// BroadcastMessage is a message for every connection of one user
type BroadcastMessage struct {
	UserID  string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	log := observability.WithFields("component", "ws_hub")
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.UserID] == nil {
				h.conns[conn.UserID] = make(map[*Connection]struct{})
			}
			h.conns[conn.UserID][conn] = struct{}{}
			n := len(h.conns[conn.UserID])
			h.mu.Unlock()
			log.Debug("status socket connected", "user_id", conn.UserID, "connections", n)

		case conn := <-h.unregister:
			h.mu.Lock()
			if userConns, ok := h.conns[conn.UserID]; ok {
				if _, ok := userConns[conn]; ok {
					delete(userConns, conn)
					close(conn.Send)
					if len(userConns) == 0 {
						delete(h.conns, conn.UserID)
					}
					log.Debug("status socket disconnected", "user_id", conn.UserID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.UserID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// ConnectionCount returns the number of open connections of userID.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// BroadcastToUser sends a message to every connection of a user (implements service.Broadcaster)
func (h *Hub) BroadcastToUser(userID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		UserID: userID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// encode builds a single envelope outside the hub loop.
func encode(msgType MessageType, payload interface{}) []byte {
	p, _ := json.Marshal(payload)
	data, _ := json.Marshal(&Message{Type: msgType, Payload: p})
	return data
}
