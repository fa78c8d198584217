package service

// Broadcaster pushes messages to a user's live sockets (avoids import cycle)
type Broadcaster interface {
	BroadcastToUser(userID string, msgType string, payload interface{})
}
