package websocket

import "time"

// Envelope wraps every frame pushed to board clients.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}
