package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub tracks connected board clients and fans frames out to them.
type Hub struct {
	clients     map[*Client]bool
	userClients map[uint64][]*Client
	broadcast   chan []byte
	register    chan *Client
	unregister  chan *Client
	done        chan struct{}
	mu          sync.RWMutex
	now         func() time.Time
	logger      *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		userClients: make(map[uint64][]*Client),
		broadcast:   make(chan []byte, 64),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		done:        make(chan struct{}),
		now:         time.Now,
		logger:      logger,
	}
}

// Run serves registrations and broadcasts until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				h.drop(client)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Debug("board client connected", zap.Uint64("userID", client.UserID))
		case client := <-h.unregister:
			h.mu.Lock()
			if h.clients[client] {
				h.drop(client)
				h.logger.Debug("board client disconnected", zap.Uint64("userID", client.UserID))
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					h.logger.Warn("board client too slow, dropping", zap.Uint64("userID", client.UserID))
					h.drop(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must be called with mu held.
func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.Send)
	clients := h.userClients[client.UserID]
	for i, c := range clients {
		if c == client {
			h.userClients[client.UserID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.userClients[client.UserID]) == 0 {
		delete(h.userClients, client.UserID)
	}
}

// Register hands client to the running hub. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) encode(messageType string, payload interface{}) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: h.now().UTC(),
	})
}

// Broadcast queues a frame for every connected client.
func (h *Hub) Broadcast(ctx context.Context, messageType string, payload interface{}) error {
	message, err := h.encode(messageType, payload)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- message:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SendToUser delivers a frame to each connection of one user. Missing users are not an error.
func (h *Hub) SendToUser(userID uint64, messageType string, payload interface{}) error {
	message, err := h.encode(messageType, payload)
	if err != nil {
		return err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.userClients[userID] {
		select {
		case client.Send <- message:
		default:
		}
	}
	return nil
}

// Connected reports how many sockets are open.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
