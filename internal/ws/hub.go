package ws

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/events"
)

// dateMessage routes an encoded event to one menu date's room
type dateMessage struct {
	Date    string
	Message []byte
}

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	// Registered clients by menu date (YYYY-MM-DD)
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	broadcast chan *dateMessage

	mu     sync.RWMutex
	logger *zap.SugaredLogger
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *dateMessage, 256),
		logger:     logger,
	}
}

// Run starts the hub's main loop and returns when ctx is done.
// This should be called as a goroutine: go hub.Run(ctx)
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.date] == nil {
				h.rooms[client.date] = make(map[*Client]bool)
			}
			h.rooms[client.date][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.rooms[msg.Date] {
				select {
				case client.send <- msg.Message:
				default:
					// Send buffer full; drop the client
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.rooms[client.date]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.date)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.rooms {
		for client := range clients {
			h.remove(client)
		}
	}
}

// BroadcastToDate queues a raw message for every client watching date.
func (h *Hub) BroadcastToDate(date string, message []byte) {
	h.broadcast <- &dateMessage{Date: date, Message: message}
}

// PublishMenuUpdated satisfies events.Publisher.
func (h *Hub) PublishMenuUpdated(_ context.Context, e events.MenuUpdated) error {
	message, err := e.Encode()
	if err != nil {
		return err
	}
	h.BroadcastToDate(e.Date, message)
	return nil
}

// Subscribers returns the number of clients watching date.
func (h *Hub) Subscribers(date string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[date])
}
