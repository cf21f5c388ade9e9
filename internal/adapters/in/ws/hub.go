// Package ws pushes intake completion signals to connected list and
// dashboard views over WebSocket, so they re-fetch instead of polling.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"intake/internal/core/application/usecases/commands"
)

// MessageType represents the type of WebSocket message.
type MessageType string

// MessageTypeFormCompleted signals that an intake was finalized and a new
// order exists.
const MessageTypeFormCompleted MessageType = "form_completed"

// Message represents a WebSocket message pushed to subscribed views.
type Message struct {
	Type       MessageType `json:"type"`
	OrderID    string      `json:"orderId"`
	CustomerID string      `json:"customerId"`
	DraftID    string      `json:"draftId"`
	Timestamp  int64       `json:"timestamp"`
}

// Hub manages the WebSocket connections of views subscribed to intake
// updates. It implements commands.CompletionNotifier: every finalized intake
// is broadcast to all connected clients.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewHub creates a hub. Run must be started before clients connect.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		logger:     logger.With("component", "ws_hub"),
	}
}

// Run drives the hub's registration and broadcast loop until the context is
// cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.logger.InfoContext(ctx, "client connected", "total", len(h.clients))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.InfoContext(ctx, "client disconnected", "remaining", len(h.clients))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				h.logger.ErrorContext(ctx, "failed to marshal message", "error", err)
				continue
			}

			h.mu.RLock()
			clients := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				clients = append(clients, client)
			}
			h.mu.RUnlock()

			for _, client := range clients {
				select {
				case client.send <- data:
				default:
					// The client stopped draining its queue; drop it.
					h.mu.Lock()
					if _, ok := h.clients[client]; ok {
						delete(h.clients, client)
						close(client.send)
					}
					h.mu.Unlock()
				}
			}
		}
	}
}

// IntakeCompleted broadcasts the completion signal to every connected view.
// Never blocks the finalization path: when the broadcast queue is full the
// signal is dropped and the views fall back to their next regular fetch.
func (h *Hub) IntakeCompleted(event commands.IntakeCompletedEvent) {
	msg := &Message{
		Type:       MessageTypeFormCompleted,
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		DraftID:    event.DraftID.String(),
		Timestamp:  event.OccurredAt.UnixMilli(),
	}

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("broadcast queue full, dropping completion signal", "order_id", msg.OrderID)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

var _ commands.CompletionNotifier = (*Hub)(nil)
