// Package websocket pushes state-change events to connected clients. It is
// the remote end of the application's subscription graph: the hub subscribes
// to the reactive subjects and fans their updates out as JSON events.
package websocket

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Event types emitted on the feed.
const (
	EventProjectsChanged = "projects.changed"
	EventSessionChanged  = "session.changed"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	done       chan struct{}
	log        *zap.Logger

	mu      sync.Mutex
	stopped bool
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		log:        log.Named("ws"),
	}
}

func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Debug("client connected", zap.String("clientId", client.ID))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Debug("client disconnected", zap.String("clientId", client.ID))
			}
		case data := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow consumer: drop it rather than stall the feed.
					delete(h.clients, client)
					close(client.send)
				}
			}
		case <-h.stop:
			for client := range h.clients {
				close(client.send)
			}
			h.clients = nil
			return
		}
	}
}

// Stop shuts the hub down and waits for Run to exit.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		<-h.done
		return
	}
	h.stopped = true
	h.mu.Unlock()
	close(h.stop)
	<-h.done
}

// Broadcast queues an event for every connected client. Safe to call from
// subject subscribers on any goroutine; events are dropped when the hub is
// saturated rather than blocking a mutation turn.
func (h *Hub) Broadcast(eventType string, payload any) {
	data, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		h.log.Warn("marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.log.Warn("broadcast buffer full, dropping event", zap.String("type", eventType))
	}
}
