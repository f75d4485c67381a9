package websocket

import (
	"sync"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"go.uber.org/zap"
)

// Hub fans computer status transitions out to connected dashboard
// clients. There is a single broadcast group; every client sees every
// transition.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	log        *zap.SugaredLogger
	mu         sync.RWMutex
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		log:        log,
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if !h.stopped {
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop the frame rather than block the hub.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Stop gracefully shuts down the hub and disconnects all clients.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

// Register and Unregister select against done so a connection arriving
// or dropping after Stop() cannot block forever on a loop that has exited.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastComputerStatus pushes one status transition to every client.
func (h *Hub) BroadcastComputerStatus(computer *domain.Computer) {
	message, err := newComputerStatusEvent(computer)
	if err != nil {
		h.log.Errorw("encode status event", "error", err)
		return
	}

	select {
	case h.broadcast <- message:
	case <-h.done:
	}
}
