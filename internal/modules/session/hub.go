package session

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans session events out to every websocket a user has open.
// A user may watch from several devices at once.
type Hub struct {
	watchers map[string]map[*websocket.Conn]bool
	mutex    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		watchers: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.watchers[userID] == nil {
		h.watchers[userID] = make(map[*websocket.Conn]bool)
	}
	h.watchers[userID][conn] = true
}

func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, exists := h.watchers[userID]; exists {
		if conns[conn] {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.watchers, userID)
		}
	}
}

// Publish pushes an event to all of the user's open connections.
// Dead connections are dropped on write failure.
func (h *Hub) Publish(userID string, event Event) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.watchers[userID]))
	for conn := range h.watchers[userID] {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(userID, conn)
		}
	}
}

func (h *Hub) WatcherCount(userID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.watchers[userID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conns := range h.watchers {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.watchers, userID)
	}
}
