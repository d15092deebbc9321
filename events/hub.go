package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed to connected clients. favorites_updated mirrors the
// custom browser event the frontend dispatched to resynchronize the
// favorites views.
const (
	EventFavoritesUpdated = "favorites_updated"
	EventOrderUpdate      = "order_update"
	EventOrderDeleted     = "order_deleted"
	EventRevenueUpdate    = "revenue_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans events out to every connected websocket client.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Broadcast sends an event to all clients. A nil hub is a no-op so
// services can run without one in tests.
func (h *Hub) Broadcast(event string, data interface{}) {
	if h == nil {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		log.Printf("events: marshal %s: %v", event, err)
		return
	}

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("events: send %s: %v", event, err)
		}
	}
}
