package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub fans assessment events out to clients subscribed to a use case
type Hub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool // usecaseID -> connections
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) register(usecaseID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[usecaseID] == nil {
		h.conns[usecaseID] = make(map[*websocket.Conn]bool)
	}
	h.conns[usecaseID][conn] = true
	log.Printf("ws: client subscribed to usecase %s", usecaseID)
}

func (h *Hub) unregister(usecaseID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.conns[usecaseID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.conns, usecaseID)
		}
	}
	conn.Close()
}

// BroadcastToUsecase sends an event to every client watching the use case.
// Implements service.Broadcaster.
func (h *Hub) BroadcastToUsecase(usecaseID string, event string, payload interface{}) {
	data, err := json.Marshal(&Message{Type: event, Payload: payload})
	if err != nil {
		log.Printf("ws: marshal %s event: %v", event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[usecaseID] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write to usecase %s client: %v", usecaseID, err)
			delete(h.conns[usecaseID], conn)
			conn.Close()
		}
	}
}
