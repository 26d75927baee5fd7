package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans live meeting events (attendance, status, votes) out to dashboard
// clients, keyed by meeting id.
type Hub struct {
	mu       sync.RWMutex
	meetings map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		meetings: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(meetingID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.meetings[meetingID] == nil {
		h.meetings[meetingID] = make(map[*websocket.Conn]bool)
	}
	h.meetings[meetingID][conn] = true
	log.Printf("ws: client connected to meeting %s (total: %d)", meetingID, len(h.meetings[meetingID]))
}

func (h *Hub) RemoveConnection(meetingID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.meetings[meetingID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.meetings, meetingID)
		}
		log.Printf("ws: client disconnected from meeting %s", meetingID)
	}
}

// Broadcast takes the write lock because failed connections are dropped
// from the map in place.
func (h *Hub) Broadcast(meetingID string, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.meetings[meetingID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
