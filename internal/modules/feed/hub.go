package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"framelight/internal/domain"
)

// Hub fans ledger events out to connected admin dashboards. Delivery is
// best-effort: a dead connection is dropped, never retried.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

type Event struct {
	Type      string          `json:"type"`
	Booking   *domain.Booking `json:"booking,omitempty"`
	Delta     float64         `json:"delta,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) Broadcast(ev Event) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, c := range h.connections {
		conns[id] = c
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(ev); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}

// EventSink implementation used by the booking service.

func (h *Hub) BookingCreated(b *domain.Booking) {
	h.Broadcast(Event{Type: "booking_created", Booking: b, Timestamp: time.Now().UTC()})
}

func (h *Hub) BookingStatusChanged(b *domain.Booking) {
	h.Broadcast(Event{Type: "booking_status_changed", Booking: b, Timestamp: time.Now().UTC()})
}

func (h *Hub) PaymentRecorded(b *domain.Booking, delta float64) {
	h.Broadcast(Event{Type: "payment_recorded", Booking: b, Delta: delta, Timestamp: time.Now().UTC()})
}
