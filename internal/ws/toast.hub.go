package ws

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Toast is a transient notification pushed to every connected page.
type Toast struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // success | error
	Message string `json:"message"`
}

// Hub fans toasts out to all websocket subscribers.
type Hub struct {
	mu       sync.RWMutex
	conns    map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// ServeWS upgrades the request and registers the connection until the peer
// goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		// Drain until close so the peer's control frames are handled.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *Hub) broadcast(t Toast) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(t); err != nil {
			h.log.Warn("ws send failed", zap.Error(err))
			go h.remove(conn)
		}
	}
}

func (h *Hub) Success(message string) {
	h.broadcast(Toast{ID: uuid.New().String(), Type: "success", Message: message})
}

func (h *Hub) Error(message string) {
	h.broadcast(Toast{ID: uuid.New().String(), Type: "error", Message: message})
}
