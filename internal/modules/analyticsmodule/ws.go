package analyticsmodule

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mantonx/streambase/internal/events"
	"github.com/mantonx/streambase/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is already open; no origin policy to enforce here
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub broadcasts recorded analytics events to connected dashboard clients
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*wsClient
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*wsClient),
	}
}

// HandleLive handles GET /api/analytics/live by upgrading to a websocket
// and streaming every recorded event until the client disconnects.
func (h *Hub) HandleLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", logger.Err("error", err))
		return
	}
	h.register(conn)
}

func (h *Hub) register(conn *websocket.Conn) {
	client := &wsClient{
		conn: conn,
		send: make(chan []byte, 64),
	}

	h.mu.Lock()
	h.clients[conn] = client
	h.mu.Unlock()

	go h.writePump(client)
	go h.readPump(client)
}

func (h *Hub) unregister(client *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[client.conn]; ok {
		delete(h.clients, client.conn)
		close(client.send)
	}
	h.mu.Unlock()
	client.conn.Close()
}

// readPump drains client messages so control frames are processed; the feed
// is one-directional and inbound payloads are discarded.
func (h *Hub) readPump(client *wsClient) {
	defer h.unregister(client)
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(client *wsClient) {
	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// Broadcast sends data to every connected client. Slow clients are skipped
// rather than blocking the event path.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		select {
		case client.send <- data:
		default:
		}
	}
}

// BroadcastEvent serializes an event bus event for connected clients
func (h *Hub) BroadcastEvent(event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal analytics event for broadcast", logger.Err("error", err))
		return
	}
	h.Broadcast(data)
}

// Close disconnects all clients
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, client := range h.clients {
		close(client.send)
		conn.Close()
		delete(h.clients, conn)
	}
}
