package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

// Event is a real-time update pushed to a user's open dashboard.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// connection is one WebSocket client. A user may hold several (tabs,
// devices); each gets its own send queue.
type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks all active WebSocket connections keyed by user.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64][]*connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64][]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.userID] = append(h.connections[c.userID], c)
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.connections[c.userID]
	for i, existing := range conns {
		if existing == c {
			h.connections[c.userID] = append(conns[:i], conns[i+1:]...)
			close(c.send)
			break
		}
	}
	if len(h.connections[c.userID]) == 0 {
		delete(h.connections, c.userID)
	}
}

// Publish sends an event to every connection the user has open. Slow
// clients are skipped rather than blocking the caller.
func (h *Hub) Publish(userID int64, event string, payload any) {
	data, err := json.Marshal(Event{Type: event, Payload: payload})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.connections[userID] {
		select {
		case c.send <- data:
		default:
		}
	}
}

// ServeWS registers a new connection and starts its read/write loops.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}
	h.register(c)

	go c.writeLoop()
	go c.readLoop(h)
}

func (c *connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop drains incoming frames so pings/pongs and close frames are
// processed. Clients have nothing to say on this feed.
func (c *connection) readLoop(h *Hub) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
