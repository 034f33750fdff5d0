package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// CORS already gates the API; the upgrade itself accepts any origin
	// so the preview page works behind proxies.
	CheckOrigin: func(*http.Request) bool { return true },
}

// renderEvent is the message shape sent to /api/live clients after
// every render.
type renderEvent struct {
	Type    string `json:"type"`
	Format  string `json:"format"`
	Nodes   int    `json:"nodes"`
	Edges   int    `json:"edges"`
	Cached  bool   `json:"cached"`
	Elapsed string `json:"elapsed"`
}

// wsConn wraps a websocket.Conn so the hub's broadcasts never write
// concurrently. Gorilla connections support one concurrent writer;
// reads all happen on the connection's own handler goroutine, so only
// writes need the lock.
type wsConn struct {
	c       *websocket.Conn
	writeMu sync.Mutex
}

func (w *wsConn) WriteMessage(messageType int, data []byte) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	return w.c.WriteMessage(messageType, data)
}

// hub fans render notifications out to every connected live client.
type hub struct {
	logger *log.Logger
	mu     sync.Mutex
	conns  map[*wsConn]struct{}
}

func newHub(logger *log.Logger) *hub {
	return &hub{logger: logger, conns: make(map[*wsConn]struct{})}
}

func (h *hub) add(c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *hub) remove(c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// broadcast sends the event to every client. A failed write is only
// logged; the client's read loop notices the dead connection and
// removes it.
func (h *hub) broadcast(ev renderEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("marshal event", "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("live write failed", "err", err)
		}
	}
}

// closeAll closes every connection so their read loops return during
// shutdown.
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		c.c.Close()
	}
	h.conns = make(map[*wsConn]struct{})
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "err", err)
		return
	}

	conn := &wsConn{c: c}
	s.hub.add(conn)
	s.logger.Debug("live client connected", "remote", r.RemoteAddr)
	defer func() {
		s.hub.remove(conn)
		c.Close()
		s.logger.Debug("live client disconnected", "remote", r.RemoteAddr)
	}()

	// Clients only listen; block until the connection drops.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
