// Package server broadcasts game state over websocket so external renderers
// can follow a session. It is a pure observer: clients receive snapshots
// and never mutate engine state.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hcdiekmann/ZIMP/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local observer feed, any origin may watch
	},
}

// wsMessage is the envelope for every frame pushed to clients.
type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type tilePlacedPayload struct {
	Tile game.TileView   `json:"tile"`
	At   game.Coordinate `json:"at"`
}

type gameEndedPayload struct {
	Result string `json:"result"`
	Reason string `json:"reason"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans engine notifications out to connected websocket clients. It
// implements game.Observer; the engine pushes, the hub broadcasts, clients
// only read.
type Hub struct {
	logger *zap.Logger

	register   chan *client
	unregister chan *client
	broadcast  chan []byte

	mu           sync.RWMutex
	clients      map[*client]bool
	lastSnapshot []byte
}

// NewHub creates a hub; call Run before attaching it to a game.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*client]bool),
	}
}

// Run drives the hub until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			last := h.lastSnapshot
			h.mu.Unlock()
			if last != nil {
				c.send <- last
			}
			h.logger.Debug("websocket client connected")
		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.logger.Debug("websocket client disconnected")
		case frame := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- frame:
				default:
					// Slow consumer; drop the frame rather than
					// block the game loop.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// StateChanged implements game.Observer.
func (h *Hub) StateChanged(s game.Snapshot) {
	frame := h.encode("state", s)
	h.mu.Lock()
	h.lastSnapshot = frame
	h.mu.Unlock()
	h.send(frame)
}

// TilePlaced implements game.Observer.
func (h *Hub) TilePlaced(tile game.TileView, at game.Coordinate) {
	h.send(h.encode("tile_placed", tilePlacedPayload{Tile: tile, At: at}))
}

// Message implements game.Observer.
func (h *Hub) Message(text string) {
	h.send(h.encode("message", text))
}

// GameEnded implements game.Observer.
func (h *Hub) GameEnded(result game.Result, reason string) {
	h.send(h.encode("game_over", gameEndedPayload{Result: result.String(), Reason: reason}))
}

func (h *Hub) encode(msgType string, data any) []byte {
	frame, err := json.Marshal(wsMessage{Type: msgType, Data: data})
	if err != nil {
		h.logger.Error("encode websocket frame", zap.Error(err))
		return nil
	}
	return frame
}

func (h *Hub) send(frame []byte) {
	if frame == nil {
		return
	}
	select {
	case h.broadcast <- frame:
	default:
		h.logger.Warn("websocket broadcast queue full, dropping frame")
	}
}

// ServeWS upgrades an HTTP request into an observer connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 16)}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

// ListenAndServe serves the observer feed on addr under /ws.
func (h *Hub) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	h.logger.Info("observer feed listening", zap.String("address", addr))
	return http.ListenAndServe(addr, mux)
}

func (c *client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case frame, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames; the feed is one-way. It exists to detect
// disconnects and answer control frames.
func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
