package match

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/eplradar/internal/events"
	"github.com/DhavalSuthar-24/eplradar/internal/metrics"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// read-only public feed, any origin may subscribe
		return true
	},
}

// LiveHub fans match updates out to every connected websocket client.
// Writes happen under the hub lock so a connection never sees concurrent
// writers.
type LiveHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewLiveHub() *LiveHub {
	return &LiveHub{conns: make(map[*websocket.Conn]struct{})}
}

func write(conn *websocket.Conn, payload []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// join sends the initial snapshot and registers the connection in one step,
// so no broadcast can slip in between.
func (h *LiveHub) join(conn *websocket.Conn, snapshot []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := write(conn, snapshot); err != nil {
		return err
	}
	h.conns[conn] = struct{}{}
	metrics.LiveConnections.Inc()
	return nil
}

func (h *LiveHub) leave(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		metrics.LiveConnections.Dec()
	}
	_ = conn.Close()
}

// Broadcast sends msg to every subscriber and drops connections that fail.
func (h *LiveHub) Broadcast(msg LiveMessage) {
	if h == nil {
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Msg("live: marshal failed")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := write(conn, payload); err != nil {
			delete(h.conns, conn)
			metrics.LiveConnections.Dec()
			_ = conn.Close()
		}
	}
}

func (h *LiveHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close disconnects every subscriber.
func (h *LiveHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		delete(h.conns, conn)
		metrics.LiveConnections.Dec()
	}
}

// notifier pushes match changes to live subscribers and the event stream.
type notifier struct {
	hub       *LiveHub
	publisher events.Publisher
	mediaURL  string
}

func (n notifier) matchesChanged(ctx context.Context, matches []models.Match) {
	if len(matches) == 0 {
		return
	}
	out := make([]MatchResponse, len(matches))
	for i, m := range matches {
		out[i] = toMatchResponse(m, n.mediaURL)
		metrics.MatchTransitionsTotal.WithLabelValues(string(m.Status)).Inc()
		events.Emit(ctx, n.publisher, events.MatchUpdated, strconv.FormatUint(uint64(m.ID), 10), out[i])
	}
	n.hub.Broadcast(LiveMessage{Type: LiveUpdate, Matches: out})
}
