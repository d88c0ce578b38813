// Package spectate streams scene frames to read-only websocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"

	"github.com/vovakirdan/tui-pong/internal/scene"
)

const (
	queueSize    = 16
	writeTimeout = 5 * time.Second
)

// Stats holds live feed metrics.
type Stats struct {
	Spectators       int    `json:"spectators"`
	TotalConnections uint64 `json:"totalConnections"`
	Frames           uint64 `json:"frames"`
	Dropped          uint64 `json:"dropped"`
}

type client struct {
	id     uint64
	sendCh chan []byte
}

// Hub fans every presented frame out to the connected spectators.
// Slow spectators lose frames instead of slowing the match down.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  *log.Logger

	nextID  atomic.Uint64
	total   atomic.Uint64
	frames  atomic.Uint64
	dropped atomic.Uint64
}

// NewHub creates an empty hub. A nil logger discards logs.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Present encodes the frame once and queues it for every spectator.
func (h *Hub) Present(f scene.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("encode frame", "error", err)
		return
	}
	h.frames.Add(1)

	for c := range h.clients {
		select {
		case c.sendCh <- data:
		default:
			h.dropped.Add(1)
		}
	}
}

// Stats returns a snapshot of current feed metrics.
func (h *Hub) Stats() Stats {
	h.mu.Lock()
	n := len(h.clients)
	h.mu.Unlock()
	return Stats{
		Spectators:       n,
		TotalConnections: h.total.Load(),
		Frames:           h.frames.Load(),
		Dropped:          h.dropped.Load(),
	}
}

func (h *Hub) add() *client {
	c := &client{
		id:     h.nextID.Add(1),
		sendCh: make(chan []byte, queueSize),
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.total.Add(1)
	return c
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Handler serves the feed at /ws and metrics at /health.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // Best-effort response
		json.NewEncoder(w).Encode(h.Stats())
	})
	return mux
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warn("ws accept", "error", err)
		return
	}
	defer ws.CloseNow()

	c := h.add()
	defer h.remove(c)
	h.logger.Info("spectator joined", "id", c.id, "remote", r.RemoteAddr)

	// Spectators never send; CloseRead handles control frames and
	// cancels ctx once the peer goes away.
	ctx := ws.CloseRead(r.Context())
	err = h.writeLoop(ctx, ws, c)
	h.logger.Info("spectator left", "id", c.id, "reason", err)
}

func (h *Hub) writeLoop(ctx context.Context, ws *websocket.Conn, c *client) error {
	for {
		select {
		case data := <-c.sendCh:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := ws.Write(wctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ListenAndServe serves the feed on addr until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	h.logger.Info("spectator feed listening", "address", addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("spectate: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectate: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: %w", err)
	}
	return nil
}
