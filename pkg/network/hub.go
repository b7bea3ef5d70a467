package network

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"tempest/pkg/logger"
	protocol "tempest/pkg/shared/network"
)

const writeTimeout = 5 * time.Second

// Hub fans simulation frames out to read-only websocket watchers. Slow
// watchers skip frames instead of stalling the tick loop.
type Hub struct {
	hello protocol.Hello

	mu      sync.Mutex
	clients map[*subscriber]struct{}
	closed  chan struct{}
	once    sync.Once
}

type subscriber struct {
	frames chan protocol.Frame
}

func NewHub(hello protocol.Hello) *Hub {
	return &Hub{
		hello:   hello,
		clients: make(map[*subscriber]struct{}),
		closed:  make(chan struct{}),
	}
}

// Publish hands f to every watcher, replacing any frame it has not sent yet.
// Frames are shared read-only between watchers.
func (h *Hub) Publish(f protocol.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.clients {
		select {
		case sub.frames <- f:
		default:
			select {
			case <-sub.frames:
			default:
			}
			select {
			case sub.frames <- f:
			default:
			}
		}
	}
}

// Clients is the number of connected watchers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every watcher.
func (h *Hub) Close() {
	h.once.Do(func() { close(h.closed) })
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
		OriginPatterns:     []string{"*"},
	})
	if err != nil {
		logger.Log.WithError(err).Warn("Telemetry upgrade failed")
		return
	}
	defer c.CloseNow()

	// Watchers never send; CloseRead handles their close frame.
	ctx := c.CloseRead(r.Context())

	sub := &subscriber{frames: make(chan protocol.Frame, 1)}
	h.add(sub)
	defer h.remove(sub)

	if err := write(ctx, c, protocol.HelloPacket(h.hello)); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.closed:
			c.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case f := <-sub.frames:
			if err := write(ctx, c, protocol.FramePacket(f)); err != nil {
				logger.Log.WithError(err).Debug("Telemetry watcher dropped")
				return
			}
		}
	}
}

func write(ctx context.Context, c *websocket.Conn, p protocol.Packet) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, c, p)
}

func (h *Hub) add(sub *subscriber) {
	h.mu.Lock()
	h.clients[sub] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	logger.Log.WithField("clients", n).Info("Telemetry watcher connected")
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	delete(h.clients, sub)
	n := len(h.clients)
	h.mu.Unlock()
	logger.Log.WithField("clients", n).Info("Telemetry watcher left")
}
