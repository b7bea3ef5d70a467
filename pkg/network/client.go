package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	protocol "tempest/pkg/shared/network"
)

// Watcher follows a telemetry socket and keeps the newest frame.
type Watcher struct {
	URL string

	// OnFrame, when set, is called from Run for every frame received.
	OnFrame func(protocol.Frame)

	mu     sync.RWMutex
	hello  protocol.Hello
	latest protocol.Frame
	frames int
}

func NewWatcher(url string) *Watcher {
	return &Watcher{URL: url}
}

// Run reads until ctx ends or the server hangs up. A normal close is not an error.
func (w *Watcher) Run(ctx context.Context) error {
	c, _, err := websocket.Dial(ctx, w.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", w.URL, err)
	}
	defer c.CloseNow()

	for {
		var p protocol.Packet
		if err := wsjson.Read(ctx, c, &p); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read telemetry: %w", err)
		}

		switch p.Type {
		case protocol.PacketHello:
			if p.Hello != nil {
				w.mu.Lock()
				w.hello = *p.Hello
				w.mu.Unlock()
			}
		case protocol.PacketFrame:
			if p.Frame == nil {
				continue
			}
			w.mu.Lock()
			w.latest = *p.Frame
			w.frames++
			w.mu.Unlock()
			if w.OnFrame != nil {
				w.OnFrame(*p.Frame)
			}
		}
	}
}

func (w *Watcher) Hello() protocol.Hello {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.hello
}

// Latest returns the newest frame and how many frames have arrived.
func (w *Watcher) Latest() (protocol.Frame, int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest, w.frames
}
