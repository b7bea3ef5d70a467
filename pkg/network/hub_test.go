package network

import (
	"context"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"tempest/pkg/logger"
	protocol "tempest/pkg/shared/network"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(protocol.Hello{MapWidth: 20, MapHeight: 13, TileSize: 64, FPS: 60})
	srv := httptest.NewServer(NewMux(hub))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestHubSendsHelloThenFrames(t *testing.T) {
	hub, url := startHub(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.CloseNow()

	var p protocol.Packet
	if err := wsjson.Read(ctx, c, &p); err != nil {
		t.Fatalf("read hello: %v", err)
	}
	if p.Type != protocol.PacketHello || p.Hello == nil || p.Hello.MapWidth != 20 {
		t.Fatalf("first packet = %+v, want hello", p)
	}

	hub.Publish(protocol.Frame{Tick: 7, Actors: []protocol.ActorState{{Name: "hero", Status: "down_idle"}}})

	p = protocol.Packet{}
	if err := wsjson.Read(ctx, c, &p); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if p.Type != protocol.PacketFrame || p.Frame == nil {
		t.Fatalf("second packet = %+v, want frame", p)
	}
	if p.Frame.Tick != 7 || len(p.Frame.Actors) != 1 || p.Frame.Actors[0].Status != "down_idle" {
		t.Errorf("frame = %+v", *p.Frame)
	}
}

func TestPublishKeepsNewestFrame(t *testing.T) {
	hub := NewHub(protocol.Hello{})
	sub := &subscriber{frames: make(chan protocol.Frame, 1)}
	hub.add(sub)

	hub.Publish(protocol.Frame{Tick: 1})
	hub.Publish(protocol.Frame{Tick: 2})

	if got := (<-sub.frames).Tick; got != 2 {
		t.Errorf("pending frame tick = %d, want 2", got)
	}
	if hub.Clients() != 1 {
		t.Errorf("clients = %d, want 1", hub.Clients())
	}
	hub.remove(sub)
	if hub.Clients() != 0 {
		t.Errorf("clients after remove = %d, want 0", hub.Clients())
	}
}

func TestWatcherFollowsHub(t *testing.T) {
	hub, url := startHub(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	w := NewWatcher(url)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for hub.Clients() == 0 {
		if ctx.Err() != nil {
			t.Fatal("watcher never connected")
		}
		time.Sleep(5 * time.Millisecond)
	}

	for tick := int64(1); ; tick++ {
		hub.Publish(protocol.Frame{Tick: tick})
		if _, n := w.Latest(); n > 0 {
			break
		}
		if ctx.Err() != nil {
			t.Fatal("watcher never got a frame")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if w.Hello().TileSize != 64 {
		t.Errorf("hello = %+v", w.Hello())
	}

	hub.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run after close: %v", err)
		}
	case <-ctx.Done():
		t.Fatal("watcher did not stop on server close")
	}
}
