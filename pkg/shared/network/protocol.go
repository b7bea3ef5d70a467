// Package network defines the telemetry wire format: JSON packets pushed from
// the headless server to read-only watchers.
package network

import "image/color"

type PacketType string

const (
	PacketHello PacketType = "hello"
	PacketFrame PacketType = "frame"
)

// Packet is the envelope for every message on the telemetry socket.
type Packet struct {
	Type  PacketType `json:"type"`
	Hello *Hello     `json:"hello,omitempty"`
	Frame *Frame     `json:"frame,omitempty"`
}

// Hello is sent once per connection before any frame.
type Hello struct {
	MapWidth  int `json:"map_width"`
	MapHeight int `json:"map_height"`
	TileSize  int `json:"tile_size"`
	FPS       int `json:"fps"`
}

// Frame is everything published for one tick.
type Frame struct {
	Tick    int64         `json:"tick"`
	Time    int64         `json:"time"`
	Actors  []ActorState  `json:"actors"`
	Effects []EffectState `json:"effects"`
}

// ActorState is a read-only copy of one actor.
type ActorState struct {
	ID         uint64     `json:"id"`
	Name       string     `json:"name"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Status     string     `json:"status"`
	Facing     string     `json:"facing"`
	Activity   string     `json:"activity"`
	Health     float64    `json:"health"`
	MaxHealth  float64    `json:"max_health"`
	Energy     float64    `json:"energy"`
	Weapon     string     `json:"weapon"`
	Spell      string     `json:"spell"`
	Frame      int        `json:"frame"`
	Alpha      uint8      `json:"alpha"`
	Vulnerable bool       `json:"vulnerable"`
	Player     bool       `json:"player"`
	Color      color.RGBA `json:"-"`
}

// EffectState is a live weapon hitbox or spell effect.
type EffectState struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func FramePacket(f Frame) Packet { return Packet{Type: PacketFrame, Frame: &f} }

func HelloPacket(h Hello) Packet { return Packet{Type: PacketHello, Hello: &h} }
