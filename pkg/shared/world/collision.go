package world

import (
	"math"

	"tempest/pkg/shared/components"
)

// Resolve moves from -> to one axis at a time, horizontal first, cancelling
// the axis that would push the hitbox into a solid tile.
func (m *Map) Resolve(from, to components.Vec2) components.Vec2 {
	out := from

	if !m.collidesAt(to.X, out.Y) {
		out.X = to.X
	}
	if !m.collidesAt(out.X, to.Y) {
		out.Y = to.Y
	}
	return out
}

// Walkable reports whether an actor centered on p would be clear of obstacles.
func (m *Map) Walkable(p components.Vec2) bool {
	return !m.collidesAt(p.X, p.Y)
}

func (m *Map) collidesAt(cx, cy float64) bool {
	x := cx - m.HitboxW/2
	y := cy - m.HitboxH/2

	// Check all tiles the box might overlap
	startTX := int(math.Floor(x / m.TileSize))
	startTY := int(math.Floor(y / m.TileSize))
	endTX := int(math.Floor((x + m.HitboxW) / m.TileSize))
	endTY := int(math.Floor((y + m.HitboxH) / m.TileSize))

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if !m.solidAt(tx, ty) {
				continue
			}
			if rectOverlap(x, y, m.HitboxW, m.HitboxH,
				float64(tx)*m.TileSize, float64(ty)*m.TileSize, m.TileSize, m.TileSize) {
				return true
			}
		}
	}
	return false
}

func rectOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}
