package components

import "math"

// Length of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector, or zero for the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Direction returns the unit vector from (x1,y1) towards (x2,y2).
func Direction(x1, y1, x2, y2 float64) (float64, float64) {
	return Vec2{x2 - x1, y2 - y1}.Normalize().Components()
}

// AxisFacing picks the facing for a direction, horizontal winning when both axes are set.
// ok is false for the zero vector.
func AxisFacing(d Vec2) (Facing, bool) {
	switch {
	case d.X > 0:
		return FacingRight, true
	case d.X < 0:
		return FacingLeft, true
	case d.Y > 0:
		return FacingDown, true
	case d.Y < 0:
		return FacingUp, true
	}
	return FacingDown, false
}

// DominantFacing picks the facing of the larger axis. Ties go vertical.
func DominantFacing(d Vec2) Facing {
	if math.Abs(d.X) > math.Abs(d.Y) {
		if d.X > 0 {
			return FacingRight
		}
		return FacingLeft
	}
	if d.Y > 0 {
		return FacingDown
	}
	return FacingUp
}
