package components

// Vec2 is a position or direction in pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) Equal(o Vec2) bool { return v.X == o.X && v.Y == o.Y }
func (v Vec2) Components() (x, y float64) { return v.X, v.Y }

// Facing is one of the four cardinal directions. Never diagonal.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// Activity is exclusive: an actor is idle, moving or attacking.
type Activity int

const (
	ActivityIdle Activity = iota
	ActivityMoving
	ActivityAttacking
)

func (a Activity) String() string {
	switch a {
	case ActivityMoving:
		return "moving"
	case ActivityAttacking:
		return "attacking"
	default:
		return "idle"
	}
}

// Status pairs facing and activity. Transitions compare the fields directly;
// String is only the asset folder name ("down", "down_idle", "down_attack").
type Status struct {
	Facing   Facing
	Activity Activity
}

func (s Status) String() string {
	switch s.Activity {
	case ActivityIdle:
		return s.Facing.String() + "_idle"
	case ActivityAttacking:
		return s.Facing.String() + "_attack"
	default:
		return s.Facing.String()
	}
}

// AllStatuses lists every facing/activity pair, e.g. for asset import.
func AllStatuses() []Status {
	out := make([]Status, 0, 12)
	for _, f := range []Facing{FacingUp, FacingDown, FacingLeft, FacingRight} {
		for _, a := range []Activity{ActivityMoving, ActivityIdle, ActivityAttacking} {
			out = append(out, Status{Facing: f, Activity: a})
		}
	}
	return out
}

// Stats holds the five upgradable attributes, in display order.
type Stats struct {
	Health float64
	Energy float64
	Attack float64
	Magic  float64
	Speed  float64
}

// StatNames is the display order used by index-based accessors.
var StatNames = []string{"health", "energy", "attack", "magic", "speed"}

// ByIndex returns the stat at the StatNames position, ok=false when out of range.
func (s Stats) ByIndex(i int) (float64, bool) {
	switch i {
	case 0:
		return s.Health, true
	case 1:
		return s.Energy, true
	case 2:
		return s.Attack, true
	case 3:
		return s.Magic, true
	case 4:
		return s.Speed, true
	}
	return 0, false
}

// Intent is what a control policy wants the actor to do this tick.
type Intent struct {
	Move         Vec2 // unit or zero
	Attack       bool
	Magic        bool
	SwitchWeapon bool
	SwitchSpell  bool

	// Face overrides the facing derived from Move when HasFace is set.
	Face    Facing
	HasFace bool
}
