package control

import "tempest/pkg/shared/components"

const (
	DefaultPatrolTolerance = 4.0
	DefaultAttackInterval  = 2000 // ms
)

// Patrol configures an Autonomous policy.
type Patrol struct {
	Waypoints      []components.Vec2
	Tolerance      float64 // px considered "at waypoint"
	AttackInterval int64   // ms between auto-attacks
	AutoAttack     bool
}

// Autonomous walks a loop of waypoints and attacks on a fixed cadence.
type Autonomous struct {
	waypoints      []components.Vec2
	tolerance      float64
	attackInterval int64
	autoAttack     bool

	index      int
	lastAttack int64
}

// NewAutonomous starts the attack cadence at now.
func NewAutonomous(p Patrol, now int64) *Autonomous {
	if p.Tolerance <= 0 {
		p.Tolerance = DefaultPatrolTolerance
	}
	if p.AttackInterval <= 0 {
		p.AttackInterval = DefaultAttackInterval
	}
	return &Autonomous{
		waypoints:      append([]components.Vec2(nil), p.Waypoints...),
		tolerance:      p.Tolerance,
		attackInterval: p.AttackInterval,
		autoAttack:     p.AutoAttack,
		lastAttack:     now,
	}
}

// Target returns the waypoint currently steered towards.
func (a *Autonomous) Target() (components.Vec2, bool) {
	if len(a.waypoints) == 0 {
		return components.Vec2{}, false
	}
	return a.waypoints[a.index], true
}

func (a *Autonomous) Index() int { return a.index }

func (a *Autonomous) Intent(v View, now int64) components.Intent {
	var in components.Intent

	if target, ok := a.Target(); ok {
		delta := target.Sub(v.Position)
		if delta.Length() <= a.tolerance {
			// Arrival is instantaneous; the next tick steers to the next waypoint.
			a.index = (a.index + 1) % len(a.waypoints)
		} else {
			in.Move = delta.Normalize()
			in.Face = components.DominantFacing(in.Move)
			in.HasFace = true
		}
	}

	if a.autoAttack && !v.Attacking() && now-a.lastAttack >= a.attackInterval {
		in.Attack = true
		a.lastAttack = now
	}
	return in
}
