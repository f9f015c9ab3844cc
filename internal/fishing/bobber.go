package fishing

import (
	"math"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// Bobber is the float at the end of the line.
type Bobber struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Submerged bool
}

// castVelocity returns the launch velocity that carries a projectile from
// origin to target in exactly ticks steps of step under gravity g.
//
//	vx = dx/t, vy = (dy - g*t*t/2)/t
func castVelocity(origin, target core.Vec2, ticks int, g float64) core.Vec2 {
	t := float64(ticks)
	d := target.Sub(origin)
	return core.V(d.X/t, (d.Y-0.5*g*t*t)/t)
}

// castTarget clamps the aim point so the bobber never lands above the
// surface line.
func castTarget(aim core.Vec2, b Bounds, surfaceLine float64) core.Vec2 {
	return core.V(aim.X, math.Max(aim.Y, b.H*surfaceLine))
}

// step advances an airborne bobber one tick. Gravity is integrated exactly
// so that the flight follows the parabola castVelocity solved for.
func (b *Bobber) step(g float64) {
	b.Pos = b.Pos.Add(b.Vel).Add(core.V(0, 0.5*g))
	b.Vel.Y += g
}
