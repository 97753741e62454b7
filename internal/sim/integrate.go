package sim

import (
	"github.com/emily-flambe/pong/internal/core"
)

// advance is the pure integration pass: paddle velocities are derived from
// the input axes (no inertia), then positions move by velocity*dt and each
// paddle is clamped to the field on its movement axis. No collision work
// happens here.
func advance(ps *PaddleSet, b *Ball, f Field, dt float64, in Input) {
	vAxis := in.VerticalAxis()
	hAxis := in.HorizontalAxis()

	for _, p := range ps {
		if p == nil {
			continue
		}

		if p.Role.Horizontal() {
			p.VX = hAxis * p.Speed
			p.VY = 0
		} else {
			p.VX = 0
			p.VY = vAxis * p.Speed
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		clampPaddle(p, f)
	}

	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// clampPaddle keeps the paddle's bounding box inside the field on its
// movement axis. Only position is corrected; the velocity value stays as
// the input dictated it.
func clampPaddle(p *Paddle, f Field) {
	if p.Role.Horizontal() {
		p.X = core.ClampF(p.X, 0, f.Width-p.Width)
	} else {
		p.Y = core.ClampF(p.Y, 0, f.Height-p.Height)
	}
}
