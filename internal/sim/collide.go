package sim

import (
	"math"

	"github.com/emily-flambe/pong/internal/core"
)

// Wall identifies a field boundary.
type Wall int

const (
	WallLeft Wall = iota
	WallRight
	WallTop
	WallBottom
)

// String returns a human-readable name for the wall.
func (w Wall) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// EventKind classifies a collision event.
type EventKind int

const (
	// EventCatch is a resolved ball/paddle collision.
	EventCatch EventKind = iota
	// EventWallHit is the ball's edge crossing a field boundary.
	EventWallHit
)

// Event records one surface contact during a step. The rule engine consumes
// these to apply scoring and wall policy.
type Event struct {
	Kind EventKind
	Role Role // Valid for EventCatch
	Wall Wall // Valid for EventWallHit
}

// resolvePaddles checks the ball against every present paddle and applies
// the bounce for each catch. A paddle only catches a ball moving toward it,
// which prevents re-triggering on the same frame once the ball has been
// pushed past the paddle face.
func resolvePaddles(b *Ball, ps *PaddleSet, maxDeflection, speedGrowth float64) []Event {
	var events []Event

	for _, p := range ps {
		if p == nil {
			continue
		}
		if !approaching(b, p.Role) {
			continue
		}
		if !b.Bounds().Intersects(p.Bounds()) {
			continue
		}

		bounceOffPaddle(b, p, maxDeflection, speedGrowth)
		events = append(events, Event{Kind: EventCatch, Role: p.Role})
	}

	return events
}

// approaching reports whether the ball's velocity points toward the paddle's role edge.
func approaching(b *Ball, role Role) bool {
	switch role {
	case RoleLeft:
		return b.VX < 0
	case RoleRight:
		return b.VX > 0
	case RoleTop:
		return b.VY < 0
	case RoleBottom:
		return b.VY > 0
	default:
		return false
	}
}

// bounceOffPaddle redirects the ball away from the paddle. The deflection
// angle scales with where the ball struck along the paddle's long axis,
// edge hits bending up to maxDeflection away from straight-back. Speed
// escalates first so the outgoing vector is normalized to the new speed,
// and the ball is nudged one unit clear of the paddle face to prevent
// sticking.
func bounceOffPaddle(b *Ball, p *Paddle, maxDeflection, speedGrowth float64) {
	b.Speed = math.Min(b.Speed*speedGrowth, b.MaxSpeed)

	// Fractional contact position along the long axis, 0.5 = dead center
	var hitPos float64
	if p.Role.Horizontal() {
		hitPos = core.ClampF((b.X-p.X)/p.Width, 0, 1)
	} else {
		hitPos = core.ClampF((b.Y-p.Y)/p.Height, 0, 1)
	}

	angle := (hitPos - 0.5) * 2 * maxDeflection
	perp := math.Cos(angle) * b.Speed
	par := math.Sin(angle) * b.Speed

	// The perpendicular component is always directed away from the paddle
	switch p.Role {
	case RoleLeft:
		b.VX, b.VY = perp, par
		b.X = p.X + p.Width + b.Radius + 1
	case RoleRight:
		b.VX, b.VY = -perp, par
		b.X = p.X - b.Radius - 1
	case RoleTop:
		b.VY, b.VX = perp, par
		b.Y = p.Y + p.Height + b.Radius + 1
	case RoleBottom:
		b.VY, b.VX = -perp, par
		b.Y = p.Y - b.Radius - 1
	}
}

// detectWalls reports which field boundaries the ball's edge has crossed.
// Detection is uniform across modes; what a crossing means is the rule
// engine's decision.
func detectWalls(b *Ball, f Field) []Wall {
	var walls []Wall

	if b.X-b.Radius <= 0 {
		walls = append(walls, WallLeft)
	}
	if b.X+b.Radius >= f.Width {
		walls = append(walls, WallRight)
	}
	if b.Y-b.Radius <= 0 {
		walls = append(walls, WallTop)
	}
	if b.Y+b.Radius >= f.Height {
		walls = append(walls, WallBottom)
	}

	return walls
}

// reflectOffWall mirrors the ball's velocity off a boundary and clamps its
// position back inside the field.
func reflectOffWall(b *Ball, f Field, w Wall) {
	switch w {
	case WallLeft:
		b.X = b.Radius
		b.VX = math.Abs(b.VX)
	case WallRight:
		b.X = f.Width - b.Radius
		b.VX = -math.Abs(b.VX)
	case WallTop:
		b.Y = b.Radius
		b.VY = math.Abs(b.VY)
	case WallBottom:
		b.Y = f.Height - b.Radius
		b.VY = -math.Abs(b.VY)
	}
}
