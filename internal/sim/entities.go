package sim

import (
	"math"
	"math/rand"

	"github.com/emily-flambe/pong/internal/config"
	"github.com/emily-flambe/pong/internal/core"
)

// Role identifies which field edge a paddle guards. The role set is closed:
// movement axis and resting position are fixed per role.
type Role int

const (
	RoleLeft Role = iota
	RoleRight
	RoleTop
	RoleBottom
	RoleCount
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleLeft:
		return "left"
	case RoleRight:
		return "right"
	case RoleTop:
		return "top"
	case RoleBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the paddle moves along the x axis.
// Top and bottom paddles slide horizontally, side paddles vertically.
func (r Role) Horizontal() bool {
	return r == RoleTop || r == RoleBottom
}

// Field is the play area. Dimensions never change during a match.
type Field struct {
	Width  float64
	Height float64
}

// Ball carries position, velocity, and the speed family that bounds it.
// The invariant sqrt(VX²+VY²) ≈ Speed holds after every bounce, and
// Speed never exceeds MaxSpeed.
type Ball struct {
	X, Y      float64
	VX, VY    float64
	Radius    float64
	Speed     float64
	BaseSpeed float64
	MaxSpeed  float64
}

// NewBall creates a ball at field center with a randomized serve direction:
// uniform within ±cfg.LaunchAngleDeg of horizontal, side chosen at random.
// Respawns construct a fresh Ball value so no velocity or position leaks
// across lives.
func NewBall(f Field, cfg config.BallConfig, rng *rand.Rand) *Ball {
	window := cfg.LaunchAngleDeg * math.Pi / 180
	angle := (rng.Float64()*2 - 1) * window

	dir := 1.0
	if rng.Intn(2) == 0 {
		dir = -1
	}

	return &Ball{
		X:         f.Width / 2,
		Y:         f.Height / 2,
		VX:        dir * cfg.BaseSpeed * math.Cos(angle),
		VY:        cfg.BaseSpeed * math.Sin(angle),
		Radius:    cfg.Radius,
		Speed:     cfg.BaseSpeed,
		BaseSpeed: cfg.BaseSpeed,
		MaxSpeed:  cfg.MaxSpeed,
	}
}

// Bounds returns the ball's bounding square, used for paddle collision.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Paddle guards one field edge. Only the component of velocity along the
// movement axis is ever nonzero; the cross-axis position is fixed per role.
type Paddle struct {
	Role   Role
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Speed  float64 // Movement speed scalar
	VX, VY float64 // Current velocity, derived from input each step
}

// NewPaddle creates a paddle centered on its edge, inset from the wall.
func NewPaddle(role Role, f Field, cfg config.PaddleConfig) *Paddle {
	p := &Paddle{Role: role, Speed: cfg.Speed}

	if role.Horizontal() {
		p.Width = cfg.Length
		p.Height = cfg.Thickness
		p.X = (f.Width - cfg.Length) / 2
	} else {
		p.Width = cfg.Thickness
		p.Height = cfg.Length
		p.Y = (f.Height - cfg.Length) / 2
	}

	switch role {
	case RoleLeft:
		p.X = cfg.Inset
	case RoleRight:
		p.X = f.Width - cfg.Inset - cfg.Thickness
	case RoleTop:
		p.Y = cfg.Inset
	case RoleBottom:
		p.Y = f.Height - cfg.Inset - cfg.Thickness
	}

	return p
}

// Bounds returns the paddle's bounding rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// PaddleSet holds the match's paddles indexed by role.
// Absent roles are nil (classic and survival modes field only the right paddle).
type PaddleSet [RoleCount]*Paddle
