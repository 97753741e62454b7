package sim

import (
	"math"
	"testing"

	"github.com/emily-flambe/pong/internal/config"
)

func TestVerticalAxis(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{"zero value", Input{}, 0},
		{"up", Input{Up: true}, -1},
		{"down", Input{Down: true}, 1},
		{"both booleans cancel", Input{Up: true, Down: true}, 0},
		{"extended up", Input{Vertical: -1}, -1},
		{"extended down", Input{Vertical: 1}, 1},
		{"extended wins over booleans", Input{Up: true, Vertical: 1}, 1},
		{"out of range clamps", Input{Vertical: 5}, 1},
		{"negative out of range clamps", Input{Vertical: -7}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.VerticalAxis(); got != tt.want {
				t.Errorf("VerticalAxis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHorizontalAxis(t *testing.T) {
	if got := (Input{Horizontal: -3}).HorizontalAxis(); got != -1 {
		t.Errorf("HorizontalAxis() = %v, want -1", got)
	}
	if got := (Input{}).HorizontalAxis(); got != 0 {
		t.Errorf("HorizontalAxis() = %v, want 0", got)
	}
}

func TestNewPaddlePlacement(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	cfg := config.PaddleConfig{Length: 100, Thickness: 30, Speed: 400, Inset: 20}

	right := NewPaddle(RoleRight, f, cfg)
	if right.X != 750 {
		t.Errorf("right paddle X = %v, want 750", right.X)
	}
	if right.Y != 250 || right.Height != 100 || right.Width != 30 {
		t.Errorf("right paddle geometry = (%v, %v, %v, %v)", right.X, right.Y, right.Width, right.Height)
	}

	top := NewPaddle(RoleTop, f, cfg)
	if top.Y != 20 {
		t.Errorf("top paddle Y = %v, want 20", top.Y)
	}
	if top.X != 350 || top.Width != 100 || top.Height != 30 {
		t.Errorf("top paddle geometry = (%v, %v, %v, %v)", top.X, top.Y, top.Width, top.Height)
	}

	bottom := NewPaddle(RoleBottom, f, cfg)
	if bottom.Y != 550 {
		t.Errorf("bottom paddle Y = %v, want 550", bottom.Y)
	}
}

func TestAdvanceClampsPaddle(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	p := NewPaddle(RoleRight, f, config.PaddleConfig{Length: 100, Thickness: 30, Speed: 400, Inset: 20})
	ps := PaddleSet{}
	ps[RoleRight] = p
	b := &Ball{X: 400, Y: 300}

	// Hold up far longer than reaching the edge takes
	for i := 0; i < 100; i++ {
		advance(&ps, b, f, 1.0/30, Input{Up: true})
	}
	if p.Y != 0 {
		t.Errorf("paddle Y = %v after holding up, want 0", p.Y)
	}
	if p.VY >= 0 {
		t.Errorf("paddle VY = %v while holding up, want negative", p.VY)
	}

	for i := 0; i < 100; i++ {
		advance(&ps, b, f, 1.0/30, Input{Down: true})
	}
	if p.Y != f.Height-p.Height {
		t.Errorf("paddle Y = %v after holding down, want %v", p.Y, f.Height-p.Height)
	}
}

func TestAdvanceMovesBall(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	ps := PaddleSet{}
	b := &Ball{X: 100, Y: 200, VX: 300, VY: -60}

	advance(&ps, b, f, 0.1, Input{})
	if b.X != 130 || b.Y != 194 {
		t.Errorf("ball at (%v, %v), want (130, 194)", b.X, b.Y)
	}
}

func TestBounceOffPaddleCenter(t *testing.T) {
	p := &Paddle{Role: RoleRight, X: 750, Y: 250, Width: 30, Height: 100}
	b := &Ball{X: 745, Y: 300, VX: 200, VY: 0, Radius: 8, Speed: 300, MaxSpeed: 720}

	bounceOffPaddle(b, p, math.Pi/3, 1.07)

	if b.VX >= 0 {
		t.Errorf("ball VX = %v after right-paddle bounce, want negative", b.VX)
	}
	// Dead-center hit goes straight back
	if math.Abs(b.VY) > 1e-9 {
		t.Errorf("ball VY = %v after center hit, want 0", b.VY)
	}
	want := 300 * 1.07
	if math.Abs(b.Speed-want) > 1e-9 {
		t.Errorf("ball speed = %v, want %v", b.Speed, want)
	}
	if got := math.Hypot(b.VX, b.VY); math.Abs(got-b.Speed) > 1e-9 {
		t.Errorf("velocity magnitude = %v, speed = %v", got, b.Speed)
	}
	if b.X != p.X-b.Radius-1 {
		t.Errorf("ball X = %v, want nudged to %v", b.X, p.X-b.Radius-1)
	}
}

func TestBounceOffPaddleEdgeDeflects(t *testing.T) {
	p := &Paddle{Role: RoleRight, X: 750, Y: 250, Width: 30, Height: 100}

	// Top edge contact deflects upward at the full angle
	b := &Ball{X: 745, Y: 250, VX: 200, VY: 50, Radius: 8, Speed: 300, MaxSpeed: 720}
	bounceOffPaddle(b, p, math.Pi/3, 1.07)

	if b.VY >= 0 {
		t.Errorf("ball VY = %v after top-edge hit, want negative", b.VY)
	}
	wantVY := math.Sin(-math.Pi/3) * b.Speed
	if math.Abs(b.VY-wantVY) > 1e-9 {
		t.Errorf("ball VY = %v, want %v", b.VY, wantVY)
	}

	// Bottom edge mirrors it
	b = &Ball{X: 745, Y: 350, VX: 200, VY: -50, Radius: 8, Speed: 300, MaxSpeed: 720}
	bounceOffPaddle(b, p, math.Pi/3, 1.07)
	if b.VY <= 0 {
		t.Errorf("ball VY = %v after bottom-edge hit, want positive", b.VY)
	}
}

func TestBounceSpeedCapped(t *testing.T) {
	p := &Paddle{Role: RoleRight, X: 750, Y: 250, Width: 30, Height: 100}
	b := &Ball{X: 745, Y: 300, VX: 200, VY: 0, Radius: 8, Speed: 700, MaxSpeed: 720}

	bounceOffPaddle(b, p, math.Pi/3, 1.07)
	if b.Speed != 720 {
		t.Errorf("ball speed = %v, want capped at 720", b.Speed)
	}

	bounceOffPaddle(b, p, math.Pi/3, 1.07)
	if b.Speed != 720 {
		t.Errorf("ball speed = %v after second bounce, want 720", b.Speed)
	}
}

func TestResolvePaddlesRequiresApproach(t *testing.T) {
	ps := PaddleSet{}
	ps[RoleRight] = &Paddle{Role: RoleRight, X: 750, Y: 250, Width: 30, Height: 100}

	// Overlapping but moving away: no catch
	b := &Ball{X: 755, Y: 300, VX: -200, VY: 0, Radius: 8, Speed: 300, MaxSpeed: 720}
	events := resolvePaddles(b, &ps, math.Pi/3, 1.07)
	if len(events) != 0 {
		t.Fatalf("got %d events for receding ball, want 0", len(events))
	}

	b.VX = 200
	events = resolvePaddles(b, &ps, math.Pi/3, 1.07)
	if len(events) != 1 || events[0].Kind != EventCatch || events[0].Role != RoleRight {
		t.Fatalf("events = %+v, want one catch by right paddle", events)
	}
}

func TestDetectWalls(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	tests := []struct {
		name string
		ball Ball
		want []Wall
	}{
		{"interior", Ball{X: 400, Y: 300, Radius: 8}, nil},
		{"left", Ball{X: 5, Y: 300, Radius: 8}, []Wall{WallLeft}},
		{"right", Ball{X: 795, Y: 300, Radius: 8}, []Wall{WallRight}},
		{"top", Ball{X: 400, Y: 3, Radius: 8}, []Wall{WallTop}},
		{"bottom", Ball{X: 400, Y: 599, Radius: 8}, []Wall{WallBottom}},
		{"corner hits two", Ball{X: 2, Y: 2, Radius: 8}, []Wall{WallLeft, WallTop}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectWalls(&tt.ball, f)
			if len(got) != len(tt.want) {
				t.Fatalf("detectWalls() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("detectWalls() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestReflectOffWall(t *testing.T) {
	f := Field{Width: 800, Height: 600}

	b := &Ball{X: 400, Y: -3, VX: 100, VY: -250, Radius: 8}
	reflectOffWall(b, f, WallTop)
	if b.Y != b.Radius {
		t.Errorf("ball Y = %v, want clamped to %v", b.Y, b.Radius)
	}
	if b.VY != 250 {
		t.Errorf("ball VY = %v, want 250", b.VY)
	}
	if b.VX != 100 {
		t.Errorf("ball VX = %v, want unchanged", b.VX)
	}

	b = &Ball{X: 805, Y: 300, VX: 250, VY: 0, Radius: 8}
	reflectOffWall(b, f, WallRight)
	if b.X != f.Width-b.Radius || b.VX != -250 {
		t.Errorf("ball = (%v, VX %v), want (%v, -250)", b.X, b.VX, f.Width-b.Radius)
	}
}
