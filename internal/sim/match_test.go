package sim

import (
	"math"
	"testing"

	"github.com/emily-flambe/pong/internal/config"
)

const testDt = 1.0 / 30

func newTestMatch(t *testing.T, mode Mode, seed int64) *Match {
	t.Helper()
	var cfg config.MatchConfig
	switch mode {
	case ModeClassic:
		cfg = config.DefaultClassicConfig()
	case ModeSurvival:
		cfg = config.DefaultSurvivalConfig()
	case ModeFortress:
		cfg = config.DefaultFortressConfig()
	}
	return NewMatch(mode, cfg, seed)
}

func TestNewMatchInitialState(t *testing.T) {
	m := newTestMatch(t, ModeSurvival, 42)

	if m.Phase() != PhaseNotStarted {
		t.Errorf("phase = %v, want not started", m.Phase())
	}
	if m.Score() != 0 {
		t.Errorf("score = %d, want 0", m.Score())
	}
	if m.Lives() != 3 {
		t.Errorf("lives = %d, want 3", m.Lives())
	}
	if m.ball.X != 400 || m.ball.Y != 300 {
		t.Errorf("ball at (%v, %v), want field center (400, 300)", m.ball.X, m.ball.Y)
	}
	if got := math.Hypot(m.ball.VX, m.ball.VY); math.Abs(got-m.ball.Speed) > 1e-9 {
		t.Errorf("serve velocity magnitude = %v, speed = %v", got, m.ball.Speed)
	}
	// Launch stays within the serve window around horizontal
	if math.Abs(m.ball.VX) < m.ball.Speed*math.Cos(30*math.Pi/180)-1e-9 {
		t.Errorf("serve VX = %v too steep for a 30 degree window", m.ball.VX)
	}
	if m.paddles[RoleRight] == nil {
		t.Fatal("right paddle missing")
	}
	for _, role := range []Role{RoleLeft, RoleTop, RoleBottom} {
		if m.paddles[role] != nil {
			t.Errorf("%v paddle present in a single-paddle mode", role)
		}
	}
}

func TestFortressFieldsFourPaddles(t *testing.T) {
	m := newTestMatch(t, ModeFortress, 1)
	for role := RoleLeft; role < RoleCount; role++ {
		if m.paddles[role] == nil {
			t.Errorf("%v paddle missing", role)
		}
	}
}

func TestUpdateNoOpUnlessRunning(t *testing.T) {
	m := newTestMatch(t, ModeClassic, 7)
	x, y := m.ball.X, m.ball.Y

	m.Update(testDt, Input{Up: true})
	if m.ball.X != x || m.ball.Y != y {
		t.Error("update moved entities before start")
	}
	if m.Tick() != 0 {
		t.Errorf("tick = %d before start, want 0", m.Tick())
	}

	m.Start()
	m.Pause()
	m.Update(testDt, Input{})
	if m.ball.X != x || m.ball.Y != y {
		t.Error("update moved entities while paused")
	}

	m.Start()
	m.Update(0, Input{})
	if m.ball.X != x {
		t.Error("zero dt moved the ball")
	}
	m.Update(-testDt, Input{})
	if m.ball.X != x {
		t.Error("negative dt moved the ball")
	}

	m.Update(testDt, Input{})
	if m.ball.X == x {
		t.Error("update did not move the ball while running")
	}
}

func TestStartPauseKeepPositions(t *testing.T) {
	m := newTestMatch(t, ModeClassic, 7)
	m.Start()
	for i := 0; i < 10; i++ {
		m.Update(testDt, Input{})
	}
	x, y := m.ball.X, m.ball.Y

	m.Pause()
	if m.Phase() != PhasePaused {
		t.Fatalf("phase = %v, want paused", m.Phase())
	}
	m.Start()
	if m.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", m.Phase())
	}
	if m.ball.X != x || m.ball.Y != y {
		t.Error("pause/resume repositioned the ball")
	}
}

func TestClassicCatchScoresAndReverses(t *testing.T) {
	m := newTestMatch(t, ModeClassic, 3)
	m.Start()

	// Straight shot at the paddle center
	m.ball.X, m.ball.Y = 740, 300
	m.ball.VX, m.ball.VY = 200, 0

	m.Update(0.05, Input{})

	if m.Score() != 1 {
		t.Errorf("score = %d after catch, want 1", m.Score())
	}
	if m.ball.VX >= 0 {
		t.Errorf("ball VX = %v after catch, want negative", m.ball.VX)
	}
	want := 300 * 1.07
	if math.Abs(m.ball.Speed-want) > 1e-9 {
		t.Errorf("ball speed = %v after catch, want %v", m.ball.Speed, want)
	}
	if m.GameOver() {
		t.Error("catch ended the match")
	}
}

func TestClassicMissEndsMatch(t *testing.T) {
	m := newTestMatch(t, ModeClassic, 3)
	m.Start()
	m.score = 4

	// Past the paddle, heading for the right wall
	m.ball.X, m.ball.Y = 790, 100
	m.ball.VX, m.ball.VY = 300, 0

	m.Update(0.1, Input{})

	if !m.GameOver() {
		t.Fatal("match still running after right-wall miss")
	}
	if m.FinalScore() != 4 {
		t.Errorf("final score = %d, want 4", m.FinalScore())
	}

	// Terminal: further updates change nothing
	x := m.ball.X
	m.Update(testDt, Input{})
	if m.ball.X != x || m.Phase() != PhaseGameOver {
		t.Error("update advanced a finished match")
	}
}

func TestClassicNonScoringWallsReflect(t *testing.T) {
	m := newTestMatch(t, ModeClassic, 3)
	m.Start()

	m.ball.X, m.ball.Y = 400, 10
	m.ball.VX, m.ball.VY = 0, -300

	m.Update(0.05, Input{})

	if m.GameOver() {
		t.Fatal("top wall ended a classic match")
	}
	if m.ball.VY <= 0 {
		t.Errorf("ball VY = %v after top-wall reflect, want positive", m.ball.VY)
	}
	if m.ball.Y != m.ball.Radius {
		t.Errorf("ball Y = %v, want clamped to %v", m.ball.Y, m.ball.Radius)
	}
}

func TestSurvivalWallCostsLifeAndRespawns(t *testing.T) {
	m := newTestMatch(t, ModeSurvival, 9)
	m.Start()

	m.ball.X, m.ball.Y = 400, 10
	m.ball.VX, m.ball.VY = 0, -300

	m.Update(0.05, Input{})

	if m.Lives() != 2 {
		t.Errorf("lives = %d after wall hit, want 2", m.Lives())
	}
	if m.ball.X != 400 || m.ball.Y != 300 {
		t.Errorf("ball at (%v, %v) after respawn, want (400, 300)", m.ball.X, m.ball.Y)
	}
	if m.ball.VX == 0 {
		t.Error("respawned ball has no horizontal velocity")
	}
	if m.ball.Speed != 300 {
		t.Errorf("respawned ball speed = %v, want base 300", m.ball.Speed)
	}
	if m.Phase() != PhaseRunning {
		t.Errorf("phase = %v after respawn, want running", m.Phase())
	}
}

func TestSurvivalLastLifeEndsMatch(t *testing.T) {
	m := newTestMatch(t, ModeSurvival, 9)
	m.Start()
	m.lives = 1
	m.score = 30

	m.ball.X, m.ball.Y = 400, 10
	m.ball.VX, m.ball.VY = 0, -300

	m.Update(0.05, Input{})

	if !m.GameOver() {
		t.Fatal("match still running with 0 lives and no reserve")
	}
	if m.Lives() != 0 {
		t.Errorf("lives = %d, want 0", m.Lives())
	}
	if m.FinalScore() != 30 {
		t.Errorf("final score = %d, want 30", m.FinalScore())
	}
}

func TestCornerHitCostsOneLife(t *testing.T) {
	m := newTestMatch(t, ModeSurvival, 9)
	m.Start()
	m.lives = 3

	// Into the top-left corner, crossing both walls in one step
	m.ball.X, m.ball.Y = 10, 10
	m.ball.VX, m.ball.VY = -300, -300

	m.Update(0.05, Input{})

	if m.Lives() != 2 {
		t.Errorf("lives = %d after corner hit, want 2", m.Lives())
	}
}

// driveIntoTopWall aims the ball at a top-wall spot no paddle guards and
// steps once.
func driveIntoTopWall(m *Match) {
	m.ball.X, m.ball.Y = 100, 30
	m.ball.VX, m.ball.VY = 0, -300
	m.Update(0.1, Input{})
}

func TestFortressReserveOffer(t *testing.T) {
	m := newTestMatch(t, ModeFortress, 11)
	m.Start()
	m.lives = 1
	m.score = 50

	driveIntoTopWall(m)

	if !m.ReserveOffered() {
		t.Fatal("reserve not offered on last life")
	}
	if m.Phase() != PhaseReserveOffered {
		t.Fatalf("phase = %v, want reserve offered", m.Phase())
	}
	if m.GameOver() {
		t.Error("match over while the reserve offer stands")
	}

	// The offer pauses the simulation
	x := m.ball.X
	m.Update(testDt, Input{})
	if m.ball.X != x {
		t.Error("update advanced entities during the reserve offer")
	}
}

func TestActivateReserveEscalates(t *testing.T) {
	m := newTestMatch(t, ModeFortress, 11)
	m.Start()
	m.lives = 1

	baseHeight := m.paddles[RoleRight].Height
	baseWidth := m.paddles[RoleTop].Width
	basePaddleSpeed := m.paddles[RoleRight].Speed

	driveIntoTopWall(m)
	m.ActivateReserve()

	if m.Lives() != 1 {
		t.Errorf("lives = %d after activation, want 1", m.Lives())
	}
	if m.Phase() != PhaseRunning {
		t.Errorf("phase = %v after activation, want running", m.Phase())
	}
	if !m.ReserveUsed() || m.ReserveOffered() {
		t.Error("reserve flags not advanced by activation")
	}
	if want := 300 * 1.6; math.Abs(m.ball.Speed-want) > 1e-9 {
		t.Errorf("ball speed = %v after activation, want %v", m.ball.Speed, want)
	}
	if want := basePaddleSpeed * 1.3; math.Abs(m.paddles[RoleRight].Speed-want) > 1e-9 {
		t.Errorf("paddle speed = %v, want %v", m.paddles[RoleRight].Speed, want)
	}
	if want := baseHeight * 0.5; m.paddles[RoleRight].Height != want {
		t.Errorf("side paddle height = %v, want %v", m.paddles[RoleRight].Height, want)
	}
	if want := baseWidth * 0.5; m.paddles[RoleTop].Width != want {
		t.Errorf("top paddle width = %v, want %v", m.paddles[RoleTop].Width, want)
	}

	// Second exhaustion ends the match for good
	driveIntoTopWall(m)
	if m.ReserveOffered() {
		t.Error("reserve offered twice")
	}
	if !m.GameOver() {
		t.Error("match still running after the spent reserve")
	}
}

func TestDeclineReserveEndsMatch(t *testing.T) {
	m := newTestMatch(t, ModeFortress, 11)
	m.Start()
	m.lives = 1
	m.score = 50

	driveIntoTopWall(m)
	m.DeclineReserve()

	if !m.GameOver() {
		t.Fatal("match still running after declining the reserve")
	}
	if m.FinalScore() != 50 {
		t.Errorf("final score = %d, want 50", m.FinalScore())
	}
	if m.ReserveUsed() {
		t.Error("declining marked the reserve as used")
	}
}

func TestReserveCallsAreNoOpsOutsideOffer(t *testing.T) {
	m := newTestMatch(t, ModeFortress, 11)
	m.Start()

	m.ActivateReserve()
	if m.ReserveUsed() || m.ball.Speed != 300 {
		t.Error("activation took effect without an offer")
	}
	m.DeclineReserve()
	if m.GameOver() {
		t.Error("decline ended a running match without an offer")
	}
}

func TestResetRestoresBaseConfig(t *testing.T) {
	m := newTestMatch(t, ModeFortress, 11)
	m.Start()
	m.lives = 1
	driveIntoTopWall(m)
	m.ActivateReserve()

	m.Reset()

	if m.Phase() != PhaseNotStarted {
		t.Errorf("phase = %v after reset, want not started", m.Phase())
	}
	if m.Lives() != 3 {
		t.Errorf("lives = %d after reset, want 3", m.Lives())
	}
	if m.Score() != 0 || m.FinalScore() != 0 {
		t.Errorf("score = %d, final = %d after reset, want 0, 0", m.Score(), m.FinalScore())
	}
	if m.ReserveUsed() || m.ReserveOffered() {
		t.Error("reserve flags survived reset")
	}
	if m.ball.Speed != 300 {
		t.Errorf("ball speed = %v after reset, want base 300", m.ball.Speed)
	}
	if m.paddles[RoleRight].Height != 100 {
		t.Errorf("paddle height = %v after reset, want 100", m.paddles[RoleRight].Height)
	}
	if m.Tick() != 0 {
		t.Errorf("tick = %d after reset, want 0", m.Tick())
	}
}

func TestReseedChangesServe(t *testing.T) {
	m := newTestMatch(t, ModeClassic, 7)
	m.Start()
	m.Update(testDt, Input{})
	firstServe := [2]float64{m.ball.VX, m.ball.VY}

	m.Reseed(8)

	if m.Phase() != PhaseNotStarted {
		t.Errorf("phase = %v after reseed, want not started", m.Phase())
	}
	if got := [2]float64{m.ball.VX, m.ball.VY}; got == firstServe {
		t.Errorf("serve direction %v unchanged after reseed", got)
	}

	// Reseeding back to the original seed replays the original serve
	m.Reseed(7)
	if got := [2]float64{m.ball.VX, m.ball.VY}; got != firstServe {
		t.Errorf("serve = %v after reseeding to original, want %v", got, firstServe)
	}
}

func TestBallStaysInBoundsWhileRunning(t *testing.T) {
	m := newTestMatch(t, ModeSurvival, 1234)
	m.Start()

	for i := 0; i < 5000 && !m.GameOver(); i++ {
		in := Input{}
		switch (i / 40) % 3 {
		case 0:
			in.Up = true
		case 1:
			in.Down = true
		}
		m.Update(testDt, in)
		if m.GameOver() {
			break
		}

		b := m.ball
		f := m.Field()
		if b.X < 0 || b.X > f.Width || b.Y < 0 || b.Y > f.Height {
			t.Fatalf("step %d: ball at (%v, %v) outside %vx%v field", i, b.X, b.Y, f.Width, f.Height)
		}
		if got := math.Hypot(b.VX, b.VY); math.Abs(got-b.Speed) > 1e-6 {
			t.Fatalf("step %d: velocity magnitude %v drifted from speed %v", i, got, b.Speed)
		}
		if b.Speed > b.MaxSpeed {
			t.Fatalf("step %d: speed %v exceeds cap %v", i, b.Speed, b.MaxSpeed)
		}
		p := m.paddles[RoleRight]
		if p.Y < 0 || p.Y+p.Height > f.Height {
			t.Fatalf("step %d: paddle at Y %v outside field", i, p.Y)
		}
	}
}

func TestScoreMonotonicWithinLife(t *testing.T) {
	m := newTestMatch(t, ModeSurvival, 77)
	m.Start()

	prev := m.Score()
	for i := 0; i < 3000 && !m.GameOver(); i++ {
		m.Update(testDt, Input{})
		if m.Score() < prev {
			t.Fatalf("step %d: score decreased from %d to %d", i, prev, m.Score())
		}
		prev = m.Score()
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := func(i int) Input {
		switch (i / 25) % 4 {
		case 0:
			return Input{Up: true}
		case 1:
			return Input{}
		case 2:
			return Input{Down: true}
		default:
			return Input{Vertical: -1, Horizontal: 1}
		}
	}

	a := newTestMatch(t, ModeFortress, 2026)
	b := newTestMatch(t, ModeFortress, 2026)
	a.Start()
	b.Start()

	for i := 0; i < 2000; i++ {
		a.Update(testDt, inputs(i))
		b.Update(testDt, inputs(i))
		if a.Hash() != b.Hash() {
			t.Fatalf("step %d: same seed and inputs diverged", i)
		}
	}

	// Reset replays the same match from the same seed
	final := a.Hash()
	a.Reset()
	a.Start()
	for i := 0; i < 2000; i++ {
		a.Update(testDt, inputs(i))
	}
	if a.Hash() != final {
		t.Error("reset replay diverged from the original run")
	}
}
