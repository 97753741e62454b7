// Package sim implements the deterministic ball-and-paddle simulation core.
// A Match advances one step at a time from (deltaTime, input) with no
// internal timing, I/O, or rendering; the platform owns the loop and the
// pixels. All randomness flows through a seeded source so identical seeds
// and inputs replay identical matches.
package sim

import (
	"math"
	"math/rand"

	"github.com/emily-flambe/pong/internal/config"
)

// Phase is the match lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseReserveOffered
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseReserveOffered:
		return "reserve offered"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Match is a single match of one mode. It is not safe for concurrent use:
// exactly one caller owns it and serializes all operations.
type Match struct {
	mode Mode

	baseCfg config.MatchConfig // As loaded; restored on Reset
	cfg     config.MatchConfig // Working copy; reserve activation scales it

	field   Field
	ball    *Ball
	paddles PaddleSet

	score          int
	lives          int
	finalScore     int
	reserveOffered bool
	reserveUsed    bool
	phase          Phase

	rng  *rand.Rand
	seed int64
	tick uint64
}

// NewMatch creates a match in the NotStarted phase. The seed makes ball
// serves, and therefore whole matches, reproducible.
func NewMatch(mode Mode, cfg config.MatchConfig, seed int64) *Match {
	m := &Match{
		mode:    mode,
		baseCfg: cfg,
		seed:    seed,
	}
	m.Reset()
	return m
}

// Reset reinitializes all entities and match state to a fresh match.
// Two consecutive resets yield identical, independent matches.
func (m *Match) Reset() {
	m.cfg = m.baseCfg
	m.rng = rand.New(rand.NewSource(m.seed))
	m.field = Field{Width: m.cfg.Field.Width, Height: m.cfg.Field.Height}

	m.paddles = PaddleSet{}
	for _, role := range m.mode.Roles() {
		m.paddles[role] = NewPaddle(role, m.field, m.cfg.Paddle)
	}
	m.ball = NewBall(m.field, m.cfg.Ball, m.rng)

	m.score = 0
	m.lives = m.cfg.Rules.Lives
	m.finalScore = 0
	m.reserveOffered = false
	m.reserveUsed = false
	m.phase = PhaseNotStarted
	m.tick = 0
}

// Reseed installs a new seed and resets. Used when restarting so the new
// match serves differently from the last one.
func (m *Match) Reseed(seed int64) {
	m.seed = seed
	m.Reset()
}

// Start begins or resumes the match. It only toggles the running state;
// entities keep their positions.
func (m *Match) Start() {
	if m.phase == PhaseNotStarted || m.phase == PhasePaused {
		m.phase = PhaseRunning
	}
}

// Pause suspends the match. Safe no-op in any other phase.
func (m *Match) Pause() {
	if m.phase == PhaseRunning {
		m.phase = PhasePaused
	}
}

// Update advances the match by one step. It is a no-op unless the match is
// running. dt is in seconds and must be capped by the caller (the
// orchestration loop caps at 1/30 s); the core trusts that cap, and an
// uncapped dt can tunnel the ball through a paddle.
func (m *Match) Update(dt float64, in Input) {
	if m.phase != PhaseRunning || dt <= 0 {
		return
	}
	m.tick++

	advance(&m.paddles, m.ball, m.field, dt, in)

	deflection := m.cfg.Rules.MaxDeflectionDeg * math.Pi / 180
	events := resolvePaddles(m.ball, &m.paddles, deflection, m.cfg.Rules.SpeedGrowth)
	walls := detectWalls(m.ball, m.field)

	m.applyRules(events, walls)
}

// applyRules is the rule engine step: scoring for catches, then the
// mode's wall policy for any boundary crossings.
func (m *Match) applyRules(events []Event, walls []Wall) {
	for _, e := range events {
		if e.Kind == EventCatch {
			m.score += m.cfg.Rules.CatchPoints
		}
	}

	// A corner can clip two walls in one step; that still costs one life
	lifeLost := false
	for _, w := range walls {
		switch m.mode.wallPolicy(w) {
		case wallReflect:
			reflectOffWall(m.ball, m.field, w)
		case wallEndsMatch:
			m.endMatch()
			return
		case wallLosesLife:
			lifeLost = true
		}
	}

	if lifeLost {
		m.loseLife()
	}
}

// loseLife deducts one life and either respawns the ball, offers the
// reserve, or ends the match.
func (m *Match) loseLife() {
	m.lives--
	if m.lives > 0 {
		m.respawnBall()
		return
	}
	m.lives = 0

	if m.cfg.Rules.Reserve.Enabled && !m.reserveUsed {
		m.reserveOffered = true
		m.phase = PhaseReserveOffered
		return
	}
	m.endMatch()
}

// respawnBall replaces the ball wholesale with a fresh centered serve.
func (m *Match) respawnBall() {
	m.ball = NewBall(m.field, m.cfg.Ball, m.rng)
}

// endMatch freezes the final score and makes the phase terminal.
func (m *Match) endMatch() {
	m.finalScore = m.score
	m.phase = PhaseGameOver
}

// ActivateReserve accepts the one-time reserve continuation. Valid only
// while the offer stands; otherwise a safe no-op. Accepting restores one
// life and escalates difficulty: ball speed ×1.6, paddle speed ×1.3,
// paddle length halved.
func (m *Match) ActivateReserve() {
	if m.phase != PhaseReserveOffered {
		return
	}
	r := m.cfg.Rules.Reserve

	m.reserveOffered = false
	m.reserveUsed = true
	m.lives = 1

	// Scale the working config so the respawned ball and any later
	// respawns inherit the escalated speeds
	m.cfg.Ball.BaseSpeed *= r.BallSpeedFactor
	m.cfg.Ball.MaxSpeed *= r.BallSpeedFactor

	for _, p := range m.paddles {
		if p == nil {
			continue
		}
		p.Speed *= r.PaddleSpeedFactor
		shrinkPaddle(p, r.SizeFactor)
	}

	m.respawnBall()
	m.phase = PhaseRunning
}

// shrinkPaddle scales the paddle's long axis about its center.
func shrinkPaddle(p *Paddle, factor float64) {
	if p.Role.Horizontal() {
		newW := p.Width * factor
		p.X += (p.Width - newW) / 2
		p.Width = newW
	} else {
		newH := p.Height * factor
		p.Y += (p.Height - newH) / 2
		p.Height = newH
	}
}

// DeclineReserve turns the offer down and ends the match. Valid only while
// the offer stands; otherwise a safe no-op.
func (m *Match) DeclineReserve() {
	if m.phase != PhaseReserveOffered {
		return
	}
	m.reserveOffered = false
	m.endMatch()
}

// Mode returns the match's mode.
func (m *Match) Mode() Mode {
	return m.mode
}

// Phase returns the current lifecycle phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Score returns the current score.
func (m *Match) Score() int {
	return m.score
}

// Lives returns the remaining lives (0 in modes without lives).
func (m *Match) Lives() int {
	return m.lives
}

// GameOver reports whether the match has ended.
func (m *Match) GameOver() bool {
	return m.phase == PhaseGameOver
}

// FinalScore returns the score frozen at match end, 0 before then.
func (m *Match) FinalScore() int {
	return m.finalScore
}

// ReserveOffered reports whether the reserve continuation is on offer.
func (m *Match) ReserveOffered() bool {
	return m.reserveOffered
}

// ReserveUsed reports whether the reserve continuation has been spent.
func (m *Match) ReserveUsed() bool {
	return m.reserveUsed
}

// Field returns the playfield dimensions.
func (m *Match) Field() Field {
	return m.field
}

// Tick returns the number of steps taken since the last reset.
func (m *Match) Tick() uint64 {
	return m.tick
}
