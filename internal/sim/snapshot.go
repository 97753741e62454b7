package sim

import "math"

// BallState is the serializable ball record.
type BallState struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VelocityX float64 `json:"velocityX"`
	VelocityY float64 `json:"velocityY"`
	Radius    float64 `json:"radius"`
	Speed     float64 `json:"speed"`
	BaseSpeed float64 `json:"baseSpeed"`
	MaxSpeed  float64 `json:"maxSpeed"`
}

// PaddleState is the serializable paddle record.
type PaddleState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
}

// PaddleSetState holds one record per guarded edge. Absent edges are nil
// and omitted from the wire form.
type PaddleSetState struct {
	Left   *PaddleState `json:"left,omitempty"`
	Right  *PaddleState `json:"right,omitempty"`
	Top    *PaddleState `json:"top,omitempty"`
	Bottom *PaddleState `json:"bottom,omitempty"`
}

// FieldState carries the playfield dimensions and the running flag.
type FieldState struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	IsRunning bool    `json:"isRunning"`
}

// Snapshot is the JSON-safe wire form of a match. Every top-level field is
// a pointer so a partial snapshot can be expressed: absent fields are nil,
// marshal away under omitempty, and are skipped on merge. Two-paddle-edge
// modes populate Paddle; the four-paddle mode populates Paddles.
type Snapshot struct {
	Ball                  *BallState      `json:"ball,omitempty"`
	Paddle                *PaddleState    `json:"paddle,omitempty"`
	Paddles               *PaddleSetState `json:"paddles,omitempty"`
	GameConfig            *FieldState     `json:"gameConfig,omitempty"`
	Score                 *int            `json:"score,omitempty"`
	Lives                 *int            `json:"lives,omitempty"`
	GameOver              *bool           `json:"gameOver,omitempty"`
	FinalScore            *int            `json:"finalScore,omitempty"`
	ShowReserveTeamOption *bool           `json:"showReserveTeamOption,omitempty"`
	ReserveTeamUsed       *bool           `json:"reserveTeamUsed,omitempty"`
}

// State returns a deep copy of the match. The snapshot shares no memory
// with the live entities, so holders can never mutate the simulation.
func (m *Match) State() Snapshot {
	s := Snapshot{
		Ball: ballState(m.ball),
		GameConfig: &FieldState{
			Width:     m.field.Width,
			Height:    m.field.Height,
			IsRunning: m.phase == PhaseRunning,
		},
		Score:      intPtr(m.score),
		GameOver:   boolPtr(m.phase == PhaseGameOver),
		FinalScore: intPtr(m.finalScore),
	}

	if m.mode.HasLives() {
		s.Lives = intPtr(m.lives)
	}
	if m.cfg.Rules.Reserve.Enabled {
		s.ShowReserveTeamOption = boolPtr(m.reserveOffered)
		s.ReserveTeamUsed = boolPtr(m.reserveUsed)
	}

	if m.mode == ModeFortress {
		s.Paddles = &PaddleSetState{
			Left:   paddleState(m.paddles[RoleLeft]),
			Right:  paddleState(m.paddles[RoleRight]),
			Top:    paddleState(m.paddles[RoleTop]),
			Bottom: paddleState(m.paddles[RoleBottom]),
		}
	} else {
		s.Paddle = paddleState(m.paddles[RoleRight])
	}
	return s
}

// SetState merges the provided top-level fields into the match. Absent
// (nil) fields are ignored rather than zeroing state, so an authoritative
// peer can override just the ball, or just the score. The lifecycle phase
// is re-derived from the merged flags.
func (m *Match) SetState(s Snapshot) {
	if s.Ball != nil {
		m.ball = ballFromState(s.Ball)
	}
	if s.Paddle != nil {
		applyPaddleState(m.paddles[RoleRight], s.Paddle)
	}
	if s.Paddles != nil {
		applyPaddleState(m.paddles[RoleLeft], s.Paddles.Left)
		applyPaddleState(m.paddles[RoleRight], s.Paddles.Right)
		applyPaddleState(m.paddles[RoleTop], s.Paddles.Top)
		applyPaddleState(m.paddles[RoleBottom], s.Paddles.Bottom)
	}
	if s.Score != nil {
		m.score = *s.Score
	}
	if s.Lives != nil {
		m.lives = *s.Lives
	}
	if s.FinalScore != nil {
		m.finalScore = *s.FinalScore
	}
	if s.GameOver != nil && *s.GameOver {
		m.phase = PhaseGameOver
	}
	if s.ShowReserveTeamOption != nil {
		m.reserveOffered = *s.ShowReserveTeamOption
		if m.reserveOffered {
			m.phase = PhaseReserveOffered
		}
	}
	if s.ReserveTeamUsed != nil {
		m.reserveUsed = *s.ReserveTeamUsed
	}
	if s.GameConfig != nil {
		m.field = Field{Width: s.GameConfig.Width, Height: s.GameConfig.Height}
		if m.phase != PhaseGameOver && m.phase != PhaseReserveOffered {
			if s.GameConfig.IsRunning {
				m.phase = PhaseRunning
			} else if m.phase == PhaseRunning {
				m.phase = PhasePaused
			}
		}
	}
}

// Hash folds the full dynamic state into a single value. Two matches fed
// identical seeds and inputs hash identically step for step, which the
// determinism tests rely on.
func (m *Match) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(v float64) {
		mix(math.Float64bits(v))
	}

	mixF(m.ball.X)
	mixF(m.ball.Y)
	mixF(m.ball.VX)
	mixF(m.ball.VY)
	mixF(m.ball.Speed)
	for _, p := range m.paddles {
		if p == nil {
			continue
		}
		mixF(p.X)
		mixF(p.Y)
		mixF(p.Width)
		mixF(p.Height)
	}
	mix(uint64(m.score))
	mix(uint64(m.lives))
	mix(uint64(m.phase))
	if m.reserveOffered {
		mix(1)
	}
	if m.reserveUsed {
		mix(2)
	}
	mix(m.tick)
	return h
}

func ballState(b *Ball) *BallState {
	if b == nil {
		return nil
	}
	return &BallState{
		X:         b.X,
		Y:         b.Y,
		VelocityX: b.VX,
		VelocityY: b.VY,
		Radius:    b.Radius,
		Speed:     b.Speed,
		BaseSpeed: b.BaseSpeed,
		MaxSpeed:  b.MaxSpeed,
	}
}

func ballFromState(s *BallState) *Ball {
	return &Ball{
		X:         s.X,
		Y:         s.Y,
		VX:        s.VelocityX,
		VY:        s.VelocityY,
		Radius:    s.Radius,
		Speed:     s.Speed,
		BaseSpeed: s.BaseSpeed,
		MaxSpeed:  s.MaxSpeed,
	}
}

func paddleState(p *Paddle) *PaddleState {
	if p == nil {
		return nil
	}
	return &PaddleState{
		X:      p.X,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
		Speed:  p.Speed,
	}
}

func applyPaddleState(p *Paddle, s *PaddleState) {
	if p == nil || s == nil {
		return
	}
	p.X = s.X
	p.Y = s.Y
	p.Width = s.Width
	p.Height = s.Height
	p.Speed = s.Speed
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
