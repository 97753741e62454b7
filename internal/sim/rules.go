package sim

// Mode selects the match's wall policy, paddle layout, and end-of-life
// behavior. All mode differences are expressed through this type rather
// than conditionals scattered through the collision code.
type Mode int

const (
	// ModeClassic fields one right paddle. Top, bottom, and left walls
	// reflect; the ball escaping past the right edge ends the match.
	ModeClassic Mode = iota

	// ModeSurvival fields one right paddle. Any wall hit costs a life and
	// respawns the ball; the match ends when lives reach zero.
	ModeSurvival

	// ModeFortress guards all four edges with paddles. An uncaught edge
	// crossing costs a life, and running out of lives offers a one-time
	// reserve continuation before the match ends.
	ModeFortress
)

// String returns the mode's identifier.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeSurvival:
		return "survival"
	case ModeFortress:
		return "fortress"
	default:
		return "unknown"
	}
}

// Roles returns the paddle layout for the mode.
func (m Mode) Roles() []Role {
	if m == ModeFortress {
		return []Role{RoleLeft, RoleRight, RoleTop, RoleBottom}
	}
	return []Role{RoleRight}
}

// HasLives reports whether the mode tracks lives.
func (m Mode) HasLives() bool {
	return m != ModeClassic
}

// wallOutcome is the policy applied when the ball crosses a boundary.
type wallOutcome int

const (
	wallReflect wallOutcome = iota
	wallLosesLife
	wallEndsMatch
)

// wallPolicy returns what a crossing of the given wall means in this mode.
func (m Mode) wallPolicy(w Wall) wallOutcome {
	switch m {
	case ModeClassic:
		if w == WallRight {
			return wallEndsMatch
		}
		return wallReflect
	default:
		// Lives modes treat every uncaught boundary the same way
		return wallLosesLife
	}
}
