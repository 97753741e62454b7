package sim

// Input is the normalized input state for one simulation step. Both shapes
// are supported: the classic boolean pair and the extended -1/0/+1 axis
// form. The zero value means "no movement", so missing or unrecognized
// input degrades silently.
type Input struct {
	// Classic form
	Up   bool
	Down bool

	// Extended form. Values outside {-1, 0, 1} are clamped.
	Vertical   int
	Horizontal int
}

// VerticalAxis returns the vertical movement direction in [-1, 1].
// The extended axis wins when set; otherwise the boolean pair is consulted.
// Up is negative because field y grows downward.
func (in Input) VerticalAxis() float64 {
	if in.Vertical != 0 {
		return clampAxis(in.Vertical)
	}
	switch {
	case in.Up && !in.Down:
		return -1
	case in.Down && !in.Up:
		return 1
	}
	return 0
}

// HorizontalAxis returns the horizontal movement direction in [-1, 1].
func (in Input) HorizontalAxis() float64 {
	return clampAxis(in.Horizontal)
}

func clampAxis(v int) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
