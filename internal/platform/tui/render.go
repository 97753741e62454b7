package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emily-flambe/pong/internal/core"
	"github.com/emily-flambe/pong/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawMatch projects the match's field onto the screen buffer: a HUD line
// on top and the bordered playfield below it, scaled to the terminal size.
func drawMatch(dst *core.Screen, m *sim.Match, title string, highScore int) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 24 || h < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	drawHUD(dst, m, title, highScore)

	boxY := 1
	boxH := h - boxY
	dst.DrawBox(0, boxY, w, boxH)

	f := m.Field()
	innerW, innerH := w-2, boxH-2
	sx := float64(innerW) / f.Width
	sy := float64(innerH) / f.Height

	project := func(fx, fy float64) (int, int) {
		x := 1 + int(fx*sx)
		y := boxY + 1 + int(fy*sy)
		return core.Clamp(x, 1, innerW), core.Clamp(y, boxY+1, boxY+innerH)
	}

	st := m.State()
	if st.Paddles != nil {
		drawPaddle(dst, st.Paddles.Left, sim.RoleLeft, project, sx, sy)
		drawPaddle(dst, st.Paddles.Right, sim.RoleRight, project, sx, sy)
		drawPaddle(dst, st.Paddles.Top, sim.RoleTop, project, sx, sy)
		drawPaddle(dst, st.Paddles.Bottom, sim.RoleBottom, project, sx, sy)
	} else {
		drawPaddle(dst, st.Paddle, sim.RoleRight, project, sx, sy)
	}

	if st.Ball != nil {
		bx, by := project(st.Ball.X, st.Ball.Y)
		dst.SetColor(bx, by, '●', core.ColorBrightYellow)
	}

	drawOverlay(dst, m)
}

// drawPaddle renders one paddle as a solid run of cells along its axis.
func drawPaddle(dst *core.Screen, p *sim.PaddleState, role sim.Role, project func(float64, float64) (int, int), sx, sy float64) {
	if p == nil {
		return
	}

	x, y := project(p.X, p.Y)
	if role.Horizontal() {
		length := core.Max(1, int(p.Width*sx))
		for i := 0; i < length; i++ {
			dst.SetColor(x+i, y, '█', core.ColorBrightCyan)
		}
	} else {
		length := core.Max(1, int(p.Height*sy))
		for i := 0; i < length; i++ {
			dst.SetColor(x, y+i, '█', core.ColorBrightCyan)
		}
	}
}

// drawHUD renders the top status line.
func drawHUD(dst *core.Screen, m *sim.Match, title string, highScore int) {
	left := fmt.Sprintf(" %s  Score: %d", title, m.Score())
	if m.Mode().HasLives() {
		left += fmt.Sprintf("  Lives: %d", m.Lives())
	}
	if m.ReserveUsed() {
		left += "  [reserve]"
	}
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("Best: %d ", highScore)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorGray)
}

// drawOverlay renders the centered status banner for non-running phases.
func drawOverlay(dst *core.Screen, m *sim.Match) {
	midY := dst.Height() / 2

	switch m.Phase() {
	case sim.PhaseNotStarted:
		dst.DrawTextCentered(midY, "Press P to start")
	case sim.PhasePaused:
		dst.DrawTextCentered(midY, "PAUSED")
		dst.DrawTextCentered(midY+1, "Press P to resume")
	case sim.PhaseReserveOffered:
		dst.DrawTextCentered(midY-1, "Out of lives!")
		dst.DrawTextCentered(midY, "Call in the reserve team? Faster, smaller, one life.")
		dst.DrawTextCentered(midY+1, "Y: accept   N: decline")
	case sim.PhaseGameOver:
		dst.DrawTextCentered(midY-1, "GAME OVER")
		dst.DrawTextCentered(midY, fmt.Sprintf("Final score: %d", m.FinalScore()))
		dst.DrawTextCentered(midY+1, "R: play again   Esc: menu   Q: quit")
	}
}
