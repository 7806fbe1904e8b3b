package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/conga/internal/chase"
	"github.com/vovakirdan/conga/internal/core"
)

// Glyphs used to fill entity boxes.
const (
	characterGlyph   = 'Z'
	collectibleGlyph = '@'
	hazardGlyph      = '#'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudText is the status line shown above the field.
func hudText(snap chase.Snapshot) string {
	return fmt.Sprintf("Lives: %d  Cats eaten: %d", snap.Lives, snap.Collected)
}

// drawFrame paints one snapshot: HUD, playable-area frame, entities and
// the character.
func drawFrame(s *core.Screen, v Viewport, snap chase.Snapshot, area core.RectF, flagDuration float64) {
	s.Clear()

	s.DrawTextColored(0, 0, hudText(snap), core.ColorBrightWhite)
	clock := fmt.Sprintf("%5.1fs", snap.Elapsed)
	s.DrawTextColored(s.Width()-len(clock), 0, clock, core.ColorGray)

	s.DrawBox(v.WorldRect(area), core.ColorGray)

	for _, e := range snap.Entities {
		r := v.WorldRect(core.CenteredRect(e.Pos, e.W, e.H))
		switch e.Kind {
		case chase.KindCollectible:
			s.DrawRect(r, collectibleGlyph, core.ColorYellow)
		case chase.KindHazard:
			s.DrawRect(r, hazardGlyph, core.ColorMagenta)
		}
	}

	c := snap.Character
	if characterVisible(c, flagDuration) {
		color := core.ColorBrightGreen
		if c.Flagged {
			color = core.ColorBrightRed
		}
		s.DrawRect(v.WorldRect(core.CenteredRect(c.Pos, c.W, c.H)), characterGlyph, color)
	}
}

// characterVisible reports whether the character is drawn this frame.
// A flagged character blinks blinkCount times over flagDuration, starting hidden.
func characterVisible(c chase.Pose, flagDuration float64) bool {
	if !c.Flagged || flagDuration <= 0 {
		return true
	}
	since := max(flagDuration-c.FlagRemaining, 0)
	half := flagDuration / (2 * blinkCount)
	return int(since/half)%2 == 1
}

// drawSummary overlays the end-of-session box in the middle of the screen.
func drawSummary(s *core.Screen, snap chase.Snapshot, restartIn time.Duration) {
	title, color := "YOU WIN!", core.ColorBrightGreen
	if snap.State == chase.StateLost {
		title, color = "GAME OVER", core.ColorBrightRed
	}
	lines := []string{
		title,
		hudText(snap),
		fmt.Sprintf("Next run in %ds", int(math.Ceil(restartIn.Seconds()))),
		"r restart  q quit",
	}

	const boxW = 34
	boxH := len(lines) + 2
	top := (s.Height() - boxH) / 2
	box := core.NewRect((s.Width()-boxW)/2, top, boxW, boxH)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, color)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		s.DrawTextCentered(top+1+i, line, c)
	}
}
