package runner

import (
	"fmt"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

// Text shown by the renderer.
const (
	Title       = "Pixel Runner"
	StartPrompt = "Press space to run"
)

// Visual characters for rendering
const (
	GroundLineChar = '═'
	GroundFillChar = '░'
	BodyChar       = '█'
	SitChar        = '▄'
	LegLeftChar    = '╱'
	LegRightChar   = '╲'
	TuckChar       = '▀'
	WingUpChar     = '^'
	WingDownChar   = 'v'
	FlyBodyChar    = '●'
	ShellChar      = '@'
	SlimeChar      = '_'
)

// Theme holds the colors used to draw a session.
type Theme struct {
	Player   core.Color
	Flying   core.Color
	Crawling core.Color
	Ground   core.Color
	Title    core.Color
	Text     core.Color
}

// DefaultTheme returns the stock color scheme.
func DefaultTheme() Theme {
	return Theme{
		Player:   core.ColorBrightWhite,
		Flying:   core.ColorMagenta,
		Crawling: core.ColorOrange,
		Ground:   core.ColorGreen,
		Title:    core.ColorCyan,
		Text:     core.ColorGray,
	}
}

// Render draws the current session state, scaling the world onto the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	snap := s.Snapshot()

	if snap.Phase == PhaseMenu {
		s.renderMenu(dst, snap)
		return
	}

	gy := core.Clamp(toRow(GroundY, dst), 0, dst.Height()-1)
	dst.DrawRect(core.NewRect(0, gy+1, dst.Width(), dst.Height()-gy-1), GroundFillChar, s.theme.Ground)
	dst.DrawHLine(0, gy, dst.Width(), GroundLineChar, s.theme.Ground)

	for _, o := range snap.Obstacles {
		color := s.theme.Crawling
		if o.Kind == Flying {
			color = s.theme.Flying
		}
		drawSprite(dst, o.Sprite, color)
	}
	drawSprite(dst, snap.Player, s.theme.Player)

	dst.DrawTextCentered(toRow(50, dst), fmt.Sprintf("Score: %d", snap.Score), s.theme.Text)
}

func (s *Session) renderMenu(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(toRow(80, dst), Title, s.theme.Title)

	stand := core.NewRect(WorldW/2-PlayerW, 200-PlayerH, PlayerW*2, PlayerH*2)
	drawSprite(dst, Sprite{Frame: FrameStand, Box: stand}, s.theme.Player)

	msg := StartPrompt
	if snap.Score != 0 {
		msg = fmt.Sprintf("Your score: %d", snap.Score)
	}
	dst.DrawTextCentered(toRow(330, dst), msg, s.theme.Title)
}

func toRow(y int, dst *core.Screen) int {
	return core.ScaleDown(y, WorldH, dst.Height())
}

// toCells maps a world box onto the screen grid. Every visible box covers at
// least one cell.
func toCells(box core.Rect, dst *core.Screen) core.Rect {
	x0 := core.ScaleDown(box.X, WorldW, dst.Width())
	x1 := max(core.ScaleUp(box.Right(), WorldW, dst.Width()), x0+1)
	y0 := core.ScaleDown(box.Y, WorldH, dst.Height())
	y1 := max(core.ScaleUp(box.Bottom(), WorldH, dst.Height()), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func drawSprite(dst *core.Screen, sp Sprite, color core.Color) {
	cells := toCells(sp.Box, dst)
	for row := 0; row < cells.H; row++ {
		for col := 0; col < cells.W; col++ {
			ch := glyph(sp.Frame, row, cells.H, col)
			if ch == ' ' {
				continue
			}
			dst.SetColored(cells.X+col, cells.Y+row, ch, color)
		}
	}
}

// glyph picks the character for one cell of a sprite.
func glyph(f Frame, row, rows, col int) rune {
	last := row == rows-1
	switch f {
	case FrameWalk1, FrameWalk2:
		if !last {
			return BodyChar
		}
		if (col%2 == 0) == (f == FrameWalk1) {
			return LegLeftChar
		}
		return LegRightChar
	case FrameJump:
		if last {
			return TuckChar
		}
		return BodyChar
	case FrameSit:
		return SitChar
	case FrameStand:
		return BodyChar
	case FrameFly1, FrameFly2:
		if row == 0 && rows > 1 {
			if f == FrameFly1 {
				return WingUpChar
			}
			return WingDownChar
		}
		return FlyBodyChar
	case FrameSnail1, FrameSnail2:
		if last {
			return SlimeChar
		}
		if (col+int(f-FrameSnail1))%3 == 0 {
			return ' '
		}
		return ShellChar
	default:
		return BodyChar
	}
}
