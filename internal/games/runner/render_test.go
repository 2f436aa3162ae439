package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

func TestRenderMenu(t *testing.T) {
	s := NewSession(1)
	screen := core.NewScreen(80, 24)
	s.Render(screen)

	if !strings.Contains(screen.Row(4), Title) {
		t.Errorf("title row = %q", screen.Row(4))
	}
	if !strings.Contains(screen.Row(19), StartPrompt) {
		t.Errorf("prompt row = %q", screen.Row(19))
	}

	cell := screen.GetCell(40, 10)
	if cell.Rune != BodyChar || cell.Color != DefaultTheme().Player {
		t.Errorf("standing figure cell = %+v", cell)
	}
}

func TestRenderMenuAfterGameOver(t *testing.T) {
	s := NewSession(1)
	startRun(t, s)
	survive(t, s, 150)
	s.Obstacles().Spawn(ObstacleSpec{Kind: Crawling, X: PlayerX + 6, Y: GroundY, Speed: 6})
	s.Step(1, noInput)

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	if !strings.Contains(screen.Row(19), "Your score: 2") {
		t.Errorf("score row = %q", screen.Row(19))
	}
	if strings.Contains(screen.String(), StartPrompt) {
		t.Error("prompt should be replaced by the last score")
	}
}

func TestRenderActive(t *testing.T) {
	theme := DefaultTheme()
	theme.Player = core.ColorYellow
	s := NewSession(1, WithTheme(theme))
	startRun(t, s)

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	if !strings.Contains(screen.Row(3), "Score: 0") {
		t.Errorf("score row = %q", screen.Row(3))
	}
	if screen.Row(18) != strings.Repeat(string(GroundLineChar), 80) {
		t.Errorf("ground row = %q", screen.Row(18))
	}
	if screen.Get(0, 20) != GroundFillChar {
		t.Errorf("below ground = %q", screen.Get(0, 20))
	}

	// Player covers columns 4-11 and rows 12-17
	cell := screen.GetCell(5, 13)
	if cell.Rune != BodyChar || cell.Color != core.ColorYellow {
		t.Errorf("player cell = %+v", cell)
	}
	if strings.Contains(screen.String(), Title) {
		t.Error("title should not be drawn while running")
	}
}

func TestRenderActiveSmallScreens(t *testing.T) {
	s := NewSession(1)
	startRun(t, s)

	tests := []struct {
		w, h   int
		ground int
	}{
		{20, 8, 6},
		{20, 4, 3},
		{20, 2, 1},
		{20, 1, 0},
		{0, 0, -1},
	}
	for _, tc := range tests {
		screen := core.NewScreen(tc.w, tc.h)
		s.Render(screen)
		if tc.ground < 0 {
			continue
		}
		if got := screen.Get(0, tc.ground); got != GroundLineChar {
			t.Errorf("%dx%d: ground cell = %q, expected %q", tc.w, tc.h, got, GroundLineChar)
		}
		for y := tc.ground + 1; y < tc.h; y++ {
			if got := screen.Get(tc.w-1, y); got != GroundFillChar {
				t.Errorf("%dx%d: fill at row %d = %q", tc.w, tc.h, y, got)
			}
		}
	}
}

func TestRenderObstacle(t *testing.T) {
	s := NewSession(1)
	startRun(t, s)
	s.Obstacles().Spawn(ObstacleSpec{Kind: Flying, X: 400, Y: 210, Speed: 6})

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	// Box 358..442 x 170..210 maps to columns 35-44, rows 10-12
	if got := screen.Get(40, 10); got != WingUpChar {
		t.Errorf("wing row = %q", got)
	}
	cell := screen.GetCell(40, 11)
	if cell.Rune != FlyBodyChar || cell.Color != DefaultTheme().Flying {
		t.Errorf("flyer body cell = %+v", cell)
	}
}

func TestToCellsMinimumSize(t *testing.T) {
	screen := core.NewScreen(10, 5)
	cells := toCells(core.NewRect(3, 3, 2, 2), screen)
	if cells.W < 1 || cells.H < 1 {
		t.Errorf("tiny box mapped to %+v", cells)
	}
}
