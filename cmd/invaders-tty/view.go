package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"invaders/game"
)

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleAlien  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLazer  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBullet = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBunker = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// Bunker glyphs by damage
var cellGlyphs = []rune{'#', '+', '.'}

// viewport maps the scene onto a terminal grid; row 0 holds the score line
type viewport struct {
	cols, rows int
	cfg        game.Config
}

// project returns the terminal cell of a world point and whether it is inside the grid
func (v viewport) project(p game.Vec2) (int, int, bool) {
	if v.cols <= 0 || v.rows <= 1 {
		return 0, 0, false
	}
	fx := (p.X + v.cfg.SceneWidth) / (2 * v.cfg.SceneWidth)
	fy := (v.cfg.SceneHeight - p.Y) / (2 * v.cfg.SceneHeight)
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	col := int(fx * float64(v.cols-1))
	row := 1 + int(fy*float64(v.rows-2))
	return col, row, true
}

func (v viewport) put(screen tcell.Screen, p game.Vec2, r rune, style tcell.Style) {
	if col, row, ok := v.project(p); ok {
		screen.SetContent(col, row, r, nil, style)
	}
}

func drawString(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}

// draw renders a snapshot into the terminal
func draw(screen tcell.Screen, snap *game.Snapshot, cfg game.Config, muted bool) {
	screen.Clear()
	cols, rows := screen.Size()
	v := viewport{cols: cols, rows: rows, cfg: cfg}

	status := fmt.Sprintf("SCORE %06d  HI %06d  WAVE %d  LIVES %d", snap.Score, snap.HighScore, snap.Wave, snap.Lives)
	if muted {
		status += "  [MUTED]"
	}
	drawString(screen, 0, 0, status, styleHUD)

	for _, c := range snap.Cells {
		glyph := cellGlyphs[len(cellGlyphs)-1]
		if int(c.Damage) < len(cellGlyphs) {
			glyph = cellGlyphs[c.Damage]
		}
		v.put(screen, c.Pos, glyph, styleBunker)
	}

	alienGlyph := 'W'
	if (snap.AlienFrame/2)%2 == 1 {
		alienGlyph = 'M'
	}
	for _, pos := range snap.Aliens {
		v.put(screen, pos, alienGlyph, styleAlien)
	}

	for _, pos := range snap.Bullets {
		v.put(screen, pos, '!', styleBullet)
	}
	if snap.Lazer == game.LazerFired {
		v.put(screen, snap.LazerPos, '|', styleLazer)
	}
	if snap.State.InGame() && snap.PlayerVisible {
		if col, row, ok := v.project(snap.Player); ok {
			drawString(screen, col-1, row, "/A\\", stylePlayer)
		}
	}

	lines := banner(snap)
	top := rows/2 - len(lines)/2
	for i, line := range lines {
		drawString(screen, (cols-len(line))/2, top+i, line, styleBanner)
	}

	screen.Show()
}

// banner returns the centered overlay for attract and transition states
func banner(snap *game.Snapshot) []string {
	switch snap.State {
	case game.StateGameOver:
		return []string{"GAME OVER"}
	case game.StateInsertCoin:
		return []string{"INSERT COIN", "ENTER TO PLAY, I FOR SCORES", "ARROWS OR A/D TO MOVE, SPACE TO FIRE"}
	case game.StateLeaderBoard:
		lines := []string{"HIGH SCORES"}
		for i, e := range snap.LeaderBoard {
			lines = append(lines, fmt.Sprintf("%d. %06d  WAVE %d", i+1, e.Score, e.Wave))
		}
		return lines
	case game.StateStart:
		return []string{"GET READY"}
	case game.StateNewWave:
		return []string{fmt.Sprintf("WAVE %d", int(snap.Wave)+1)}
	}
	return nil
}
