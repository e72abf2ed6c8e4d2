package arcade

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"invaders/game"
)

const (
	hudScale    = 3.0
	bannerScale = 5.0
	hudMargin   = 24.0
)

var (
	colorHUD    = color.RGBA{230, 230, 230, 255}
	colorBanner = color.RGBA{255, 220, 60, 255}
)

// HUD draws the score line and the state banners
type HUD struct {
	face *text.GoXFace
}

// NewHUD creates a HUD using the built-in bitmap font
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// StatusLine is the always-visible score line
func StatusLine(snap *game.Snapshot) string {
	return fmt.Sprintf("SCORE %06d   HI %06d   WAVE %d   LIVES %d", snap.Score, snap.HighScore, snap.Wave, snap.Lives)
}

// Banner returns the centered overlay lines for the current state
func Banner(snap *game.Snapshot) []string {
	switch snap.State {
	case game.StateGameOver:
		return []string{"GAME OVER"}
	case game.StateInsertCoin:
		return []string{"INSERT COIN", "PRESS ENTER TO PLAY", "I FOR HIGH SCORES"}
	case game.StateLeaderBoard:
		lines := []string{"HIGH SCORES"}
		if len(snap.LeaderBoard) == 0 {
			lines = append(lines, "NO SCORES YET")
		}
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

// Draw renders the status line and any banner
func (h *HUD) Draw(screen *ebiten.Image, snap *game.Snapshot) {
	h.drawText(screen, StatusLine(snap), hudMargin, hudMargin, hudScale, colorHUD)

	lines := Banner(snap)
	if len(lines) == 0 {
		return
	}

	b := screen.Bounds()
	lineHeight := h.face.Metrics().HAscent + h.face.Metrics().HDescent
	lineHeight *= bannerScale * 1.4
	y := float64(b.Dy())/2 - lineHeight*float64(len(lines))/2
	for _, line := range lines {
		w, _ := text.Measure(line, h.face, 0)
		x := (float64(b.Dx()) - w*bannerScale) / 2
		h.drawText(screen, line, x, y, bannerScale, colorBanner)
		y += lineHeight
	}
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, strings.ToUpper(s), h.face, op)
}
