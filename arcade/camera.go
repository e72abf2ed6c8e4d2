package arcade

import "invaders/game"

// Camera maps the y-up scene onto the y-down screen
type Camera struct {
	X, Y   float64 // Camera position in world coordinates
	Zoom   float64 // Zoom level
	Width  float64 // Viewport width
	Height float64 // Viewport height
}

// NewCamera creates a camera centered on the scene origin
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Zoom:   1.0,
		Width:  width,
		Height: height,
	}
}

// FitScene picks the largest zoom that keeps the whole scene plus margin on screen
func (c *Camera) FitScene(cfg game.Config, margin float64) {
	zx := c.Width / (2*cfg.SceneWidth + 2*margin)
	zy := c.Height / (2*cfg.SceneHeight + 2*margin)
	c.Zoom = zx
	if zy < zx {
		c.Zoom = zy
	}
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + c.Width/2
	// Screen y grows downward
	sy := c.Height/2 - (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx-c.Width/2)/c.Zoom + c.X
	wy := (c.Height/2-sy)/c.Zoom + c.Y
	return wx, wy
}

// RectToScreen returns the top-left corner and size of a centered world box
func (c *Camera) RectToScreen(pos, size game.Vec2) (x, y, w, h float64) {
	cx, cy := c.WorldToScreen(pos.X, pos.Y)
	w = size.X * c.Zoom
	h = size.Y * c.Zoom
	return cx - w/2, cy - h/2, w, h
}

// Visible reports whether a world point lands on screen, with a margin in pixels
func (c *Camera) Visible(pos game.Vec2, margin float64) bool {
	sx, sy := c.WorldToScreen(pos.X, pos.Y)
	return sx >= -margin && sx <= c.Width+margin &&
		sy >= -margin && sy <= c.Height+margin
}
