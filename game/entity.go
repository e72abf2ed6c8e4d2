package game

// Vec2 is a position or size in world units
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned bounding box
type Rect struct {
	Min, Max Vec2
}

// RectFromCenter builds the hit box of an entity centered at pos
func RectFromCenter(pos, size Vec2) Rect {
	half := Vec2{size.X / 2, size.Y / 2}
	return Rect{
		Min: Vec2{pos.X - half.X, pos.Y - half.Y},
		Max: Vec2{pos.X + half.X, pos.Y + half.Y},
	}
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count; the test is symmetric.
func (r Rect) Intersects(o Rect) bool {
	if r.Min.X >= o.Max.X || o.Min.X >= r.Max.X {
		return false
	}
	if r.Min.Y >= o.Max.Y || o.Min.Y >= r.Max.Y {
		return false
	}
	return true
}

// Overlaps tests two entities by position and category size
func Overlaps(aPos, aSize, bPos, bSize Vec2) bool {
	return RectFromCenter(aPos, aSize).Intersects(RectFromCenter(bPos, bSize))
}

// Direction is the horizontal heading of the swarm
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == DirRight {
		return DirLeft
	}
	return DirRight
}

// Sign returns +1 for right and -1 for left
func (d Direction) Sign() float64 {
	if d == DirLeft {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Timer is a repeating countdown driven by tick deltas
type Timer struct {
	Duration float64
	Elapsed  float64
}

// NewTimer creates an armed timer
func NewTimer(duration float64) Timer {
	return Timer{Duration: duration}
}

// Tick advances the timer and reports whether it expired during this tick.
// Reaching the duration exactly counts as expiry; the overshoot is carried over.
func (t *Timer) Tick(dt float64) bool {
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
		if t.Elapsed >= t.Duration {
			// A huge delta must not queue multiple expiries
			t.Elapsed = 0
		}
		return true
	}
	return false
}

// Rearm restarts the timer with a new duration
func (t *Timer) Rearm(duration float64) {
	t.Duration = duration
	t.Elapsed = 0
}

// Ready reports whether at least Duration has elapsed, without consuming it
func (t *Timer) Ready() bool {
	return t.Elapsed >= t.Duration
}
