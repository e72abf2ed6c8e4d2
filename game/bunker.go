package game

// BunkerCell is one destructible block of a bunker
type BunkerCell struct {
	Pos    Vec2
	Damage uint8
	Alive  bool
	Bunker int // Index of the owning bunker
}

// Bunkers holds the cells of every bunker in a flat arena.
// Storage order is bunker by bunker, then row by row from the top, which is
// also the order the collision pass searches for a first match.
type Bunkers struct {
	cells []BunkerCell
	cfg   Config
}

// NewBunkers builds the bunker line undamaged
func NewBunkers(cfg Config) *Bunkers {
	b := &Bunkers{cfg: cfg}
	b.Reset()
	return b
}

// Reset rebuilds every bunker with all cells at zero damage
func (b *Bunkers) Reset() {
	b.cells = b.cells[:0]

	cfg := b.cfg
	if cfg.Bunkers == 0 || len(cfg.BunkerLayout) == 0 {
		return
	}

	spacing := 2 * cfg.SceneWidth / float64(cfg.Bunkers)
	y := cfg.DescentFloor()
	rows := len(cfg.BunkerLayout)
	cols := len(cfg.BunkerLayout[0])
	cell := cfg.BunkerCellSize

	for i := 0; i < cfg.Bunkers; i++ {
		cx := (float64(i) - float64(cfg.Bunkers-1)/2) * spacing
		for r, row := range cfg.BunkerLayout {
			for c := 0; c < cols; c++ {
				if row[c] != '#' {
					continue
				}
				b.cells = append(b.cells, BunkerCell{
					Pos: Vec2{
						X: cx + (float64(c)-float64(cols-1)/2)*cell.X,
						Y: y + (float64(rows-1)/2-float64(r))*cell.Y,
					},
					Alive:  true,
					Bunker: i,
				})
			}
		}
	}
}

// Hit damages cell i and removes it once the damage exceeds the maximum.
// Returns true when the cell was destroyed.
func (b *Bunkers) Hit(i int) bool {
	if i < 0 || i >= len(b.cells) || !b.cells[i].Alive {
		return false
	}
	cell := &b.cells[i]
	cell.Damage++
	if cell.Damage > b.cfg.BunkerMaxDamage {
		cell.Alive = false
		return true
	}
	return false
}

// FirstOverlap returns the index of the first live cell overlapping the box, or -1
func (b *Bunkers) FirstOverlap(pos, size Vec2) int {
	box := RectFromCenter(pos, size)
	for i := range b.cells {
		if !b.cells[i].Alive {
			continue
		}
		if box.Intersects(RectFromCenter(b.cells[i].Pos, b.cfg.BunkerCellSize)) {
			return i
		}
	}
	return -1
}

// Compact drops destroyed cells, keeping storage order
func (b *Bunkers) Compact() {
	n := 0
	for _, cell := range b.cells {
		if cell.Alive {
			b.cells[n] = cell
			n++
		}
	}
	b.cells = b.cells[:n]
}

// Cells exposes the arena in storage order
func (b *Bunkers) Cells() []BunkerCell {
	return b.cells
}

// Len returns the number of live cells
func (b *Bunkers) Len() int {
	n := 0
	for _, cell := range b.cells {
		if cell.Alive {
			n++
		}
	}
	return n
}
