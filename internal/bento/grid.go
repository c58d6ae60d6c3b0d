package bento

// Placement is a tile's position in grid cells.
type Placement struct {
	ID      string
	Col     int
	Row     int
	ColSpan int
	RowSpan int
}

// Pack lays tiles out on a grid with the given number of columns. Each tile
// takes the first free row-major position that fits it, so later small tiles
// back-fill holes left by earlier wide ones. Spans wider than the grid are
// clamped.
func Pack(tiles []TileDescriptor, columns int) []Placement {
	if columns < 1 {
		columns = 1
	}
	var occupied [][]bool
	fits := func(row, col, w, h int) bool {
		if col+w > columns {
			return false
		}
		for r := row; r < row+h; r++ {
			if r >= len(occupied) {
				continue
			}
			for c := col; c < col+w; c++ {
				if occupied[r][c] {
					return false
				}
			}
		}
		return true
	}
	mark := func(row, col, w, h int) {
		for len(occupied) < row+h {
			occupied = append(occupied, make([]bool, columns))
		}
		for r := row; r < row+h; r++ {
			for c := col; c < col+w; c++ {
				occupied[r][c] = true
			}
		}
	}

	out := make([]Placement, 0, len(tiles))
	for _, t := range tiles {
		w := min(max(t.ColSpan, 1), columns)
		h := max(t.RowSpan, 1)
		placed := false
		for row := 0; !placed; row++ {
			for col := 0; col+w <= columns; col++ {
				if !fits(row, col, w, h) {
					continue
				}
				mark(row, col, w, h)
				out = append(out, Placement{ID: t.ID, Col: col, Row: row, ColSpan: w, RowSpan: h})
				placed = true
				break
			}
		}
	}
	return out
}

// Rows returns the number of grid rows the placements use.
func Rows(placements []Placement) int {
	n := 0
	for _, p := range placements {
		n = max(n, p.Row+p.RowSpan)
	}
	return n
}

// Columns picks a column count for a screen width, mirroring a one/two/four
// column responsive grid.
func Columns(width int) int {
	switch {
	case width >= 96:
		return 4
	case width >= 48:
		return 2
	default:
		return 1
	}
}

// Geometry converts grid cells into screen cells.
type Geometry struct {
	OriginX int
	OriginY int
	CellW   int
	CellH   int
	Gap     int
}

// Rect returns the screen rectangle for a placement.
func (g Geometry) Rect(p Placement) Rect {
	return Rect{
		X: g.OriginX + p.Col*(g.CellW+g.Gap),
		Y: g.OriginY + p.Row*(g.CellH+g.Gap),
		W: p.ColSpan*g.CellW + (p.ColSpan-1)*g.Gap,
		H: p.RowSpan*g.CellH + (p.RowSpan-1)*g.Gap,
	}
}

// Surface is one painted tile.
type Surface struct {
	ID     string
	Rect   Rect
	Lifted bool
}

// gripWidth is how many cells at the bottom-right corner act as drag handle.
const gripWidth = 3

// Grip returns the drag handle area of the surface.
func (s Surface) Grip() Rect {
	w := min(gripWidth, s.Rect.W)
	return Rect{X: s.Rect.X + s.Rect.W - w, Y: s.Rect.Y + s.Rect.H - 1, W: w, H: 1}
}

// Surfaces is the painted tile set in painter order (back to front).
type Surfaces []Surface

// Layout paints placements in order. The tile owning session, if any, is
// painted last at its drag offset.
func Layout(placements []Placement, geo Geometry, session *Session) Surfaces {
	out := make(Surfaces, 0, len(placements))
	var lifted *Surface
	for _, p := range placements {
		s := Surface{ID: p.ID, Rect: geo.Rect(p)}
		if session != nil && session.TileID == p.ID {
			s.Rect = s.Rect.Offset(session.DX, session.DY)
			s.Lifted = true
			lifted = &s
			continue
		}
		out = append(out, s)
	}
	if lifted != nil {
		out = append(out, *lifted)
	}
	return out
}

// HitTest walks painter order backwards so the topmost surface comes first.
func (ss Surfaces) HitTest(p Point) []string {
	var ids []string
	for i := len(ss) - 1; i >= 0; i-- {
		if ss[i].Rect.Contains(p) {
			ids = append(ids, ss[i].ID)
		}
	}
	return ids
}

// At returns the topmost surface under p.
func (ss Surfaces) At(p Point) (Surface, bool) {
	for i := len(ss) - 1; i >= 0; i-- {
		if ss[i].Rect.Contains(p) {
			return ss[i], true
		}
	}
	return Surface{}, false
}

// Find returns the surface for id.
func (ss Surfaces) Find(id string) (Surface, bool) {
	for _, s := range ss {
		if s.ID == id {
			return s, true
		}
	}
	return Surface{}, false
}
