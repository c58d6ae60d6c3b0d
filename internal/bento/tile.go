// Package bento holds the reorderable tile grid: the ordered tile registry,
// the drag session tracker, hit-testing against rendered surfaces and the
// board that ties them together.
//
// Nothing in this package knows about themes, languages or terminals. The
// board is the only writer of the registry and is driven from a single event
// loop.
package bento

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateTile = errors.New("duplicate tile id")
	ErrInvalidTile   = errors.New("invalid tile")
)

// TileDescriptor identifies a tile and its layout span in grid cells.
type TileDescriptor struct {
	ID      string
	ColSpan int
	RowSpan int
}

func (t TileDescriptor) validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidTile)
	}
	if t.ColSpan < 1 || t.RowSpan < 1 {
		return fmt.Errorf("%w: %s has span %dx%d", ErrInvalidTile, t.ID, t.ColSpan, t.RowSpan)
	}
	return nil
}

// DefaultTiles is the landing deck's initial order.
func DefaultTiles() []TileDescriptor {
	return []TileDescriptor{
		{ID: "main", ColSpan: 2, RowSpan: 2},
		{ID: "entry", ColSpan: 1, RowSpan: 1},
		{ID: "body", ColSpan: 1, RowSpan: 1},
		{ID: "quote", ColSpan: 2, RowSpan: 1},
		{ID: "arch", ColSpan: 1, RowSpan: 1},
		{ID: "roadmap", ColSpan: 1, RowSpan: 1},
		{ID: "philosophy", ColSpan: 1, RowSpan: 1},
		{ID: "legal", ColSpan: 1, RowSpan: 1},
	}
}

// Point is a pointer position in screen cells.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen rectangle. The right and bottom edges are
// exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}
