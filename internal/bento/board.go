package bento

import (
	"fmt"

	"go.uber.org/zap"
)

// Feedback is notified with a tile's index when the tile is pressed.
type Feedback interface {
	Emit(index int)
}

// DropResult describes how a gesture ended.
type DropResult struct {
	SessionID string
	SourceID  string
	TargetID  string
	Moved     bool
	Clicked   bool
}

// Board owns the registry and applies pointer gestures to it. All methods
// must be called from the same goroutine.
type Board struct {
	reg      *Registry
	tracker  Tracker
	feedback Feedback
	log      *zap.Logger

	geo     Geometry
	columns int
	grips   bool

	pressed string
	// grabbed marks a session armed from the keyboard; the pointer has no
	// origin in it and cannot drop it.
	grabbed bool
}

// NewBoard wraps reg. feedback and log may be nil.
func NewBoard(reg *Registry, feedback Feedback, log *zap.Logger) *Board {
	if log == nil {
		log = zap.NewNop()
	}
	return &Board{reg: reg, feedback: feedback, log: log, columns: 4, grips: true,
		geo: Geometry{CellW: 20, CellH: 6, Gap: 1}}
}

// SetViewport updates the geometry used for hit-testing.
func (b *Board) SetViewport(geo Geometry, columns int) {
	b.geo = geo
	b.columns = max(columns, 1)
}

// SetGrips restricts drags to the bottom-right handle of each tile.
func (b *Board) SetGrips(on bool) { b.grips = on }

func (b *Board) Registry() *Registry { return b.reg }

func (b *Board) Columns() int { return b.columns }

func (b *Board) Geometry() Geometry { return b.geo }

// Session returns the active drag session.
func (b *Board) Session() (Session, bool) { return b.tracker.Active() }

// Placements packs the current order into the grid.
func (b *Board) Placements() []Placement {
	return Pack(b.reg.Tiles(), b.columns)
}

// Surfaces returns the painted tiles, with the dragged tile on top.
func (b *Board) Surfaces() Surfaces {
	var session *Session
	if s, ok := b.tracker.Active(); ok {
		session = &s
	}
	return Layout(b.Placements(), b.geo, session)
}

// PointerDown presses the topmost tile under p. Pressing a grip, or any part
// of a tile when grips are off, arms a drag session. It reports whether a
// session was armed.
func (b *Board) PointerDown(p Point) bool {
	if _, ok := b.tracker.Active(); ok {
		return false
	}
	surface, ok := b.Surfaces().At(p)
	if !ok || !b.reg.Has(surface.ID) {
		b.pressed = ""
		return false
	}
	b.pressed = surface.ID
	b.emit(surface.ID)
	if b.grips && !surface.Grip().Contains(p) {
		return false
	}
	return b.begin(surface.ID, p) == nil
}

// PointerMove drags the active tile. The order is not touched until release.
func (b *Board) PointerMove(p Point) {
	if b.grabbed {
		return
	}
	b.tracker.Move(p)
}

// PointerUp ends the gesture. A drag that ends over another tile moves the
// dragged tile into that tile's slot; a press and release without motion on
// the same tile is a click.
func (b *Board) PointerUp(p Point) DropResult {
	pressed := b.pressed
	b.pressed = ""
	session, ok := b.tracker.Active()
	if ok && b.grabbed {
		return DropResult{}
	}
	if !ok {
		if pressed == "" {
			return DropResult{}
		}
		if top, hit := b.Surfaces().At(p); hit && top.ID == pressed {
			return DropResult{SourceID: pressed, Clicked: true}
		}
		return DropResult{}
	}
	b.tracker.Move(p)
	session, _ = b.tracker.Active()
	if !session.Moved {
		b.tracker.End()
		b.log.Debug("drag released in place", zap.String("session", session.ID), zap.String("tile", session.TileID))
		return DropResult{SessionID: session.ID, SourceID: session.TileID, Clicked: true}
	}
	target, found := Resolve(b.Surfaces(), p, session.TileID)
	return b.finish(session, target, found)
}

// Cancel abandons the active gesture; the order is unchanged.
func (b *Board) Cancel() {
	b.pressed = ""
	b.grabbed = false
	if s, ok := b.tracker.Active(); ok {
		b.log.Debug("drag cancelled", zap.String("session", s.ID), zap.String("tile", s.TileID))
	}
	b.tracker.Cancel()
}

// Grab arms a session for id without a pointer, for keyboard reordering.
// Pointer motion and release are ignored until DropOn or Cancel ends it.
func (b *Board) Grab(id string) error {
	if !b.reg.Has(id) {
		return fmt.Errorf("%w: unknown tile %q", ErrInvalidTile, id)
	}
	if err := b.begin(id, Point{}); err != nil {
		return err
	}
	b.grabbed = true
	b.emit(id)
	return nil
}

// DropOn ends the active session with an explicit target.
func (b *Board) DropOn(targetID string) DropResult {
	session, ok := b.tracker.Active()
	if !ok {
		return DropResult{}
	}
	return b.finish(session, targetID, targetID != "" && targetID != session.TileID)
}

func (b *Board) begin(id string, at Point) error {
	if err := b.tracker.Begin(id, at); err != nil {
		return err
	}
	if s, ok := b.tracker.Active(); ok {
		b.log.Debug("drag begin", zap.String("session", s.ID), zap.String("tile", id))
	}
	return nil
}

func (b *Board) finish(session Session, target string, found bool) DropResult {
	b.tracker.End()
	b.grabbed = false
	res := DropResult{SessionID: session.ID, SourceID: session.TileID}
	if !found || !b.reg.Has(target) {
		b.log.Debug("drop without target", zap.String("session", session.ID), zap.String("tile", session.TileID))
		return res
	}
	res.TargetID = target
	res.Moved = b.reg.MoveBefore(session.TileID, target)
	b.log.Info("tile moved",
		zap.String("session", session.ID),
		zap.String("source", session.TileID),
		zap.String("target", target),
		zap.Bool("moved", res.Moved),
		zap.Strings("order", b.reg.IDs()))
	return res
}

func (b *Board) emit(id string) {
	if b.feedback == nil {
		return
	}
	if i := b.reg.Index(id); i >= 0 {
		b.feedback.Emit(i)
	}
}
