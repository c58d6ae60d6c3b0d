package bento

import (
	"errors"

	"github.com/google/uuid"
)

// ErrSessionActive is returned by Begin while another tile owns the pointer.
var ErrSessionActive = errors.New("drag session already active")

// Session is the transient state of one drag gesture.
type Session struct {
	ID     string
	TileID string
	Start  Point
	DX, DY int
	Moved  bool
}

// Tracker holds at most one active drag session.
type Tracker struct {
	active *Session
}

// Begin arms a session for tileID. A second Begin for the owning tile is a
// no-op; a Begin for any other tile fails and leaves the session as is.
func (t *Tracker) Begin(tileID string, at Point) error {
	if t.active != nil {
		if t.active.TileID == tileID {
			return nil
		}
		return ErrSessionActive
	}
	t.active = &Session{ID: uuid.NewString(), TileID: tileID, Start: at}
	return nil
}

// Move records the pointer's current position relative to the start point.
func (t *Tracker) Move(to Point) {
	if t.active == nil {
		return
	}
	t.active.DX = to.X - t.active.Start.X
	t.active.DY = to.Y - t.active.Start.Y
	if t.active.DX != 0 || t.active.DY != 0 {
		t.active.Moved = true
	}
}

// Active returns a copy of the current session.
func (t *Tracker) Active() (Session, bool) {
	if t.active == nil {
		return Session{}, false
	}
	return *t.active, true
}

// Dragging reports whether tileID owns the active session.
func (t *Tracker) Dragging(tileID string) bool {
	return t.active != nil && t.active.TileID == tileID
}

// End clears the session and returns what it was. Safe to call when idle.
func (t *Tracker) End() (Session, bool) {
	s, ok := t.Active()
	t.active = nil
	return s, ok
}

// Cancel drops the session without a drop.
func (t *Tracker) Cancel() {
	t.active = nil
}
