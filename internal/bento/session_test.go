package bento

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerExclusive(t *testing.T) {
	t.Parallel()

	var tr Tracker
	require.NoError(t, tr.Begin("a", Point{X: 1, Y: 1}))
	first, ok := tr.Active()
	require.True(t, ok)
	require.NotEmpty(t, first.ID)

	err := tr.Begin("b", Point{})
	require.True(t, errors.Is(err, ErrSessionActive))

	s, ok := tr.Active()
	require.True(t, ok)
	require.Equal(t, "a", s.TileID)
	require.Equal(t, first.ID, s.ID)
	require.True(t, tr.Dragging("a"))
	require.False(t, tr.Dragging("b"))

	// re-pressing the owning tile keeps the session
	require.NoError(t, tr.Begin("a", Point{}))
	s, _ = tr.Active()
	require.Equal(t, first.ID, s.ID)

	ended, ok := tr.End()
	require.True(t, ok)
	require.Equal(t, "a", ended.TileID)

	require.NoError(t, tr.Begin("b", Point{}))
	s, _ = tr.Active()
	require.Equal(t, "b", s.TileID)
}

func TestTrackerEndIsIdempotent(t *testing.T) {
	t.Parallel()

	var tr Tracker
	_, ok := tr.End()
	require.False(t, ok)

	require.NoError(t, tr.Begin("a", Point{}))
	tr.End()
	_, ok = tr.End()
	require.False(t, ok)

	tr.Cancel()
	_, ok = tr.Active()
	require.False(t, ok)
}

func TestTrackerMove(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Move(Point{X: 5, Y: 5}) // idle: ignored

	require.NoError(t, tr.Begin("a", Point{X: 10, Y: 4}))
	tr.Move(Point{X: 10, Y: 4})
	s, _ := tr.Active()
	require.False(t, s.Moved)

	tr.Move(Point{X: 13, Y: 2})
	s, _ = tr.Active()
	require.Equal(t, 3, s.DX)
	require.Equal(t, -2, s.DY)
	require.True(t, s.Moved)

	// moving back to the start still counts as a drag
	tr.Move(Point{X: 10, Y: 4})
	s, _ = tr.Active()
	require.True(t, s.Moved)
}
