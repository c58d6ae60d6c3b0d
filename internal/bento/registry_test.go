package bento

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistryValidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tiles []TileDescriptor
		want  error
	}{
		{"duplicate", tiles("a", "b", "a"), ErrDuplicateTile},
		{"empty id", []TileDescriptor{{ID: " ", ColSpan: 1, RowSpan: 1}}, ErrInvalidTile},
		{"zero span", []TileDescriptor{{ID: "a", ColSpan: 0, RowSpan: 1}}, ErrInvalidTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.tiles...)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRegistryMoveBefore(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(tiles("main", "entry", "body", "quote")...)
	require.NoError(t, err)

	require.True(t, reg.MoveBefore("entry", "quote"))
	require.Equal(t, []string{"main", "body", "quote", "entry"}, reg.IDs())

	require.False(t, reg.MoveBefore("entry", "entry"))
	require.False(t, reg.MoveBefore("ghost", "main"))
	require.False(t, reg.MoveBefore("main", "ghost"))
	require.Equal(t, []string{"main", "body", "quote", "entry"}, reg.IDs())
}

func TestRegistryTilesIsACopy(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(DefaultTiles()...)
	require.NoError(t, err)

	ts := reg.Tiles()
	ts[0].ID = "mutated"
	require.Equal(t, "main", reg.IDs()[0])
	require.Equal(t, 8, reg.Len())

	tile, ok := reg.Tile("quote")
	require.True(t, ok)
	require.Equal(t, 2, tile.ColSpan)
	require.Equal(t, 3, reg.Index("quote"))
	require.False(t, reg.Has("ghost"))
}
