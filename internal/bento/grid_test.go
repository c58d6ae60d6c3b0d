package bento

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPackDefaultDeck(t *testing.T) {
	t.Parallel()

	got := Pack(DefaultTiles(), 4)
	want := []Placement{
		{ID: "main", Col: 0, Row: 0, ColSpan: 2, RowSpan: 2},
		{ID: "entry", Col: 2, Row: 0, ColSpan: 1, RowSpan: 1},
		{ID: "body", Col: 3, Row: 0, ColSpan: 1, RowSpan: 1},
		{ID: "quote", Col: 2, Row: 1, ColSpan: 2, RowSpan: 1},
		{ID: "arch", Col: 0, Row: 2, ColSpan: 1, RowSpan: 1},
		{ID: "roadmap", Col: 1, Row: 2, ColSpan: 1, RowSpan: 1},
		{ID: "philosophy", Col: 2, Row: 2, ColSpan: 1, RowSpan: 1},
		{ID: "legal", Col: 3, Row: 2, ColSpan: 1, RowSpan: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Pack mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, Rows(got))
}

func TestPackBackfillsHoles(t *testing.T) {
	t.Parallel()

	in := []TileDescriptor{
		{ID: "a", ColSpan: 1, RowSpan: 1},
		{ID: "wide", ColSpan: 3, RowSpan: 1},
		{ID: "b", ColSpan: 1, RowSpan: 1},
	}
	got := Pack(in, 3)
	require.Equal(t, Placement{ID: "wide", Col: 0, Row: 1, ColSpan: 3, RowSpan: 1}, got[1])
	require.Equal(t, Placement{ID: "b", Col: 1, Row: 0, ColSpan: 1, RowSpan: 1}, got[2])
}

func TestPackClampsToColumns(t *testing.T) {
	t.Parallel()

	got := Pack(DefaultTiles(), 1)
	for i, p := range got {
		require.Equal(t, 0, p.Col)
		require.Equal(t, 1, p.ColSpan)
		if i > 0 {
			prev := got[i-1]
			require.Equal(t, prev.Row+prev.RowSpan, p.Row)
		}
	}
}

func TestColumns(t *testing.T) {
	t.Parallel()

	require.Equal(t, 4, Columns(120))
	require.Equal(t, 2, Columns(60))
	require.Equal(t, 1, Columns(30))
}

func TestGeometryRect(t *testing.T) {
	t.Parallel()

	geo := Geometry{OriginX: 2, OriginY: 3, CellW: 10, CellH: 4, Gap: 1}
	r := geo.Rect(Placement{Col: 1, Row: 1, ColSpan: 2, RowSpan: 2})
	require.Equal(t, Rect{X: 13, Y: 8, W: 21, H: 9}, r)
}

func TestLayoutPaintsDraggedTileOnTop(t *testing.T) {
	t.Parallel()

	geo := Geometry{CellW: 10, CellH: 4}
	placements := Pack(tiles("a", "b", "c"), 3)
	session := &Session{TileID: "a", DX: 10, DY: 0}
	surfaces := Layout(placements, geo, session)

	require.Len(t, surfaces, 3)
	top := surfaces[len(surfaces)-1]
	require.Equal(t, "a", top.ID)
	require.True(t, top.Lifted)
	require.Equal(t, Rect{X: 10, Y: 0, W: 10, H: 4}, top.Rect)

	// a is dragged over b: both are under the pointer, a first
	require.Equal(t, []string{"a", "b"}, surfaces.HitTest(Point{X: 12, Y: 1}))
	got, ok := Resolve(surfaces, Point{X: 12, Y: 1}, "a")
	require.True(t, ok)
	require.Equal(t, "b", got)
}

func TestSurfacesLookups(t *testing.T) {
	t.Parallel()

	surfaces := Layout(Pack(tiles("a", "b"), 2), Geometry{CellW: 10, CellH: 4}, nil)
	s, ok := surfaces.At(Point{X: 15, Y: 2})
	require.True(t, ok)
	require.Equal(t, "b", s.ID)
	require.Equal(t, Rect{X: 17, Y: 3, W: 3, H: 1}, s.Grip())

	_, ok = surfaces.At(Point{X: 25, Y: 2})
	require.False(t, ok)
	require.Empty(t, surfaces.HitTest(Point{X: 5, Y: 9}))

	found, ok := surfaces.Find("a")
	require.True(t, ok)
	require.Equal(t, Rect{W: 10, H: 4}, found.Rect)
}
