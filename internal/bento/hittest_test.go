package bento

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scripted(ids ...string) SurfaceLookup {
	return SurfaceLookupFunc(func(Point) []string { return ids })
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lookup  SurfaceLookup
		exclude string
		want    string
		found   bool
	}{
		{"topmost wins", scripted("b", "c"), "a", "b", true},
		{"skips excluded on top", scripted("a", "c"), "a", "c", true},
		{"only excluded", scripted("a"), "a", "", false},
		{"nothing under pointer", scripted(), "a", "", false},
		{"skips blank ids", scripted("", "c"), "a", "c", true},
		{"nil lookup", nil, "a", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.lookup, Point{X: 3, Y: 3}, tt.exclude)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNeverReturnsExcluded(t *testing.T) {
	t.Parallel()

	stack := []string{"a", "b", "a", "c"}
	for _, exclude := range []string{"a", "b", "c"} {
		got, ok := Resolve(scripted(stack...), Point{}, exclude)
		require.True(t, ok)
		require.NotEqual(t, exclude, got)
	}
}
