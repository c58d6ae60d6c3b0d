package bento

// SurfaceLookup maps a screen point to the ids of the tile surfaces under it,
// topmost first.
type SurfaceLookup interface {
	HitTest(p Point) []string
}

// SurfaceLookupFunc adapts a function to SurfaceLookup.
type SurfaceLookupFunc func(p Point) []string

func (f SurfaceLookupFunc) HitTest(p Point) []string { return f(p) }

// Resolve returns the topmost tile under p that is not excludeID.
func Resolve(lookup SurfaceLookup, p Point, excludeID string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	for _, id := range lookup.HitTest(p) {
		if id == "" || id == excludeID {
			continue
		}
		return id, true
	}
	return "", false
}
