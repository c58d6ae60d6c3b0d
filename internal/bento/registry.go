package bento

import "fmt"

// Registry is the ordered set of tiles. Order is the render order.
type Registry struct {
	tiles []TileDescriptor
}

// NewRegistry validates tiles and returns a registry in the given order.
func NewRegistry(tiles ...TileDescriptor) (*Registry, error) {
	seen := make(map[string]struct{}, len(tiles))
	out := make([]TileDescriptor, 0, len(tiles))
	for _, t := range tiles {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTile, t.ID)
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return &Registry{tiles: out}, nil
}

// Tiles returns a copy of the current order.
func (r *Registry) Tiles() []TileDescriptor {
	out := make([]TileDescriptor, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// IDs returns the tile ids in order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.tiles))
	for i, t := range r.tiles {
		ids[i] = t.ID
	}
	return ids
}

// Len returns the number of tiles.
func (r *Registry) Len() int { return len(r.tiles) }

// Index returns the position of id, or -1.
func (r *Registry) Index(id string) int { return indexOf(r.tiles, id) }

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool { return r.Index(id) >= 0 }

// Tile returns the descriptor for id.
func (r *Registry) Tile(id string) (TileDescriptor, bool) {
	i := r.Index(id)
	if i < 0 {
		return TileDescriptor{}, false
	}
	return r.tiles[i], true
}

// MoveBefore splices sourceID into targetID's slot. It reports whether the
// order changed; unknown ids and self-moves leave the registry untouched.
func (r *Registry) MoveBefore(sourceID, targetID string) bool {
	if sourceID == targetID || !r.Has(sourceID) || !r.Has(targetID) {
		return false
	}
	r.tiles = Reorder(r.tiles, sourceID, targetID)
	return true
}
