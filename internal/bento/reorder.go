package bento

// indexOf returns the position of id in tiles, or -1.
func indexOf(tiles []TileDescriptor, id string) int {
	for i, t := range tiles {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Reorder moves sourceID into the slot targetID occupies. The target index is
// taken before the source is removed, so moving forward lands the source just
// after the target and moving backward lands it just before.
//
// The input is never modified. When either id is missing or both are the same
// the input slice itself is returned.
func Reorder(tiles []TileDescriptor, sourceID, targetID string) []TileDescriptor {
	if sourceID == targetID {
		return tiles
	}
	from := indexOf(tiles, sourceID)
	to := indexOf(tiles, targetID)
	if from < 0 || to < 0 {
		return tiles
	}
	out := make([]TileDescriptor, 0, len(tiles))
	out = append(out, tiles[:from]...)
	out = append(out, tiles[from+1:]...)
	moved := tiles[from]
	out = append(out[:to], append([]TileDescriptor{moved}, out[to:]...)...)
	return out
}
