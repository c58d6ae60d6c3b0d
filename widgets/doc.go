// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (tile chrome, stacks, bars, the
//   overlay compositor used for lifted tiles and modals)
//
// Not allowed here:
// - key or mouse handling, drag state, or anything that knows tile ids
package widgets
