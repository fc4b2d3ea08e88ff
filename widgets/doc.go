// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (frames, columns, fades, overlay compositor)
//
// Not allowed here:
// - mouse handling, gesture state, hit testing, or layout measurement
package widgets
