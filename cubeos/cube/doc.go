// Package cube renders a rotating solid cube into an 80x25 text-mode grid.
//
// Pipeline (fixed):
//
//	Geometry → Orient (yaw, then pitch) → Rasterize (2x2 supersampled) → Quantize → Sink.
//
// Faces are painted in array order with no depth test: a later face always
// overwrites an earlier one. Faces whose projected winding is reversed fail the
// inside test and render transparent. Both behaviors are part of the output.
//
// The package has no platform dependencies; callers provide a Sink (usually a
// hal.TextMode) that receives one glyph/attribute pair per character cell.
package cube
