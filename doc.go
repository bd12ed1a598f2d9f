// Package generative provides small helpers for generative artists working
// with 2D vector scenes.
//
// # Overview
//
// The root package holds numeric helpers in the spirit of creative-coding
// environments: [Constrain], [Dist], [Interp], [MapRange] and [Random].
// They are plain functions with no shared state; malformed input such as
// NaN, Inf or reversed bounds propagates numerically instead of failing.
//
//	x := generative.MapRange(mouseX, 0, 800, -1, 1)
//	r := generative.Constrain(generative.Dist(0, 0, x, y), 0, 100)
//	n := generative.Random(0, 10) // integer in [0, 10)
//
// For reproducible output use a seeded [Rand]:
//
//	rng := generative.NewRand(42)
//	hue := rng.RandomFloat(0, 360)
//
// # Cursor tracking
//
// Package cursor exposes the pointer position in an element's local
// coordinate space as two attributes, cursorX and cursorY. Package dom
// provides an in-memory element, and the integration/ packages feed it
// pointer events from a terminal (tcell), a window (ebiten) or the desktop
// (robotgo).
//
// # Coordinate System
//
// A screen CTM ([Matrix]) maps local coordinates to client coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// [ScreenToLocal] applies its inverse.
package generative
