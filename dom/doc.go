// Package dom provides a minimal in-memory scene element: attributes, a
// touch-action style, a screen CTM and pointer-event subscription.
//
// It is the host element used by package cursor in tests and in the
// demo commands. Any type with the same methods can stand in for it.
package dom
