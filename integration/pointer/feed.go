// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pointer turns raw pointer positions from a polling or event
// source into pointermove and pointerleave events for a dom target.
package pointer

import (
	"image"
	"sync"

	"github.com/gogpu/generative"
	"github.com/gogpu/generative/dom"
)

// Dispatcher receives pointer events. *dom.Element implements it.
type Dispatcher interface {
	DispatchEvent(ev dom.PointerEvent) int
}

// Feed tracks whether the pointer is inside a client-space rectangle and
// dispatches the matching events to its target.
//
// Feed is safe for concurrent use, but events are dispatched while the
// feed is locked: a listener must not call back into the same Feed.
type Feed struct {
	mu     sync.Mutex
	target Dispatcher
	bounds image.Rectangle
	inside bool
	last   generative.Point

	// everyMove disables the unchanged-position filter.
	everyMove bool
}

// Option configures a Feed.
type Option func(*Feed)

// WithEveryMove makes the feed dispatch a pointermove for every Move call,
// even at the last position. Use it for event-driven sources, where each
// call is a real pointer event; polling sources keep the default filter.
func WithEveryMove() Option {
	return func(f *Feed) {
		f.everyMove = true
	}
}

// NewFeed creates a feed for target covering bounds in client coordinates.
// An empty bounds rectangle accepts every position.
func NewFeed(target Dispatcher, bounds image.Rectangle, opts ...Option) *Feed {
	f := &Feed{target: target, bounds: bounds}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetBounds replaces the client-space rectangle. If the pointer was inside
// the old bounds and the last position is outside the new ones, a
// pointerleave is dispatched.
func (f *Feed) SetBounds(bounds image.Rectangle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bounds = bounds
	if f.inside && !f.contains(f.last) {
		f.leave()
	}
}

// Move reports the pointer at client position (x, y). It dispatches a
// pointermove when the position is inside the bounds and differs from the
// last one (or on every call with WithEveryMove), and a pointerleave when
// the pointer crosses out of the bounds.
func (f *Feed) Move(x, y float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := generative.Pt(x, y)
	if !f.contains(p) {
		if f.inside {
			f.leave()
		}
		f.last = p
		return
	}
	if f.inside && p == f.last && !f.everyMove {
		return
	}
	f.inside = true
	f.last = p
	f.target.DispatchEvent(dom.Move(x, y))
}

// Leave reports that the pointer left the source, e.g. the window lost
// focus. It dispatches a pointerleave if the pointer was inside.
func (f *Feed) Leave() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inside {
		f.leave()
	}
}

// Inside reports whether the last position was inside the bounds.
func (f *Feed) Inside() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inside
}

func (f *Feed) leave() {
	f.inside = false
	f.target.DispatchEvent(dom.Leave())
	generative.Logger().Debug("pointer: left bounds", "bounds", f.bounds)
}

func (f *Feed) contains(p generative.Point) bool {
	if f.bounds.Empty() {
		return true
	}
	return p.X >= float64(f.bounds.Min.X) && p.X < float64(f.bounds.Max.X) &&
		p.Y >= float64(f.bounds.Min.Y) && p.Y < float64(f.bounds.Max.Y)
}
