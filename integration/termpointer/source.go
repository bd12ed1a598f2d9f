// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termpointer feeds terminal mouse events from tcell into a
// pointer feed. Terminal cells are the client coordinate space.
package termpointer

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/generative/integration/pointer"
)

// Source adapts tcell events to a pointer.Feed.
type Source struct {
	feed *pointer.Feed
}

// New creates a Source dispatching to target for pointers inside bounds
// (in cells). Every tcell mouse event inside bounds is dispatched, including
// button events at the cell of the previous one.
func New(target pointer.Dispatcher, bounds image.Rectangle) *Source {
	return &Source{feed: pointer.NewFeed(target, bounds, pointer.WithEveryMove())}
}

// Feed returns the underlying feed.
func (s *Source) Feed() *pointer.Feed {
	return s.feed
}

// HandleEvent processes ev and reports whether it was a pointer event.
// Mouse events move the pointer; a focus loss counts as leaving.
func (s *Source) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.feed.Move(float64(x), float64(y))
		return true
	case *tcell.EventFocus:
		if !ev.Focused {
			s.feed.Leave()
		}
		return true
	}
	return false
}
