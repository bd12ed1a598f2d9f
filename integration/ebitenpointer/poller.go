// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenpointer polls the ebiten cursor once per tick and feeds it
// into a pointer feed. The window's logical screen is the client space.
package ebitenpointer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/generative"
	"github.com/gogpu/generative/integration/pointer"
)

// Poller feeds ebiten cursor positions to a pointer.Feed.
type Poller struct {
	feed *pointer.Feed

	// cursor reports the cursor position in logical screen pixels.
	cursor func() (int, int)
	// focused reports whether the window has input focus.
	focused func() bool
}

// New creates a Poller dispatching to target for a logical screen of the
// given size.
func New(target pointer.Dispatcher, width, height int) *Poller {
	return &Poller{
		feed:    pointer.NewFeed(target, image.Rect(0, 0, width, height)),
		cursor:  ebiten.CursorPosition,
		focused: ebiten.IsFocused,
	}
}

// Resize updates the logical screen size, typically from Game.Layout.
func (p *Poller) Resize(width, height int) {
	p.feed.SetBounds(image.Rect(0, 0, width, height))
}

// Update polls the cursor. Call it from Game.Update.
func (p *Poller) Update() {
	if !p.focused() {
		p.feed.Leave()
		return
	}
	x, y := p.cursor()
	p.feed.Move(float64(x), float64(y))
}

// MatrixFromGeoM converts an ebiten geometry matrix, such as the one used
// to draw an element, into its screen CTM.
func MatrixFromGeoM(g ebiten.GeoM) generative.Matrix {
	return generative.Matrix{
		A: g.Element(0, 0), B: g.Element(0, 1), C: g.Element(0, 2),
		D: g.Element(1, 0), E: g.Element(1, 1), F: g.Element(1, 2),
	}
}
