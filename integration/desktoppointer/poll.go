// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package desktoppointer polls the system-wide cursor with robotgo and
// feeds it into a pointer feed. Desktop pixels are the client space.
package desktoppointer

import (
	"context"
	"image"
	"time"

	"github.com/go-vgo/robotgo"

	"github.com/gogpu/generative"
	"github.com/gogpu/generative/integration/pointer"
)

// DefaultInterval is the polling interval used when Run gets a
// non-positive interval.
const DefaultInterval = time.Second / 60

// ScreenBounds returns the main display bounds in desktop pixels.
func ScreenBounds() image.Rectangle {
	w, h := robotgo.GetScreenSize()
	return image.Rect(0, 0, w, h)
}

// Run polls the cursor every interval until ctx is done, then reports a
// pointerleave and returns ctx.Err().
func Run(ctx context.Context, feed *pointer.Feed, interval time.Duration) error {
	return run(ctx, feed, interval, robotgo.Location)
}

func run(ctx context.Context, feed *pointer.Feed, interval time.Duration, location func() (int, int)) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	generative.Logger().Debug("desktoppointer: polling", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			feed.Leave()
			return ctx.Err()
		case <-ticker.C:
			x, y := location()
			feed.Move(float64(x), float64(y))
		}
	}
}
