// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktoppointer

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/generative/dom"
	"github.com/gogpu/generative/integration/pointer"
)

type recorder struct {
	mu     sync.Mutex
	events []dom.PointerEvent
}

func (r *recorder) DispatchEvent(ev dom.PointerEvent) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return 1
}

func (r *recorder) snapshot() []dom.PointerEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]dom.PointerEvent(nil), r.events...)
}

func TestRunPollsUntilCancelled(t *testing.T) {
	rec := &recorder{}
	feed := pointer.NewFeed(rec, image.Rect(0, 0, 100, 100))

	ctx, cancel := context.WithCancel(context.Background())
	var (
		mu    sync.Mutex
		polls int
	)
	location := func() (int, int) {
		mu.Lock()
		defer mu.Unlock()
		polls++
		if polls == 3 {
			cancel()
		}
		return 10 + polls, 20
	}

	err := run(ctx, feed, time.Millisecond, location)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("run() error = %v, want context.Canceled", err)
	}

	events := rec.snapshot()
	if len(events) < 2 {
		t.Fatalf("got %d events, want at least a move and a leave", len(events))
	}
	if events[0].Type != dom.EventPointerMove || events[0].ClientX != 11 {
		t.Errorf("first event = %+v, want move at x=11", events[0])
	}
	if last := events[len(events)-1]; last.Type != dom.EventPointerLeave {
		t.Errorf("last event = %+v, want leave", last)
	}
}

func TestRunDefaultInterval(t *testing.T) {
	feed := pointer.NewFeed(&recorder{}, image.Rectangle{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := run(ctx, feed, 0, func() (int, int) { return 0, 0 }); !errors.Is(err, context.Canceled) {
		t.Errorf("run() error = %v, want context.Canceled", err)
	}
}
