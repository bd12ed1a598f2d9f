// Package cursor tracks the pointer over a scene element and exposes its
// position, in the element's local coordinate space, as two attributes.
package cursor

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/gogpu/generative"
	"github.com/gogpu/generative/dom"
)

// Element is the host element a Tracker attaches to. *dom.Element
// implements it.
type Element interface {
	ScreenCTM() (generative.Matrix, error)
	SetAttribute(name, value string)
	SetTouchAction(action string)
	AddEventListener(t dom.EventType, fn dom.Listener) (remove func())
}

// Tracker keeps the cursor attributes of one element up to date.
//
// Tracker is safe for concurrent use.
type Tracker struct {
	el   Element
	opts options

	mu      sync.Mutex
	removes []func()
	pos     generative.Point
	active  bool
}

// Track starts tracking the pointer over el.
//
// Both attributes are initialized to "0". On every pointermove the element's
// touch-action is set to "none", the client point is mapped through the
// inverse of the current screen CTM, rounded up, and written to the
// attributes. On pointerleave touch-action returns to "auto".
//
// Track fails if el is not rendered or its screen CTM is not invertible;
// the element must be attached before tracking starts.
func Track(el Element, opts ...Option) (*Tracker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctm, err := el.ScreenCTM()
	if err != nil {
		return nil, fmt.Errorf("cursor: track: %w", err)
	}
	if _, err := ctm.Invert(); err != nil {
		return nil, fmt.Errorf("cursor: track: screen CTM: %w", err)
	}

	t := &Tracker{el: el, opts: o, active: true}
	el.SetAttribute(o.attrX, "0")
	el.SetAttribute(o.attrY, "0")

	t.removes = []func(){
		el.AddEventListener(dom.EventPointerMove, t.handleMove),
		el.AddEventListener(dom.EventPointerLeave, t.handleLeave),
	}

	generative.Logger().Debug("cursor: tracking started",
		"attrX", o.attrX, "attrY", o.attrY)
	return t, nil
}

// Element returns the tracked element.
func (t *Tracker) Element() Element {
	return t.el
}

// Position returns the last position written to the attributes.
func (t *Tracker) Position() (x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos.X, t.pos.Y
}

// Active reports whether the tracker is still listening.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Stop removes the tracker's listeners and restores touch-action to
// "auto". The attributes keep their last values. Stop is idempotent.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	removes := t.removes
	t.removes = nil
	t.mu.Unlock()

	for _, remove := range removes {
		remove()
	}
	t.el.SetTouchAction(dom.TouchActionAuto)
	generative.Logger().Debug("cursor: tracking stopped")
}

func (t *Tracker) handleMove(ev dom.PointerEvent) {
	if err := t.move(ev); err != nil {
		t.fail(ev, err)
	}
}

// move updates the element under the tracker lock so that no write can
// land after Stop has restored the element.
func (t *Tracker) move(ev dom.PointerEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return nil
	}

	t.el.SetTouchAction(dom.TouchActionNone)
	ctm, err := t.el.ScreenCTM()
	if err != nil {
		return err
	}
	local, err := generative.ScreenToLocal(ctm, generative.Pt(ev.ClientX, ev.ClientY))
	if err != nil {
		return err
	}
	t.pos = local.Ceil()
	t.el.SetAttribute(t.opts.attrX, formatCoord(t.pos.X))
	t.el.SetAttribute(t.opts.attrY, formatCoord(t.pos.Y))
	return nil
}

func (t *Tracker) handleLeave(dom.PointerEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return
	}
	t.el.SetTouchAction(dom.TouchActionAuto)
}

func (t *Tracker) fail(ev dom.PointerEvent, err error) {
	err = fmt.Errorf("cursor: pointermove at (%g, %g): %w", ev.ClientX, ev.ClientY, err)
	generative.Logger().Warn("cursor: dropped pointer event", "err", err)
	if t.opts.onError != nil {
		t.opts.onError(err)
	}
}

// formatCoord renders v the way a JavaScript number converts to a string:
// "NaN", "Infinity" and "-Infinity" for non-finite values, exponent form
// from 1e21 up, plain digits otherwise.
func formatCoord(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
