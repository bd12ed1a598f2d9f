package dom

import (
	"fmt"
	"sync"

	"github.com/gogpu/generative"
)

type listenerEntry struct {
	id int
	fn Listener
}

// Element is an in-memory scene element.
//
// Element is safe for concurrent use. Listeners are invoked synchronously
// on the dispatching goroutine, outside the element lock, so they may call
// back into the element.
type Element struct {
	mu          sync.Mutex
	tag         string
	attrs       map[string]string
	touchAction string
	ctm         generative.Matrix
	rendered    bool
	listeners   map[EventType][]listenerEntry
	nextID      int
}

// NewElement creates a detached element. Call Attach before tracking the
// cursor on it.
func NewElement(tag string) *Element {
	return &Element{
		tag:         tag,
		attrs:       make(map[string]string),
		touchAction: TouchActionAuto,
		listeners:   make(map[EventType][]listenerEntry),
	}
}

// Tag returns the element tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Attach marks the element as rendered with the given screen CTM.
// Calling Attach again replaces the CTM, e.g. after a resize.
func (e *Element) Attach(ctm generative.Matrix) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctm = ctm
	e.rendered = true
}

// Detach removes the element from its rendered surface.
func (e *Element) Detach() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctm = generative.Matrix{}
	e.rendered = false
}

// ScreenCTM returns the matrix mapping local coordinates to client
// coordinates. It returns generative.ErrNotRendered if the element is
// detached.
func (e *Element) ScreenCTM() (generative.Matrix, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.rendered {
		return generative.Matrix{}, fmt.Errorf("dom: <%s>: %w", e.tag, generative.ErrNotRendered)
	}
	return e.ctm, nil
}

// SetAttribute sets the named attribute, overwriting any previous value.
func (e *Element) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

// Attribute returns the named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.attrs[name]
	return v, ok
}

// RemoveAttribute deletes the named attribute.
func (e *Element) RemoveAttribute(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.attrs, name)
}

// TouchAction returns the touch-action style.
func (e *Element) TouchAction() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.touchAction
}

// SetTouchAction sets the touch-action style.
func (e *Element) SetTouchAction(action string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touchAction = action
}

// AddEventListener registers fn for events of type t and returns a function
// that removes it. The remove function is idempotent.
func (e *Element) AddEventListener(t EventType, fn Listener) (remove func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	id := e.nextID
	e.listeners[t] = append(e.listeners[t], listenerEntry{id: id, fn: fn})

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		entries := e.listeners[t]
		for i, le := range entries {
			if le.id == id {
				e.listeners[t] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners registered for t.
func (e *Element) ListenerCount(t EventType) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[t])
}

// DispatchEvent invokes the listeners registered for ev.Type in
// registration order and returns how many were invoked.
func (e *Element) DispatchEvent(ev PointerEvent) int {
	e.mu.Lock()
	entries := make([]listenerEntry, len(e.listeners[ev.Type]))
	copy(entries, e.listeners[ev.Type])
	e.mu.Unlock()

	for _, le := range entries {
		le.fn(ev)
	}
	return len(entries)
}
